package model

// RawSignal is one unit of consumer-friction text handed to the engine by an
// ingestion adapter (CSV row, spreadsheet row or live search result).
type RawSignal struct {
	ID             string  `json:"id"`
	Issue          string  `json:"issue"`
	PainIntensity  float64 `json:"pain_intensity"`
	FrequencyCount float64 `json:"frequency_count"`
	SourceURL      string  `json:"source_url"`
	RawText        string  `json:"raw_text"`
	SourceMeta     string  `json:"source_meta,omitempty"`
}
