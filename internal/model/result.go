package model

// RunStats summarises what happened during one analysis call.
type RunStats struct {
	// TotalRows is the number of records handed to the engine.
	TotalRows int `json:"totalRows"`
	// Rejected counts records dropped by the brand guardrail.
	Rejected int `json:"rejected"`
	// Unmatched counts accepted records the classifier could not label.
	Unmatched int `json:"unmatched"`
	// HighIntensityGaps counts briefs backed by real signal volume.
	HighIntensityGaps int `json:"highIntensityGaps"`
	DatasetsAnalyzed  int `json:"datasetsAnalyzed"`
	Backfilled        int `json:"backfilled"`
	BlueOceanCount    int `json:"blueOceanCount"`
	OptimizationCount int `json:"optimizationCount"`
}

// AnalysisResult is the output of a batch (export) analysis.
type AnalysisResult struct {
	Brand  Brand          `json:"brand"`
	Mode   Mode           `json:"mode"`
	Briefs []ProductBrief `json:"briefs"`
	NoData bool           `json:"noData"`
	Stats  RunStats       `json:"stats"`
}

// LivePulseResult is the output of a live scan. Source records whether the
// signals came from live search, the built-in sample set, or both.
type LivePulseResult struct {
	AnalysisResult
	Source     string      `json:"source"`
	RawSignals []RawSignal `json:"rawSignals"`
}
