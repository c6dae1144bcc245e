package model

// OpportunityType separates gaps where the brand already sells a product from
// gaps it does not serve yet.
type OpportunityType string

const (
	OpportunityOptimization OpportunityType = "Optimization"
	OpportunityBlueOcean    OpportunityType = "Blue Ocean"
)

// CompetitionDensity is the saturation tier derived from a competition proxy.
type CompetitionDensity string

const (
	DensityHigh   CompetitionDensity = "High"
	DensityMedium CompetitionDensity = "Medium"
	DensityLow    CompetitionDensity = "Low"
)

// EvidencePanel carries the numbers behind a brief's score.
type EvidencePanel struct {
	MarketplaceHits    float64            `json:"marketplaceHits"`
	BuzzMentions       int                `json:"redditBuzz"`
	CompetitionDensity CompetitionDensity `json:"competitionDensity"`
	FormulaString      string             `json:"formulaString"`
	EvidenceSnippet    string             `json:"evidenceSnippet,omitempty"`
	SourceURL          string             `json:"sourceUrl,omitempty"`
}

// ProductBrief is the final ranked recommendation. Field names are the
// contract with the rendering and export layers.
type ProductBrief struct {
	ConceptName      string          `json:"conceptName"`
	DynamicName      string          `json:"dynamicName"`
	WhiteSpace       string          `json:"whiteSpace"`
	SignalStrength   float64         `json:"signalStrength"`
	OpportunityScore float64         `json:"opportunityScore"`
	NoveltyRationale string          `json:"noveltyRationale"`
	Ingredients      []string        `json:"ingredients"`
	Citation         string          `json:"citation"`
	Persona          string          `json:"persona"`
	Positioning      string          `json:"positioning"`
	Format           string          `json:"format"`
	MRPRange         string          `json:"mrpRange"`
	IsExploratory    bool            `json:"isExploratory"`
	IsLowSignal      bool            `json:"isLowSignal"`
	IsDecisionReady  bool            `json:"isDecisionReady"`
	Evidence         EvidencePanel   `json:"evidence"`
	OpportunityType  OpportunityType `json:"opportunityType"`
}

// CandidateBrief is a brief built from a single signal, before signals that
// map to the same pain are folded together.
type CandidateBrief struct {
	ProductBrief
	// DedupKey is the matched pain label, or the raw issue text when unmatched.
	DedupKey string `json:"-"`
}
