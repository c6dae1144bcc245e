package scorer

import "github.com/sells-group/npd-cli/internal/model"

// Density tier boundaries on the competition proxy.
const (
	highDensityAbove   = 0.7
	mediumDensityAbove = 0.4
)

// CompetitionDensity buckets a 0-1 competition proxy into a tier.
func CompetitionDensity(proxy float64) model.CompetitionDensity {
	switch {
	case proxy > highDensityAbove:
		return model.DensityHigh
	case proxy > mediumDensityAbove:
		return model.DensityMedium
	default:
		return model.DensityLow
	}
}
