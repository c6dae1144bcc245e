package model

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Brand identifies one of the consumer brands the engine produces briefs for.
type Brand string

const (
	BrandManMatters Brand = "Man Matters"
	BrandBeBodywise Brand = "Be Bodywise"
	BrandLittleJoys Brand = "Little Joys"
)

// Brands returns every supported brand in display order.
func Brands() []Brand {
	return []Brand{BrandManMatters, BrandBeBodywise, BrandLittleJoys}
}

// Slug returns the lowercase, hyphenated form used in URLs and CLI flags.
func (b Brand) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(b)), " ", "-")
}

// ParseBrand accepts a display name or slug, case-insensitively.
func ParseBrand(s string) (Brand, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", " ", "_", " ").Replace(norm)
	for _, b := range Brands() {
		if strings.ToLower(string(b)) == norm || strings.ReplaceAll(strings.ToLower(string(b)), " ", "") == norm {
			return b, nil
		}
	}
	return "", eris.Errorf("model: unknown brand %q", s)
}

// Mode selects the scoring formula and volume limits for a run.
type Mode string

const (
	// ModeBatch scores aggregated mention counts from an uploaded export.
	ModeBatch Mode = "batch"
	// ModeLive scores individual live-search signals by intensity and frequency.
	ModeLive Mode = "live"
)
