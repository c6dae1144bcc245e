package pipeline

import (
	"strings"

	"github.com/sells-group/npd-cli/internal/taxonomy"
)

// Match is a classifier hit.
type Match struct {
	Label string
	// Keyword is the trigger that fired, used for product naming. For a
	// label-name hit it is the first pain keyword present in the text,
	// falling back to the lowercased label.
	Keyword string
}

// Classify maps free text to a pain label. Labels are tried in priority
// order (established, then exploratory). The first pass matches the label
// name itself; the second falls back to keyword lists. The first hit wins.
func Classify(profile *taxonomy.BrandProfile, text string) (Match, bool) {
	lower := strings.ToLower(text)
	pains := profile.Pains()

	for _, p := range pains {
		if containsLabel(lower, p.Label) {
			kw := firstKeyword(lower, p.Keywords)
			if kw == "" {
				kw = strings.ToLower(p.Label)
			}
			return Match{Label: p.Label, Keyword: kw}, true
		}
	}

	for _, p := range pains {
		if kw := firstKeyword(lower, p.Keywords); kw != "" {
			return Match{Label: p.Label, Keyword: kw}, true
		}
	}
	return Match{}, false
}

func containsLabel(lowerText, label string) bool {
	l := strings.ToLower(label)
	if strings.Contains(lowerText, l) {
		return true
	}
	words := strings.Fields(l)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !strings.Contains(lowerText, w) {
			return false
		}
	}
	return true
}

func firstKeyword(lowerText string, keywords []string) string {
	for _, k := range keywords {
		if k != "" && strings.Contains(lowerText, strings.ToLower(k)) {
			return strings.ToLower(k)
		}
	}
	return ""
}
