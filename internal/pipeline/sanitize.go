package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/npd-cli/internal/taxonomy"
)

var (
	urlPattern        = regexp.MustCompile(`(?i)https?://\S+|www\.\S+|\w+\.(com|in|co|net|org|io)\b`)
	competitorPattern = regexp.MustCompile(`(?i)trystrawberry|mamaearth|wow|beardo|ustraa|plixlife|oziva|healthkart|nykaa|amazon|flipkart`)
	fillerPattern     = regexp.MustCompile(`(?i)\b(any experiences with|reddit fix|has anyone tried|can someone recommend)\b`)
	multiSpace        = regexp.MustCompile(`\s{2,}`)
	genericName       = regexp.MustCompile(`(?i)^(the|a|an|fix|solution)\s*$`)
	snippetNoise      = regexp.MustCompile(`(?i)Reddit Rules|Privacy Policy|User Agreement|reReddit|Terms of Service|Cookie Notice|Accept All|Sign Up|Log In`)
)

const snippetWords = 10

var titleCaser = cases.Title(language.English)

// productName builds the problem-as-name for a trigger keyword and format,
// then sanitizes it.
func productName(tax *taxonomy.Taxonomy, keyword, format string, pain *taxonomy.PainDefinition) string {
	var raw string
	if name, ok := tax.ProblemName(keyword); ok {
		raw = name + " — " + format
	} else {
		raw = fmt.Sprintf("The %s Fix — %s", titleCaser.String(strings.TrimSpace(keyword)), format)
	}
	return sanitizeProductName(raw, pain, format)
}

// sanitizeProductName strips URLs, competitor brands and forum filler. A
// name left empty or generic is rebuilt from the lead active and format.
func sanitizeProductName(raw string, pain *taxonomy.PainDefinition, format string) string {
	name := urlPattern.ReplaceAllString(raw, "")
	name = competitorPattern.ReplaceAllString(name, "")
	name = fillerPattern.ReplaceAllString(name, "")
	name = multiSpace.ReplaceAllString(name, " ")
	name = strings.Trim(name, " \t\r\n-—·")

	if len([]rune(name)) < 4 || genericName.MatchString(name) || isFormatOnly(name, format) {
		if pain != nil && len(pain.Actives) > 0 {
			return pain.Actives[0] + " " + format
		}
		return format + " Solution"
	}
	return name
}

// isFormatOnly catches names reduced to "The — Gel" style leftovers.
func isFormatOnly(name, format string) bool {
	rest := strings.TrimSpace(strings.TrimSuffix(name, format))
	rest = strings.Trim(rest, " -—·")
	return rest == "" || genericName.MatchString(rest) || strings.EqualFold(rest, "the fix")
}

// sanitizeSnippet replaces site boilerplate with a generated justification.
func sanitizeSnippet(raw, label, format string) string {
	if strings.TrimSpace(raw) == "" || snippetNoise.MatchString(raw) {
		return genericJustification(label, format)
	}
	return strings.TrimSpace(multiSpace.ReplaceAllString(raw, " "))
}

func genericJustification(label, format string) string {
	return fmt.Sprintf("High-intent consumer discussions around %s indicate a clear preference for %s over existing market solutions.", label, format)
}

// extractSnippet keeps roughly the first ten words of a citation.
func extractSnippet(raw string) string {
	words := strings.Fields(raw)
	if len(words) == 0 {
		return "N/A"
	}
	if len(words) <= snippetWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:snippetWords], " ") + "…"
}
