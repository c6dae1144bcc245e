package pipeline

import (
	"strings"

	"github.com/sells-group/npd-cli/internal/taxonomy"
)

// Passes reports whether a record is safe to analyze for a brand. Blocked
// terms always win; a non-empty allow-list additionally requires at least
// one allowed topic. Matching is case-insensitive substring containment.
func Passes(g taxonomy.Guardrail, issue, rawText string) bool {
	text := strings.ToLower(issue + " " + rawText)
	for _, term := range g.BlockedTerms {
		if term != "" && strings.Contains(text, strings.ToLower(term)) {
			return false
		}
	}
	if len(g.AllowedTopics) == 0 {
		return true
	}
	for _, topic := range g.AllowedTopics {
		if topic != "" && strings.Contains(text, strings.ToLower(topic)) {
			return true
		}
	}
	return false
}
