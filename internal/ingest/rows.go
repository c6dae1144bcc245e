package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sells-group/npd-cli/internal/model"
)

var (
	contentHeaders = []string{"body", "text", "comment", "review", "content", "title", "selftext", "description"}
	impactHeaders  = []string{"score", "upvotes", "likes", "ups", "votes", "points"}

	leadingInt = regexp.MustCompile(`^[+-]?\d+`)
)

// Columns locates the text and engagement columns of an export. -1 means
// not found.
type Columns struct {
	Content int
	Impact  int
}

// DetectColumns picks the first header containing a content keyword and
// the first containing an impact keyword, case-insensitively.
func DetectColumns(header []string) Columns {
	cols := Columns{Content: -1, Impact: -1}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		if cols.Content < 0 && containsAny(h, contentHeaders) {
			cols.Content = i
		}
		if cols.Impact < 0 && containsAny(h, impactHeaders) {
			cols.Impact = i
		}
	}
	return cols
}

// Signals maps table rows to batch signals. Without a content column the
// whole row is the text. Impact becomes the frequency weight.
func (t *Table) Signals() []model.RawSignal {
	cols := DetectColumns(t.Header)
	out := make([]model.RawSignal, 0, len(t.Rows))
	for i, row := range t.Rows {
		text := strings.Join(row, " ")
		if cols.Content >= 0 {
			text = row[cols.Content]
		}
		impact := 1
		if cols.Impact >= 0 {
			impact = parseImpact(row[cols.Impact])
		}
		out = append(out, model.RawSignal{
			ID:             fmt.Sprintf("row-%d", i+1),
			Issue:          text,
			RawText:        text,
			FrequencyCount: float64(impact),
			SourceMeta:     "export",
		})
	}
	return out
}

// parseImpact reads a leading integer ("12", "12.7", "12 upvotes").
// Missing, unparseable or non-positive values count as 1.
func parseImpact(s string) int {
	m := leadingInt.FindString(strings.TrimSpace(s))
	if m == "" {
		return 1
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
