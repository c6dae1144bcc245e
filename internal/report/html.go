package report

import (
	"bytes"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rotisserie/eris"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/sells-group/npd-cli/internal/model"
)

var (
	markdown   = goldmark.New(goldmark.WithExtensions(extension.GFM))
	htmlPolicy = bluemonday.UGCPolicy()
)

const pageStyle = "body{font-family:system-ui,sans-serif;max-width:960px;margin:2rem auto;padding:0 1rem;color:#1c1917}" +
	"table{border-collapse:collapse;width:100%;font-size:.9rem}" +
	"th,td{border:1px solid #a8a29e;padding:.35rem .5rem;text-align:left;vertical-align:top}" +
	"thead th{background:#f1f5f9}"

// HTML renders the decision report as a standalone HTML page. Consumer
// text is sanitized after conversion.
func (r *Reporter) HTML(res *model.AnalysisResult) (string, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(r.Markdown(res)), &body); err != nil {
		return "", eris.Wrap(err, "report: convert markdown")
	}

	title := html.EscapeString(string(res.Brand) + " — NPD Decision Pipeline Report")
	return "<!doctype html><html><head><meta charset=\"utf-8\"><title>" + title + "</title>" +
		"<style>" + pageStyle + "</style></head><body>" +
		htmlPolicy.Sanitize(body.String()) +
		"</body></html>\n", nil
}
