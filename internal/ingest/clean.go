package ingest

import (
	"html"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// FrictionKeywords are phrases that signal a consumer is stuck with a
// problem. Each hit raises pain intensity.
var FrictionKeywords = []string{
	"nothing works", "too expensive", "hard water", "hard water issues",
	"alternative to", "waste of money", "don't buy", "stopped using",
	"didn't work", "still have", "no results", "desperate", "tried everything",
	"any recommendations", "please help", "crying", "frustrated", "give up",
	"patchy", "hormonal acne", "post workout", "hair fall", "dandruff",
	"pediatrician warned", "doctor said", "picky eater", "refuses to eat",
	"not gaining weight", "below average height", "nutritional gap",
	"won't swallow", "spits out", "worried about growth", "percentile dropped",
}

var seoWords = []string{
	"best", "top", "vs", "review", "buy now", "discount", "% off",
	"amazon", "flipkart", "myntra", "nykaa", "shop", "price", "offer",
}

var (
	badTitlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)r/`),
		regexp.MustCompile(`(?i)\bwiki\b`),
		regexp.MustCompile(`(?i)node_modules`),
		regexp.MustCompile(`(?i)\.coffee|\.js|\.ts\b`),
		regexp.MustCompile(`(?i)frequency.list`),
		regexp.MustCompile(`(?i)app\.aspell`),
		regexp.MustCompile(`(?i)admin.message`),
		regexp.MustCompile(`(?i)privacy.polic`),
		regexp.MustCompile(`(?i)terms.of.service`),
		regexp.MustCompile(`(?i)cookie.polic`),
		regexp.MustCompile(`(?i)^https?://`),
		regexp.MustCompile(`^\s*[\W\d]+\s*$`),
	}

	redditSuffix = regexp.MustCompile(`(?i)\s*[-|·•]\s*Reddit.*$`)
	subFragment  = regexp.MustCompile(`(?i)\s*\|\s*r/\w+`)
	leadingTag   = regexp.MustCompile(`^\s*\[.*?\]\s*`)
	multiSpace   = regexp.MustCompile(`\s{2,}`)
	specialChar  = regexp.MustCompile(`[^a-zA-Z0-9\s\-']`)

	upvotes  = regexp.MustCompile(`(\d+)\s*(?:upvotes?|points?|votes?)`)
	comments = regexp.MustCompile(`(\d+)\s*comments?`)
)

var stripPolicy = bluemonday.StrictPolicy()

// StripHTML removes markup from search snippets and unescapes entities.
func StripHTML(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(s)))
}

// CleanTitle drops forum chrome from a result title: "- Reddit" suffixes,
// "| r/sub" fragments and leading "[tag]" markers.
func CleanTitle(title string) string {
	t := redditSuffix.ReplaceAllString(title, "")
	t = subFragment.ReplaceAllString(t, "")
	t = leadingTag.ReplaceAllString(t, "")
	t = multiSpace.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// IsBadTitle reports whether a cleaned title is metadata, SEO or dev noise
// rather than a consumer complaint.
func IsBadTitle(title string) bool {
	if len(strings.TrimSpace(title)) < 5 {
		return true
	}
	for _, re := range badTitlePatterns {
		if re.MatchString(title) {
			return true
		}
	}

	lower := strings.ToLower(title)
	seo := 0
	for _, w := range seoWords {
		if strings.Contains(lower, w) {
			seo++
		}
	}
	if seo >= 2 {
		return true
	}

	special := len(specialChar.FindAllString(title, -1))
	return float64(special)/float64(utf8.RuneCountInString(title)) > 0.25
}

// DetectFrictionKeywords returns the friction phrases present in text.
func DetectFrictionKeywords(text string) []string {
	lower := strings.ToLower(text)
	var hits []string
	for _, k := range FrictionKeywords {
		if strings.Contains(lower, k) {
			hits = append(hits, k)
		}
	}
	return hits
}

// PainIntensity scores severity from friction phrases: 5 plus 0.5 per hit,
// capped at 9.
func PainIntensity(text string) float64 {
	return math.Min(5+0.5*float64(len(DetectFrictionKeywords(text))), 9)
}

// Frequency estimates how many people share a complaint. Explicit vote
// counts win, then comment counts, then trend wording, then friction density.
func Frequency(text string) float64 {
	lower := strings.ToLower(text)
	if m := upvotes.FindStringSubmatch(lower); m != nil {
		return math.Min(count(m[1]), 50)
	}
	if m := comments.FindStringSubmatch(lower); m != nil {
		return math.Max(math.Min(count(m[1])*2, 50), 5)
	}
	if strings.Contains(lower, "rising") || strings.Contains(lower, "trending") || strings.Contains(lower, "yoy") {
		return 35
	}
	return math.Max(float64(4*len(DetectFrictionKeywords(text))), 5)
}

// count parses a run of digits. Counts too large to represent saturate.
func count(digits string) float64 {
	n, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return math.Inf(1)
	}
	return n
}
