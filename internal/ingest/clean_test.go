package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hard water is killing my hair - Reddit", "Hard water is killing my hair"},
		{"Patchy beard help : r/beards | Reddit", "Patchy beard help : r/beards"},
		{"Dandruff again | r/IndianSkincareAddicts", "Dandruff again"},
		{"[Help]  Toddler refuses   food", "Toddler refuses food"},
		{"Plain title", "Plain title"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanTitle(tt.in), tt.in)
	}
}

func TestIsBadTitle(t *testing.T) {
	tests := []struct {
		title string
		bad   bool
	}{
		{"Hard water is destroying my scalp", false},
		{"abc", true},
		{"Posting rules for r/IndianSkincareAddicts", true},
		{"Community wiki page", true},
		{"node_modules cache error", true},
		{"https://example.com/thread", true},
		{"12345 !!!", true},
		{"Best price offer on shampoo", true},
		{"Best shampoo for hair fall", false},
		{"@@@ ### $$$ hair ***", true},
		{"Privacy Policy", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.bad, IsBadTitle(tt.title), tt.title)
	}
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Nothing works & I'm desperate", StripHTML("<p>Nothing <b>works</b> &amp; I&#39;m desperate</p>"))
	assert.Equal(t, "", StripHTML("<script>alert(1)</script>"))
}

func TestDetectFrictionKeywords(t *testing.T) {
	got := DetectFrictionKeywords("Nothing works. Hard water issues and hair fall; I'm desperate")
	assert.Equal(t, []string{"nothing works", "hard water", "hard water issues", "desperate", "hair fall"}, got)
	assert.Empty(t, DetectFrictionKeywords("all good here"))
}

func TestPainIntensity(t *testing.T) {
	assert.InDelta(t, 5, PainIntensity("fine"), 1e-9)
	assert.InDelta(t, 6, PainIntensity("nothing works, desperate"), 1e-9)
	assert.InDelta(t, 9, PainIntensity("nothing works too expensive hard water desperate crying frustrated give up patchy dandruff"), 1e-9)
}

func TestFrequency(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"upvotes", "230 upvotes and counting", 50},
		{"points", "12 points", 12},
		{"comments doubled", "8 comments", 16},
		{"comments floor", "1 comment", 5},
		{"comments cap", "90 comments", 50},
		{"huge upvotes", "99999999999999999999 upvotes", 50},
		{"huge comments", "99999999999999999999 comments", 50},
		{"trend", "Rising 180% YoY", 35},
		{"friction", "nothing works, desperate, frustrated", 12},
		{"floor", "quiet thread", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Frequency(tt.text), 1e-9)
		})
	}
}
