package pipeline

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/npd-cli/internal/model"
	"github.com/sells-group/npd-cli/internal/taxonomy"
)

func TestClassify_EveryLabelByItsWords(t *testing.T) {
	for _, profile := range taxonomy.Default().Brands {
		for _, pain := range profile.Pains() {
			words := strings.Fields(pain.Label)
			slices.Reverse(words)
			text := "xx " + strings.ToUpper(strings.Join(words, " "))

			m, ok := Classify(&profile, text)
			require.True(t, ok, "%s / %s", profile.Brand, pain.Label)
			assert.Equal(t, pain.Label, m.Label, "%s: %q", profile.Brand, text)
		}
	}
}

func TestClassify_KeywordFallback(t *testing.T) {
	mm := profileFor(t, model.BrandManMatters)

	m, ok := Classify(mm, "Hard water hair fall in Bangalore")
	require.True(t, ok)
	assert.Equal(t, "Hard Water Hairfall", m.Label)
	assert.Equal(t, "hard water", m.Keyword)

	m, ok = Classify(mm, "Persistent flaky scalp")
	require.True(t, ok)
	// "scalp" is a Hard Water Hairfall keyword, which is tried first.
	assert.Equal(t, "Hard Water Hairfall", m.Label)
	assert.Equal(t, "scalp", m.Keyword)
}

func TestClassify_LabelPassBeatsKeywordPass(t *testing.T) {
	mm := profileFor(t, model.BrandManMatters)

	// Contains the Hard Water keyword "scalp" but also every word of
	// "Dandruff Persistence".
	m, ok := Classify(mm, "dandruff persistence on my scalp")
	require.True(t, ok)
	assert.Equal(t, "Dandruff Persistence", m.Label)
	assert.Equal(t, "dandruff", m.Keyword)
}

func TestClassify_LabelKeywordFallsBackToLabel(t *testing.T) {
	mm := profileFor(t, model.BrandManMatters)

	// No Skin Ageing keyword appears in the text.
	m, ok := Classify(mm, "Skin ageing at 32")
	require.True(t, ok)
	assert.Equal(t, "Skin Ageing", m.Label)
	assert.Equal(t, "skin ageing", m.Keyword)

	bw := profileFor(t, model.BrandBeBodywise)
	m, ok = Classify(bw, "strawberry skin")
	require.True(t, ok)
	assert.Equal(t, "Strawberry Skin", m.Label)
	assert.Equal(t, "strawberry skin", m.Keyword)
}

func TestClassify_NoMatch(t *testing.T) {
	mm := profileFor(t, model.BrandManMatters)
	_, ok := Classify(mm, "Need better grooming routine")
	assert.False(t, ok)
	_, ok = Classify(mm, "")
	assert.False(t, ok)
}
