package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBrand(t *testing.T) {
	tests := []struct {
		in   string
		want Brand
	}{
		{"Man Matters", BrandManMatters},
		{"man-matters", BrandManMatters},
		{"  BE_BODYWISE ", BrandBeBodywise},
		{"littlejoys", BrandLittleJoys},
		{"little joys", BrandLittleJoys},
	}
	for _, tt := range tests {
		got, err := ParseBrand(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseBrand("Acme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown brand "Acme"`)
}

func TestBrandSlug(t *testing.T) {
	assert.Equal(t, "man-matters", BrandManMatters.Slug())
	assert.Equal(t, "be-bodywise", BrandBeBodywise.Slug())
	assert.Equal(t, "little-joys", BrandLittleJoys.Slug())
}

func TestBrands_Order(t *testing.T) {
	assert.Equal(t, []Brand{BrandManMatters, BrandBeBodywise, BrandLittleJoys}, Brands())
}

func TestProductBrief_WireNames(t *testing.T) {
	data, err := json.Marshal(ProductBrief{
		DynamicName: "x",
		Evidence:    EvidencePanel{BuzzMentions: 3},
	})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	for _, k := range []string{"conceptName", "dynamicName", "whiteSpace", "opportunityScore", "isDecisionReady", "mrpRange", "opportunityType"} {
		assert.Contains(t, m, k)
	}
	ev := m["evidence"].(map[string]any)
	assert.InDelta(t, 3, ev["redditBuzz"], 1e-9)
	assert.NotContains(t, ev, "evidenceSnippet")
}
