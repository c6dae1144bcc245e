package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRun(t *testing.T) {
	before := testutil.ToFloat64(RunsTotal.WithLabelValues("Little Joys", "batch"))
	beforeBO := testutil.ToFloat64(BriefsTotal.WithLabelValues("Little Joys", "Blue Ocean"))

	RecordRun("Little Joys", "batch", map[string]int{"Blue Ocean": 3, "Optimization": 1})

	assert.InDelta(t, before+1, testutil.ToFloat64(RunsTotal.WithLabelValues("Little Joys", "batch")), 1e-9)
	assert.InDelta(t, beforeBO+3, testutil.ToFloat64(BriefsTotal.WithLabelValues("Little Joys", "Blue Ocean")), 1e-9)
}

func TestRecordSignals(t *testing.T) {
	before := testutil.ToFloat64(SignalsTotal.WithLabelValues("Man Matters", OutcomeRejected))

	RecordSignals("Man Matters", 2, 5, 1)

	assert.InDelta(t, before+2, testutil.ToFloat64(SignalsTotal.WithLabelValues("Man Matters", OutcomeRejected)), 1e-9)
}

func TestRecordLiveSearch(t *testing.T) {
	before := testutil.ToFloat64(LiveSearchTotal.WithLabelValues("Be Bodywise", "sample"))
	RecordLiveSearch("Be Bodywise", "sample")
	assert.InDelta(t, before+1, testutil.ToFloat64(LiveSearchTotal.WithLabelValues("Be Bodywise", "sample")), 1e-9)
}

func TestRecordHTTP(t *testing.T) {
	RecordHTTP("/health", "200", 0.01)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(HTTPDuration), 1)
}
