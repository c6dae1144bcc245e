package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.RequestTimeoutSecs)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "https://api.tavily.com", cfg.Search.BaseURL)
	assert.Equal(t, 20, cfg.Search.MaxResults)
	assert.Equal(t, "advanced", cfg.Search.SearchDepth)
	assert.Equal(t, 5, cfg.Search.MinCleanSignals)
	assert.Equal(t, 10, cfg.Search.MaxSignals)
	assert.Empty(t, cfg.Search.APIKey)
	assert.Empty(t, cfg.Taxonomy.File)
	assert.InDelta(t, 1.2, cfg.Scorer.BatchMultiplier, 0.001)
	assert.InDelta(t, 9.9, cfg.Scorer.ScoreCap, 0.001)
	assert.InDelta(t, 3.0, cfg.Scorer.LiveFloor, 0.001)
	assert.InDelta(t, 8.0, cfg.Scorer.BatchDecisionScore, 0.001)
	assert.InDelta(t, 7.5, cfg.Scorer.LiveDecisionScore, 0.001)
	assert.InDelta(t, 1.5, cfg.Scorer.BatchBackfillScore, 0.001)
	assert.Equal(t, 5, cfg.Scorer.MinBriefs)
	assert.Equal(t, 7, cfg.Scorer.MaxLiveBriefs)
	assert.Equal(t, 18, cfg.Scorer.MaxBatchBriefs)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
log:
  level: debug
  format: console
server:
  port: 9090
search:
  max_results: 10
scorer:
  max_live_briefs: 6
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Search.MaxResults)
	assert.Equal(t, 6, cfg.Scorer.MaxLiveBriefs)
	// Defaults still apply for unset values
	assert.Equal(t, 18, cfg.Scorer.MaxBatchBriefs)
	assert.Equal(t, "advanced", cfg.Search.SearchDepth)
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log: [unclosed"), 0644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read file")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
log:
  level: debug
search:
  api_key: from-file
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("NPD_SEARCH_API_KEY", "from-env")
	t.Setenv("NPD_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "from-env", cfg.Search.APIKey)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chdirTemp(t)

	t.Setenv("NPD_SERVER_PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

// validDefaults returns a Config with all defaults populated for validation tests.
func validDefaults() *Config {
	cfg := &Config{}
	cfg.Search.BaseURL = "https://api.tavily.com"
	cfg.Search.MaxResults = 20
	cfg.Search.SearchDepth = "advanced"
	cfg.Search.TimeoutSecs = 20
	cfg.Search.RatePerSec = 2
	cfg.Search.MinCleanSignals = 5
	cfg.Search.MaxSignals = 10
	cfg.Server.Port = 8080
	cfg.Server.RequestTimeoutSecs = 30
	cfg.Server.MaxBodyBytes = 1 << 20
	return cfg
}

func TestValidateAnalyze_NoSearchNeeded(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate("analyze"))
}

func TestValidateLive(t *testing.T) {
	cfg := validDefaults()
	assert.NoError(t, cfg.Validate("live"))

	cfg.Search.MaxResults = 50
	cfg.Search.SearchDepth = "deep"
	err := cfg.Validate("live")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search.max_results must be between 1 and 20")
	assert.Contains(t, err.Error(), "search.search_depth")
}

func TestValidateLive_SignalBounds(t *testing.T) {
	cfg := validDefaults()
	cfg.Search.MaxSignals = 3

	err := cfg.Validate("live")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_signals must be >= search.min_clean_signals")
}

func TestValidateServe_ValidPort(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 9090

	assert.NoError(t, cfg.Validate("serve"))
}

func TestValidateServe_InvalidPort(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 0

	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.port must be > 0")
}

func TestValidateUnknownMode(t *testing.T) {
	cfg := validDefaults()
	err := cfg.Validate("unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}
