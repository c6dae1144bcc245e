package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Search   SearchConfig   `yaml:"search" mapstructure:"search"`
	Scorer   ScorerConfig   `yaml:"scorer" mapstructure:"scorer"`
	Taxonomy TaxonomyConfig `yaml:"taxonomy" mapstructure:"taxonomy"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// SearchConfig configures the live web search adapter.
type SearchConfig struct {
	APIKey           string  `yaml:"api_key" mapstructure:"api_key"`
	BaseURL          string  `yaml:"base_url" mapstructure:"base_url"`
	MaxResults       int     `yaml:"max_results" mapstructure:"max_results"`
	SearchDepth      string  `yaml:"search_depth" mapstructure:"search_depth"`
	TimeoutSecs      int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	Retries          int     `yaml:"retries" mapstructure:"retries"`
	RatePerSec       float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	BreakerThreshold int     `yaml:"breaker_threshold" mapstructure:"breaker_threshold"`
	BreakerResetSecs int     `yaml:"breaker_reset_secs" mapstructure:"breaker_reset_secs"`
	MinCleanSignals  int     `yaml:"min_clean_signals" mapstructure:"min_clean_signals"`
	MaxSignals       int     `yaml:"max_signals" mapstructure:"max_signals"`
}

// ScorerConfig holds the opportunity scoring coefficients and the
// volume limits applied to a run's brief list.
type ScorerConfig struct {
	// Batch formula: min(hits * BatchMultiplier / proxy / BatchDivisor, ScoreCap).
	BatchMultiplier float64 `yaml:"batch_multiplier" mapstructure:"batch_multiplier"`
	BatchDivisor    float64 `yaml:"batch_divisor" mapstructure:"batch_divisor"`
	ScoreCap        float64 `yaml:"score_cap" mapstructure:"score_cap"`

	// Live formula.
	LiveFloor           float64 `yaml:"live_floor" mapstructure:"live_floor"`
	IntensityWeight     float64 `yaml:"intensity_weight" mapstructure:"intensity_weight"`
	IntensityCap        float64 `yaml:"intensity_cap" mapstructure:"intensity_cap"`
	FrequencyWeight     float64 `yaml:"frequency_weight" mapstructure:"frequency_weight"`
	FrequencyDivisor    float64 `yaml:"frequency_divisor" mapstructure:"frequency_divisor"`
	FrequencyCap        float64 `yaml:"frequency_cap" mapstructure:"frequency_cap"`
	Jitter              float64 `yaml:"jitter" mapstructure:"jitter"`
	BatchDecisionScore  float64 `yaml:"batch_decision_score" mapstructure:"batch_decision_score"`
	LiveDecisionScore   float64 `yaml:"live_decision_score" mapstructure:"live_decision_score"`
	BatchLowSignalHits  float64 `yaml:"batch_low_signal_hits" mapstructure:"batch_low_signal_hits"`
	LiveLowIntensity    float64 `yaml:"live_low_intensity" mapstructure:"live_low_intensity"`
	LiveLowFrequency    float64 `yaml:"live_low_frequency" mapstructure:"live_low_frequency"`
	BatchBuzzRatio      float64 `yaml:"batch_buzz_ratio" mapstructure:"batch_buzz_ratio"`
	LiveBuzzRatio       float64 `yaml:"live_buzz_ratio" mapstructure:"live_buzz_ratio"`
	BackfillBase        float64 `yaml:"backfill_base" mapstructure:"backfill_base"`
	BackfillSpread      float64 `yaml:"backfill_spread" mapstructure:"backfill_spread"`
	BatchBackfillScore  float64 `yaml:"batch_backfill_score" mapstructure:"batch_backfill_score"`
	MinBriefs           int     `yaml:"min_briefs" mapstructure:"min_briefs"`
	MaxLiveBriefs       int     `yaml:"max_live_briefs" mapstructure:"max_live_briefs"`
	MaxBatchBriefs      int     `yaml:"max_batch_briefs" mapstructure:"max_batch_briefs"`
}

// TaxonomyConfig points at an optional replacement pain catalog.
type TaxonomyConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port               int      `yaml:"port" mapstructure:"port"`
	RequestTimeoutSecs int      `yaml:"request_timeout_secs" mapstructure:"request_timeout_secs"`
	AllowedOrigins     []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	MaxBodyBytes       int64    `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("NPD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.request_timeout_secs", 30)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.max_body_bytes", 5<<20)
	v.SetDefault("search.api_key", "")
	v.SetDefault("search.base_url", "https://api.tavily.com")
	v.SetDefault("search.max_results", 20)
	v.SetDefault("search.search_depth", "advanced")
	v.SetDefault("search.timeout_secs", 20)
	v.SetDefault("search.retries", 2)
	v.SetDefault("search.rate_per_sec", 2.0)
	v.SetDefault("search.breaker_threshold", 3)
	v.SetDefault("search.breaker_reset_secs", 60)
	v.SetDefault("search.min_clean_signals", 5)
	v.SetDefault("search.max_signals", 10)
	v.SetDefault("taxonomy.file", "")
	v.SetDefault("scorer.batch_multiplier", 1.2)
	v.SetDefault("scorer.batch_divisor", 10.0)
	v.SetDefault("scorer.score_cap", 9.9)
	v.SetDefault("scorer.live_floor", 3.0)
	v.SetDefault("scorer.intensity_weight", 1.2)
	v.SetDefault("scorer.intensity_cap", 10.0)
	v.SetDefault("scorer.frequency_weight", 0.5)
	v.SetDefault("scorer.frequency_divisor", 5.0)
	v.SetDefault("scorer.frequency_cap", 10.0)
	v.SetDefault("scorer.jitter", 2.0)
	v.SetDefault("scorer.batch_decision_score", 8.0)
	v.SetDefault("scorer.live_decision_score", 7.5)
	v.SetDefault("scorer.batch_low_signal_hits", 3.0)
	v.SetDefault("scorer.live_low_intensity", 5.0)
	v.SetDefault("scorer.live_low_frequency", 10.0)
	v.SetDefault("scorer.batch_buzz_ratio", 0.25)
	v.SetDefault("scorer.live_buzz_ratio", 0.3)
	v.SetDefault("scorer.backfill_base", 4.0)
	v.SetDefault("scorer.backfill_spread", 3.0)
	v.SetDefault("scorer.batch_backfill_score", 1.5)
	v.SetDefault("scorer.min_briefs", 5)
	v.SetDefault("scorer.max_live_briefs", 7)
	v.SetDefault("scorer.max_batch_briefs", 18)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
