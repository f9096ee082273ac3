// SPDX-License-Identifier: MIT

// Package config resolves the analyze run settings from defaults, an
// optional YAML file, COPURCHASE_* environment variables and bound flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// COPURCHASE_SAMPLE_SIZE or COPURCHASE_REPORT_FORMAT.
const EnvPrefix = "COPURCHASE"

// Viper keys. Nested keys use '.', which the env replacer maps to '_'.
const (
	KeyInput           = "input"
	KeySampleSize      = "sample_size"
	KeyTopN            = "top_n"
	KeyWorkers         = "workers"
	KeySeed            = "seed"
	KeyStrict          = "strict"
	KeyReportPath      = "report.path"
	KeyReportFormat    = "report.format"
	KeyClosenessChart  = "charts.closeness"
	KeyClusteringChart = "charts.clustering"
	KeyMetricsOut      = "metrics_out"
	KeyVerbose         = "log.verbose"
	KeyLogFormat       = "log.format"
)

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Report selects where and how the report is written. An empty Path
// disables the report file.
type Report struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format" validate:"oneof=text yaml"`
}

// Charts holds the PNG destinations. Empty paths skip the chart.
type Charts struct {
	Closeness  string `mapstructure:"closeness"`
	Clustering string `mapstructure:"clustering"`
}

// Log configures the CLI logger.
type Log struct {
	Verbose bool   `mapstructure:"verbose"`
	Format  string `mapstructure:"format" validate:"oneof=auto console json"`
}

// Config is the fully resolved analyze configuration.
type Config struct {
	Input      string `mapstructure:"input" validate:"required"`
	SampleSize int    `mapstructure:"sample_size" validate:"gte=1"`
	TopN       int    `mapstructure:"top_n" validate:"gte=1"`
	Workers    int    `mapstructure:"workers" validate:"gte=0"`
	Strict     bool   `mapstructure:"strict"`
	MetricsOut string `mapstructure:"metrics_out"`

	Report Report `mapstructure:"report"`
	Charts Charts `mapstructure:"charts"`
	Log    Log    `mapstructure:"log"`

	// Seed is nil unless a seed was set explicitly; nil means a
	// time-seeded closeness sample.
	Seed *int64 `mapstructure:"-"`
}

// New returns a viper instance carrying the defaults and env binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// SetDefaults registers every key so env overrides reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyInput, "")
	v.SetDefault(KeySampleSize, 150)
	v.SetDefault(KeyTopN, 10)
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyReportPath, "report.txt")
	v.SetDefault(KeyReportFormat, "text")
	v.SetDefault(KeyClosenessChart, "closeness_centrality.png")
	v.SetDefault(KeyClusteringChart, "clustering_coefficient.png")
	v.SetDefault(KeyMetricsOut, "")
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyLogFormat, "auto")
}

// ReadFile merges the YAML file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("ReadFile(%s): %w", path, err)
	}

	return nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	if v.IsSet(KeySeed) {
		seed := v.GetInt64(KeySeed)
		cfg.Seed = &seed
	}
	cfg.Report.Format = strings.ToLower(cfg.Report.Format)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = validator.New()

// Validate checks the struct tags and reports every failing field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(strings.TrimPrefix(fe.Namespace(), "Config."))
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
