package config

import (
	"errors"
	"fmt"
	"strings"
)

// Data source tokens returned by DataSourceConfig.
const (
	DataSourceHardcoded = "hardcoded"
	DataSourceSupabase  = "supabase"
)

// Data source labels returned by Status.
const (
	LabelHardcoded = "Hardcoded Data"
	LabelSupabase  = "Supabase"
)

// Validation messages, in the order they are checked.
const (
	ErrNoDataSource       = "Either hardcoded data or Supabase must be enabled"
	ErrSupabaseURLMissing = "Supabase URL is required when Supabase is enabled"
	ErrSupabaseKeyMissing = "Supabase anon key is required when Supabase is enabled"
)

// DataSourceConfig summarizes where the application reads its data from.
type DataSourceConfig struct {
	UseHardcodedData bool   `json:"useHardcodedData" yaml:"useHardcodedData"`
	SupabaseEnabled  bool   `json:"supabaseEnabled" yaml:"supabaseEnabled"`
	DataSource       string `json:"dataSource" yaml:"dataSource"`
}

// ValidationResult lists configuration problems in check order.
type ValidationResult struct {
	IsValid bool     `json:"isValid" yaml:"isValid"`
	Errors  []string `json:"errors" yaml:"errors"`
}

// Err joins the problems into one error, or returns nil when valid.
func (v ValidationResult) Err() error {
	if v.IsValid {
		return nil
	}
	errs := make([]error, 0, len(v.Errors))
	for _, msg := range v.Errors {
		errs = append(errs, errors.New(msg))
	}
	return errors.Join(errs...)
}

// FeatureStatus projects the feature flags under short names.
type FeatureStatus struct {
	Auth        bool `json:"auth" yaml:"auth"`
	RealTime    bool `json:"realTime" yaml:"realTime"`
	FileUploads bool `json:"fileUploads" yaml:"fileUploads"`
}

// Status is the validation result plus a human readable summary.
type Status struct {
	IsValid            bool          `json:"isValid" yaml:"isValid"`
	Errors             []string      `json:"errors" yaml:"errors"`
	DataSource         string        `json:"dataSource" yaml:"dataSource"`
	SupabaseConfigured bool          `json:"supabaseConfigured" yaml:"supabaseConfigured"`
	Features           FeatureStatus `json:"features" yaml:"features"`
}

// DataSourceConfig reports the active data source. Hardcoded data wins
// whenever it is enabled, whether or not Supabase is usable.
func (c *Config) DataSourceConfig() DataSourceConfig {
	source := DataSourceSupabase
	if c.UseHardcodedData {
		source = DataSourceHardcoded
	}
	return DataSourceConfig{
		UseHardcodedData: c.UseHardcodedData,
		SupabaseEnabled:  c.SupabaseEnabled,
		DataSource:       source,
	}
}

// Validate checks that a data source is enabled and that Supabase has
// its credentials when it is.
func (c *Config) Validate() ValidationResult {
	errs := []string{}

	if !c.UseHardcodedData && !c.SupabaseEnabled {
		errs = append(errs, ErrNoDataSource)
	}

	if c.SupabaseEnabled {
		if c.Supabase.URL == "" {
			errs = append(errs, ErrSupabaseURLMissing)
		}
		if c.Supabase.AnonKey == "" {
			errs = append(errs, ErrSupabaseKeyMissing)
		}
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// SupabaseConfigured reports whether both Supabase credentials are set,
// independent of SupabaseEnabled.
func (c *Config) SupabaseConfigured() bool {
	return c.Supabase.URL != "" && c.Supabase.AnonKey != ""
}

// Status combines Validate with the data source label, Supabase
// credential presence and the main feature flags.
func (c *Config) Status() Status {
	v := c.Validate()

	label := LabelSupabase
	if c.UseHardcodedData {
		label = LabelHardcoded
	}

	return Status{
		IsValid:            v.IsValid,
		Errors:             v.Errors,
		DataSource:         label,
		SupabaseConfigured: c.SupabaseConfigured(),
		Features: FeatureStatus{
			Auth:        c.Features.Authentication,
			RealTime:    c.Features.RealTimeUpdates,
			FileUploads: c.Features.FileUploads,
		},
	}
}

var knownLogLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}

// Warnings returns advisory messages. They never affect Validate.
func (c *Config) Warnings() []string {
	var warns []string

	if c.API.Timeout.IsNaN() {
		warns = append(warns, fmt.Sprintf("%s is not a number", EnvAPITimeout))
	}
	if c.DevServer.Port.IsNaN() {
		warns = append(warns, fmt.Sprintf("%s is not a number", EnvDevServerPort))
	} else if p := c.DevServer.Port.Value; p < 1 || p > 65535 {
		warns = append(warns, fmt.Sprintf("%s must be between 1 and 65535, got %d", EnvDevServerPort, p))
	}
	if c.IsProduction() && c.Security.JWTSecret == DefaultJWTSecret {
		warns = append(warns, fmt.Sprintf("%s uses the development default in production", EnvJWTSecret))
	}
	if c.Analytics.Enabled && c.Analytics.ID == "" {
		warns = append(warns, fmt.Sprintf("%s is empty while analytics is enabled", EnvAnalyticsID))
	}
	if !isKnownLogLevel(c.Logging.Level) {
		warns = append(warns, fmt.Sprintf("%s %q is not one of %s", EnvLogLevel, c.Logging.Level, strings.Join(knownLogLevels, ", ")))
	}

	return warns
}

func isKnownLogLevel(level string) bool {
	for _, l := range knownLogLevels {
		if strings.EqualFold(l, level) {
			return true
		}
	}
	return false
}
