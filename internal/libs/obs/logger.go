// Package obs provides logging and metrics for the dashboard services.
package obs

import (
	"os"

	"github.com/dsjohal14/equipdash/internal/libs/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger initializes the global logger
func InitLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Parse log level
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)
}

// InitFromConfig initializes the global logger from the logging group.
// Debug logging overrides the level; development mode prints to the console.
func InitFromConfig(cfg *config.Config) {
	level := cfg.Logging.Level
	if cfg.Logging.Debug {
		level = zerolog.DebugLevel.String()
	}
	InitLogger(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// Logger returns a new logger with the given component name
func Logger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// LogValidation reports validation errors and warnings of cfg.
// It returns true when the configuration is valid.
func LogValidation(logger zerolog.Logger, cfg *config.Config) bool {
	v := cfg.Validate()
	for _, msg := range v.Errors {
		logger.Error().Str("mode", string(cfg.Mode)).Msg(msg)
	}
	for _, msg := range cfg.Warnings() {
		logger.Warn().Str("mode", string(cfg.Mode)).Msg(msg)
	}

	ds := cfg.DataSourceConfig()
	logger.Info().
		Bool("valid", v.IsValid).
		Str("data_source", ds.DataSource).
		Bool("supabase_configured", cfg.SupabaseConfigured()).
		Msg("configuration loaded")

	return v.IsValid
}
