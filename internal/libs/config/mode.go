package config

import "strings"

// Mode is the build mode the application runs under.
type Mode string

// Known modes. Any other value is treated as a non-production mode.
const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
	ModeTest        Mode = "test"
)

// EnvMode selects the mode when none is given explicitly.
const EnvMode = "MODE"

// ParseMode normalizes s, defaulting to development.
func ParseMode(s string) Mode {
	s = strings.TrimSpace(s)
	if s == "" {
		return ModeDevelopment
	}
	return Mode(s)
}

// IsProduction reports whether m is the production mode.
func (m Mode) IsProduction() bool {
	return m == ModeProduction
}

// IsDevelopment is the complement of IsProduction.
func (m Mode) IsDevelopment() bool {
	return !m.IsProduction()
}
