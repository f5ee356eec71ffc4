// Package httpapi provides HTTP handlers and data transfer objects for the dashboard configuration API.
package httpapi

import "github.com/dsjohal14/equipdash/internal/libs/config"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status     string `json:"status"`
	Mode       string `json:"mode"`
	ConfigOK   bool   `json:"config_ok"`
	DataSource string `json:"data_source"`
}

// ConfigResponse wraps the redacted configuration record
type ConfigResponse struct {
	Config   *config.Config `json:"config"`
	Warnings []string       `json:"warnings"`
}

// VarsResponse lists the environment variables the loader reads
type VarsResponse struct {
	Vars  []config.Var `json:"vars"`
	Count int          `json:"count"`
}

// ErrorResponse represents API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
