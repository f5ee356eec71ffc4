package httpapi

import "net/http"

// HandleHealth reports whether the loaded configuration is usable.
// An invalid configuration answers 503 so that readiness probes fail.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	v := h.cfg.Validate()

	resp := HealthResponse{
		Status:     "healthy",
		Mode:       string(h.cfg.Mode),
		ConfigOK:   v.IsValid,
		DataSource: h.cfg.DataSourceConfig().DataSource,
	}
	status := http.StatusOK
	if !v.IsValid {
		resp.Status = "misconfigured"
		status = http.StatusServiceUnavailable
	}

	h.logger.Debug().Bool("config_ok", v.IsValid).Msg("health check")

	writeJSON(w, status, resp)
}
