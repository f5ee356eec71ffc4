package httpapi

import (
	"net/http"

	"github.com/dsjohal14/equipdash/internal/libs/config"
)

// HandleConfig returns the configuration record with secrets masked
func (h *Handler) HandleConfig(w http.ResponseWriter, _ *http.Request) {
	warnings := h.cfg.Warnings()
	if warnings == nil {
		warnings = []string{}
	}

	writeJSON(w, http.StatusOK, ConfigResponse{
		Config:   h.cfg.Redacted(),
		Warnings: warnings,
	})
}

// HandleStatus returns the configuration status report
func (h *Handler) HandleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.cfg.Status())
}

// HandleDataSource returns the data source summary
func (h *Handler) HandleDataSource(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.cfg.DataSourceConfig())
}

// HandleValidate returns the validation result. Problems are reported in
// the body; the status code is always 200.
func (h *Handler) HandleValidate(w http.ResponseWriter, _ *http.Request) {
	v := h.cfg.Validate()

	h.logger.Debug().
		Bool("valid", v.IsValid).
		Int("errors", len(v.Errors)).
		Msg("validation requested")

	writeJSON(w, http.StatusOK, v)
}

// HandleVars lists the environment variables and their defaults
func (h *Handler) HandleVars(w http.ResponseWriter, r *http.Request) {
	vars := config.Vars()

	if kind := r.URL.Query().Get("kind"); kind != "" {
		switch config.Kind(kind) {
		case config.KindBool, config.KindInt, config.KindString:
		default:
			writeError(w, http.StatusBadRequest, "kind must be bool, int or string", "INVALID_KIND")
			return
		}
		filtered := vars[:0]
		for _, v := range vars {
			if v.Kind == config.Kind(kind) {
				filtered = append(filtered, v)
			}
		}
		vars = filtered
	}

	writeJSON(w, http.StatusOK, VarsResponse{
		Vars:  vars,
		Count: len(vars),
	})
}
