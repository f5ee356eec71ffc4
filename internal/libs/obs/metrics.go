package obs

import (
	"net/http"

	"github.com/dsjohal14/equipdash/internal/libs/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "equipdash"

// ConfigCollector exposes the loaded configuration as Prometheus gauges.
// The configuration never changes, so the gauges are set once.
type ConfigCollector struct {
	registry *prometheus.Registry

	valid      prometheus.Gauge
	errorCount prometheus.Gauge
	features   *prometheus.GaugeVec
	info       *prometheus.GaugeVec
}

// NewConfigCollector registers the configuration gauges on registry and
// records cfg. A nil registry gets a fresh one.
func NewConfigCollector(cfg *config.Config, registry *prometheus.Registry) *ConfigCollector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &ConfigCollector{
		registry: registry,
		valid: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "config",
			Name:      "valid",
			Help:      "1 when the configuration passed validation.",
		}),
		errorCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "config",
			Name:      "validation_errors",
			Help:      "Number of configuration validation errors.",
		}),
		features: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "config",
			Name:      "feature_enabled",
			Help:      "1 when the feature flag is enabled.",
		}, []string{"feature"}),
		info: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "config",
			Name:      "info",
			Help:      "Always 1; labels describe the build mode and data source.",
		}, []string{"mode", "data_source"}),
	}

	registry.MustRegister(c.valid, c.errorCount, c.features, c.info)
	c.record(cfg)
	return c
}

func (c *ConfigCollector) record(cfg *config.Config) {
	v := cfg.Validate()
	if v.IsValid {
		c.valid.Set(1)
	} else {
		c.valid.Set(0)
	}
	c.errorCount.Set(float64(len(v.Errors)))

	flags := map[string]bool{
		"authentication":         cfg.Features.Authentication,
		"real_time_updates":      cfg.Features.RealTimeUpdates,
		"file_uploads":           cfg.Features.FileUploads,
		"email_notifications":    cfg.Notifications.Email,
		"push_notifications":     cfg.Notifications.Push,
		"analytics":              cfg.Analytics.Enabled,
		"dev_tools":              cfg.DevTools.ReactDevTools,
		"performance_monitoring": cfg.DevTools.PerformanceMonitoring,
		"debug_logging":          cfg.Logging.Debug,
	}
	for name, on := range flags {
		if on {
			c.features.WithLabelValues(name).Set(1)
		} else {
			c.features.WithLabelValues(name).Set(0)
		}
	}

	c.info.WithLabelValues(string(cfg.Mode), cfg.DataSourceConfig().DataSource).Set(1)
}

// Registry returns the registry the gauges live in.
func (c *ConfigCollector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler returns an HTTP handler for the Prometheus metrics endpoint.
func (c *ConfigCollector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}
