package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Module provides application metrics registered with the default registry.
var Module = fx.Provide(newMetrics)

var defaultRegisterer prometheus.Registerer = prometheus.DefaultRegisterer

func newMetrics() (*Metrics, error) {
	return New(defaultRegisterer)
}
