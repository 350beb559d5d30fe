package workflow

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	requestsCreated *prometheus.CounterVec
	transitions     *prometheus.CounterVec
}

var metricsSingleton = sync.OnceValue(func() *metrics {
	return &metrics{
		requestsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workflow",
			Name:      "requests_created_total",
			Help:      "Total number of membership requests opened, by initial status.",
		}, []string{"status"}),
		transitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workflow",
			Name:      "transitions_total",
			Help:      "Total number of request status transitions.",
		}, []string{"from", "to"}),
	}
})

func getMetrics() *metrics {
	return metricsSingleton()
}
