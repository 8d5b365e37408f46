// Package metrics exposes the pager's prometheus collectors.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	RangesComputed *prometheus.CounterVec
	PagesListed    *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RangesComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pager",
			Name:      "ranges_computed_total",
			Help:      "Number of page ranges computed, by applicability.",
		}, []string{"applicable"}),
		PagesListed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pager",
			Name:      "pages_listed_total",
			Help:      "Number of page listings served, by storage type.",
		}, []string{"storage"}),
	}

	reg.MustRegister(m.RangesComputed, m.PagesListed)
	return m
}

func (m *Metrics) ObserveRange(applicable bool) {
	m.RangesComputed.WithLabelValues(strconv.FormatBool(applicable)).Inc()
}

func (m *Metrics) ObserveListing(storageType string) {
	m.PagesListed.WithLabelValues(storageType).Inc()
}
