// Package metrics provides Prometheus metrics for the estimate service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	AuthorityRequestsTotal   *prometheus.CounterVec
	AuthorityRequestDuration *prometheus.HistogramVec

	RecallLookupsTotal     *prometheus.CounterVec
	EstimateSubmissions    *prometheus.CounterVec
	StaleSelectionsDropped prometheus.Counter
	CatalogRefreshesTotal  *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		AuthorityRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "evwarranty_authority_requests_total",
				Help: "Requests sent to the warranty authority",
			},
			[]string{"operation", "outcome"},
		),
		AuthorityRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "evwarranty_authority_request_duration_seconds",
				Help:    "Duration of requests sent to the warranty authority",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		RecallLookupsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "evwarranty_recall_lookups_total",
				Help: "Recall constraint lookups by result (restricted, unrestricted, degraded)",
			},
			[]string{"result"},
		),
		EstimateSubmissions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "evwarranty_estimate_submissions_total",
				Help: "Estimate create/update submissions by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		StaleSelectionsDropped: f.NewCounter(
			prometheus.CounterOpts{
				Name: "evwarranty_stale_selections_dropped_total",
				Help: "Claim loads discarded because the selection changed before they completed",
			},
		),
		CatalogRefreshesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "evwarranty_catalog_refreshes_total",
				Help: "Part catalog reloads by outcome",
			},
			[]string{"outcome"},
		),
	}
}

func (m *Metrics) ObserveAuthority(operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.AuthorityRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.AuthorityRequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *Metrics) RecallLookup(result string) {
	if m == nil {
		return
	}
	m.RecallLookupsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) EstimateSubmission(operation, outcome string) {
	if m == nil {
		return
	}
	m.EstimateSubmissions.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) StaleSelection() {
	if m == nil {
		return
	}
	m.StaleSelectionsDropped.Inc()
}

func (m *Metrics) CatalogRefresh(outcome string) {
	if m == nil {
		return
	}
	m.CatalogRefreshesTotal.WithLabelValues(outcome).Inc()
}
