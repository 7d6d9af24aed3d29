// Package metrics exposes Prometheus collectors for spin settlement.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "spin"

// Metrics holds the settlement collectors.
type Metrics struct {
	settled            *prometheus.CounterVec
	rejected           *prometheus.CounterVec
	downgrades         prometheus.Counter
	payout             prometheus.Counter
	signatureMismatch  prometheus.Counter
	settlementDuration prometheus.Histogram
}

// New creates the collectors and registers them with reg. A nil reg leaves
// them unregistered, which is what tests want.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		settled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settled_total",
			Help:      "Settled spins by paid outcome.",
		}, []string{"outcome"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_total",
			Help:      "Rejected spins by error code.",
		}, []string{"code"}),
		downgrades: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "daily_limit_downgrades_total",
			Help:      "Draws replaced because of the daily win limit.",
		}),
		payout: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payout_cents_total",
			Help:      "Total amount credited by spins, in cents.",
		}),
		signatureMismatch: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signature_mismatch_total",
			Help:      "Spin records whose attestation failed the audit.",
		}),
		settlementDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settlement_duration_seconds",
			Help:      "Time spent settling one spin.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.settled,
			m.rejected,
			m.downgrades,
			m.payout,
			m.signatureMismatch,
			m.settlementDuration,
		)
	}
	return m
}

// ObserveSettled records a settled spin. All methods are safe on a nil receiver.
func (m *Metrics) ObserveSettled(outcome string, amount int64, took time.Duration) {
	if m == nil {
		return
	}
	m.settled.WithLabelValues(outcome).Inc()
	m.payout.Add(float64(amount))
	m.settlementDuration.Observe(took.Seconds())
}

func (m *Metrics) ObserveRejected(code string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(code).Inc()
}

func (m *Metrics) ObserveDowngrade() {
	if m == nil {
		return
	}
	m.downgrades.Inc()
}

func (m *Metrics) ObserveSignatureMismatch() {
	if m == nil {
		return
	}
	m.signatureMismatch.Inc()
}
