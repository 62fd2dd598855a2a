// Package metrics provides optional Prometheus instrumentation for a
// simulation run. A nil *Metrics is valid and every method on it is a
// no-op, so callers that don't care about metrics never have to guard
// against a missing registerer.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the counters and gauges the simulator updates as it
// dispatches envelopes and records claims.
type Metrics struct {
	EnvelopesDispatched prometheus.Counter
	ClaimsRecorded      prometheus.Counter
	Retries             prometheus.Counter
	QueueDepth          prometheus.Gauge
}

// New creates and registers a Metrics set against reg. It returns an
// error if any collector fails to register (for example, on a name
// collision against an already-populated registry).
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		EnvelopesDispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "idgen_envelopes_dispatched_total",
			Help: "Total number of envelopes delivered to an actor.",
		}),
		ClaimsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "idgen_claims_recorded_total",
			Help: "Total number of identifiers claimed across all clients.",
		}),
		Retries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "idgen_retries_total",
			Help: "Total number of client retries issued after a rejected proposal.",
		}),
		QueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "idgen_queue_depth",
			Help: "Number of envelopes currently buffered in the simulator queue.",
		}),
	}

	for _, c := range []prometheus.Collector{m.EnvelopesDispatched, m.ClaimsRecorded, m.Retries, m.QueueDepth} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// IncEnvelopesDispatched increments the dispatch counter if m is
// non-nil.
func (m *Metrics) IncEnvelopesDispatched() {
	if m == nil {
		return
	}
	m.EnvelopesDispatched.Inc()
}

// IncClaimsRecorded increments the claims counter if m is non-nil.
func (m *Metrics) IncClaimsRecorded() {
	if m == nil {
		return
	}
	m.ClaimsRecorded.Inc()
}

// IncRetries increments the retry counter if m is non-nil.
func (m *Metrics) IncRetries() {
	if m == nil {
		return
	}
	m.Retries.Inc()
}

// SetQueueDepth sets the queue depth gauge if m is non-nil.
func (m *Metrics) SetQueueDepth(n int) {
	if m == nil {
		return
	}
	m.QueueDepth.Set(float64(n))
}
