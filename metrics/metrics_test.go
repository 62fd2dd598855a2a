package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestNewRegistersAllCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.IncEnvelopesDispatched()
	m.IncEnvelopesDispatched()
	m.IncClaimsRecorded()
	m.IncRetries()
	m.SetQueueDepth(3)

	require.Equal(t, float64(2), counterValue(t, m.EnvelopesDispatched))
	require.Equal(t, float64(1), counterValue(t, m.ClaimsRecorded))
	require.Equal(t, float64(1), counterValue(t, m.Retries))
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.IncEnvelopesDispatched()
		m.IncClaimsRecorded()
		m.IncRetries()
		m.SetQueueDepth(5)
	})
}

func TestNewReturnsErrorOnDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	require.Error(t, err)
}
