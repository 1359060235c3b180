package metrics

import (
	"testing"

	"github.com/antoniopd1/mercado-local-mex/config"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterValue sums the samples of a counter family whose labels include want.
func counterValue(t *testing.T, m *Metrics, name string, want map[string]string) float64 {
	t.Helper()

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	var total float64
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	metrics:
		for _, metric := range family.GetMetric() {
			labels := make(map[string]string, len(metric.GetLabel()))
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			for k, v := range want {
				if labels[k] != v {
					continue metrics
				}
			}
			total += metric.GetCounter().GetValue()
		}
	}

	return total
}

func TestMetrics_Counters(t *testing.T) {
	m := New(&config.Config{Metrics: &config.MetricsConfig{Namespace: "test"}})

	m.WebhookEvent("checkout.session.completed", service.OutcomeSuccess)
	m.WebhookEvent("checkout.session.completed", service.OutcomeSuccess)
	m.WebhookEvent("customer.subscription.deleted", service.OutcomeUnknown)
	m.ClaimsSync(service.OutcomeFailure)
	m.IdentityProvisioned(service.OutcomeSuccess)

	assert.InDelta(t, 2, counterValue(t, m, "test_webhook_events_total", map[string]string{
		"type": "checkout.session.completed", "outcome": service.OutcomeSuccess,
	}), 0)
	assert.InDelta(t, 1, counterValue(t, m, "test_webhook_events_total", map[string]string{
		"outcome": service.OutcomeUnknown,
	}), 0)
	assert.InDelta(t, 1, counterValue(t, m, "test_claims_sync_total", map[string]string{"outcome": service.OutcomeFailure}), 0)
	assert.InDelta(t, 1, counterValue(t, m, "test_identity_provisioned_total", nil), 0)
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(nil)
		New(nil)
	})
}
