// Package metrics owns the Prometheus registry of the service.
package metrics

import (
	"database/sql"

	"github.com/antoniopd1/mercado-local-mex/config"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultNamespace = "mercado"

// Metrics holds the reconciliation counters.
type Metrics struct {
	// Registry is exposed so the /metrics endpoint and the echo middleware can share it.
	Registry *prometheus.Registry

	webhookEvents       *prometheus.CounterVec
	claimsSyncs         *prometheus.CounterVec
	identityProvisioned *prometheus.CounterVec
}

// New creates a private registry with process and Go collectors plus the
// application counters.
func New(cfg *config.Config) *Metrics {
	namespace := defaultNamespace
	if cfg != nil && cfg.Metrics != nil && cfg.Metrics.Namespace != "" {
		namespace = cfg.Metrics.Namespace
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		webhookEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "webhook_events_total",
				Help:      "Payment webhook events by type and outcome.",
			},
			[]string{"type", "outcome"},
		),
		claimsSyncs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "claims_sync_total",
				Help:      "Identity-provider claims synchronizations by outcome.",
			},
			[]string{"outcome"},
		),
		identityProvisioned: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "identity_provisioned_total",
				Help:      "Local users provisioned from verified identities by outcome.",
			},
			[]string{"outcome"},
		),
	}
}

var _ service.MetricsRecorder = (*Metrics)(nil)

// RegisterDBStats exposes connection pool statistics of db under the given name.
func (m *Metrics) RegisterDBStats(db *sql.DB, name string) error {
	return m.Registry.Register(collectors.NewDBStatsCollector(db, name))
}

// WebhookEvent counts a processed payment event.
func (m *Metrics) WebhookEvent(eventType, outcome string) {
	m.webhookEvents.WithLabelValues(eventType, outcome).Inc()
}

// ClaimsSync counts a claims synchronization attempt.
func (m *Metrics) ClaimsSync(outcome string) {
	m.claimsSyncs.WithLabelValues(outcome).Inc()
}

// IdentityProvisioned counts a first-seen identity.
func (m *Metrics) IdentityProvisioned(outcome string) {
	m.identityProvisioned.WithLabelValues(outcome).Inc()
}
