package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics.
const (
	MetricAccountCreated         = "account.created"
	MetricAccountCreateFailed    = "account.create.failed"
	MetricDefaultAccountChanged  = "account.default.changed"
	MetricTransactionRecorded    = "transaction.recorded"
	MetricLedgerReadFailed       = "ledger.read.failed"
	MetricInvalidationPublished  = "invalidation.published"
	MetricInvalidationFailed     = "invalidation.failed"
	MetricCircuitBreakerState    = "circuit_breaker.state"
	MetricLedgerOperation        = "ledger.operation"
	MetricAccountsListed         = "accounts.listed"
	MetricAuthenticationEvent    = "authentication_event"
	MetricTransactionAmountValue = "transaction.amount"
)

type PrometheusMetrics struct {
	accountsCreated           *prometheus.CounterVec
	accountCreateFailures     *prometheus.CounterVec
	defaultAccountChanges     prometheus.Counter
	transactionsRecorded      *prometheus.CounterVec
	transactionAmount         prometheus.Histogram
	ledgerReadFailures        *prometheus.CounterVec
	ledgerOperationDuration   prometheus.Histogram
	accountsPerList           prometheus.Histogram
	invalidations             *prometheus.CounterVec
	circuitBreakerState       *prometheus.GaugeVec
	authenticationEventsTotal *prometheus.CounterVec
}

// NewPrometheusMetrics registers the ledger collectors with reg. Passing a
// fresh prometheus.NewRegistry() keeps tests isolated from the default registry.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		accountsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_accounts_created_total",
				Help: "Total number of accounts created",
			},
			[]string{"type", "is_default"},
		),
		accountCreateFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_account_create_failures_total",
				Help: "Total number of rejected or failed account creations",
			},
			[]string{"reason"},
		),
		defaultAccountChanges: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_default_account_changes_total",
				Help: "Total number of default account changes",
			},
		),
		transactionsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_recorded_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"type"},
		),
		transactionAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_transaction_amount",
				Help:    "Recorded transaction amount in currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		ledgerReadFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_read_failures_total",
				Help: "Total number of failed ledger reads",
			},
			[]string{"operation"},
		),
		ledgerOperationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_operation_duration_milliseconds",
				Help:    "Ledger operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		accountsPerList: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_accounts_listed",
				Help:    "Number of accounts returned per list call",
				Buckets: prometheus.LinearBuckets(0, 2, 10),
			},
		),
		invalidations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_invalidations_total",
				Help: "Total number of cache invalidation publishes",
			},
			[]string{"status"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricAccountCreated:
		m.accountsCreated.WithLabelValues(tags["type"], tags["is_default"]).Inc()
	case MetricAccountCreateFailed:
		m.accountCreateFailures.WithLabelValues(tags["reason"]).Inc()
	case MetricDefaultAccountChanged:
		m.defaultAccountChanges.Inc()
	case MetricTransactionRecorded:
		m.transactionsRecorded.WithLabelValues(tags["type"]).Inc()
	case MetricLedgerReadFailed:
		m.ledgerReadFailures.WithLabelValues(tags["operation"]).Inc()
	case MetricInvalidationPublished:
		m.invalidations.WithLabelValues("success").Inc()
	case MetricInvalidationFailed:
		m.invalidations.WithLabelValues("failed").Inc()
	case MetricAuthenticationEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == MetricLedgerOperation {
		m.ledgerOperationDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case MetricAccountsListed:
		m.accountsPerList.Observe(value)
	case MetricTransactionAmountValue:
		m.transactionAmount.Observe(value)
	}
}
