package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const (
	CorrelationIDKey contextKey = "correlation_id"
)

// LedgerLogger emits structured ledger events. Every record carries an
// event_type and the request correlation id.
type LedgerLogger struct {
	logger *slog.Logger
}

func NewLedgerLogger(logger *slog.Logger) LedgerLoggerInterface {
	return &LedgerLogger{
		logger: logger,
	}
}

func (ll *LedgerLogger) LogAccountCreated(ctx context.Context, userID, accountID uuid.UUID, accountType string, isDefault bool) {
	ll.logger.InfoContext(ctx, "account created",
		slog.String("event_type", "account_created"),
		slog.String("user_id", userID.String()),
		slog.String("account_id", accountID.String()),
		slog.String("account_type", accountType),
		slog.Bool("is_default", isDefault),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", GetCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogDefaultAccountChanged(ctx context.Context, userID, accountID uuid.UUID) {
	ll.logger.InfoContext(ctx, "default account changed",
		slog.String("event_type", "default_account_changed"),
		slog.String("user_id", userID.String()),
		slog.String("account_id", accountID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", GetCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogTransactionRecorded(ctx context.Context, userID, transactionID, accountID uuid.UUID, txType, newBalance string) {
	ll.logger.InfoContext(ctx, "transaction recorded",
		slog.String("event_type", "transaction_recorded"),
		slog.String("user_id", userID.String()),
		slog.String("transaction_id", transactionID.String()),
		slog.String("account_id", accountID.String()),
		slog.String("transaction_type", txType),
		slog.String("new_balance", newBalance),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", GetCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogLedgerReadFailed(ctx context.Context, operation string, userID uuid.UUID, err error) {
	ll.logger.ErrorContext(ctx, "ledger read failed",
		slog.String("event_type", "ledger_read_failed"),
		slog.String("operation", operation),
		slog.String("user_id", userID.String()),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", GetCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogInvalidationFailed(ctx context.Context, resource string, userID uuid.UUID, err error) {
	ll.logger.WarnContext(ctx, "invalidation publish failed",
		slog.String("event_type", "invalidation_failed"),
		slog.String("resource", resource),
		slog.String("user_id", userID.String()),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", GetCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogAuditWriteFailed(ctx context.Context, action string, userID uuid.UUID, err error) {
	ll.logger.WarnContext(ctx, "audit log write failed",
		slog.String("event_type", "audit_write_failed"),
		slog.String("action", action),
		slog.String("user_id", userID.String()),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", GetCorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	ll.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", GetCorrelationID(ctx)),
	)
}

// WithCorrelationID returns a context carrying the request correlation id.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, correlationID)
}

func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
