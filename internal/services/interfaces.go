package services

import (
	"context"
	"time"

	"spenzly/internal/models"

	"github.com/google/uuid"
)

// LedgerServiceInterface defines the account ledger operations. Every
// operation takes the caller's external identity explicitly.
type LedgerServiceInterface interface {
	CreateAccount(ctx context.Context, externalUserID string, input CreateAccountInput) (*models.Account, error)
	ListAccounts(ctx context.Context, externalUserID string) ([]models.AccountWithTransactionCount, error)
	ListTransactionsForDashboard(ctx context.Context, externalUserID string) ([]models.Transaction, error)
	SetDefaultAccount(ctx context.Context, externalUserID string, accountID uuid.UUID) (*models.Account, error)
	RecordTransaction(ctx context.Context, externalUserID string, input RecordTransactionInput) (*models.Transaction, *models.Account, error)
	GetDashboard(ctx context.Context, externalUserID string) (*models.Dashboard, error)
}

// IdentityResolverInterface turns an opaque session token into the identity
// provider's user id.
type IdentityResolverInterface interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// SessionIssuerInterface mints session tokens for local development and tests.
type SessionIssuerInterface interface {
	IssueSessionToken(externalUserID, email string) (string, time.Time, error)
}

type InvalidationNotifierInterface interface {
	Notify(ctx context.Context, event InvalidationEvent) error
}

type LedgerLoggerInterface interface {
	LogAccountCreated(ctx context.Context, userID, accountID uuid.UUID, accountType string, isDefault bool)
	LogDefaultAccountChanged(ctx context.Context, userID, accountID uuid.UUID)
	LogTransactionRecorded(ctx context.Context, userID, transactionID, accountID uuid.UUID, txType, newBalance string)
	LogLedgerReadFailed(ctx context.Context, operation string, userID uuid.UUID, err error)
	LogInvalidationFailed(ctx context.Context, resource string, userID uuid.UUID, err error)
	LogAuditWriteFailed(ctx context.Context, action string, userID uuid.UUID, err error)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}
