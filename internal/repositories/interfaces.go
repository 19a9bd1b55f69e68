package repositories

import (
	"context"

	"spenzly/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByClerkUserID(ctx context.Context, clerkUserID string) (*models.User, error)
}

// AccountRepositoryInterface defines the contract for account repository operations.
// Every mutation that can touch is_default runs in one transaction holding
// the owning user's row lock.
type AccountRepositoryInterface interface {
	// Create inserts the account. It becomes the default when it is the
	// user's first account or when IsDefault is set, in which case every
	// other default for the user is cleared first.
	Create(ctx context.Context, account *models.Account) error
	GetByIDForUser(ctx context.Context, accountID, userID uuid.UUID) (*models.Account, error)
	ListByUserIDWithCounts(ctx context.Context, userID uuid.UUID) ([]models.AccountWithTransactionCount, error)
	// SetDefault makes accountID the user's only default account. The
	// returned bool reports whether anything changed.
	SetDefault(ctx context.Context, userID, accountID uuid.UUID) (*models.Account, bool, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	// Post inserts the transaction and applies its signed amount to the
	// owning account balance atomically.
	Post(ctx context.Context, transaction *models.Transaction) (*models.Account, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.AuditLog, error)
}
