package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"spenzly/internal/models"
	"spenzly/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidAccountName = errors.New("invalid account name")
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrStoreFailure       = errors.New("store failure")
	ErrDefaultAccountBusy = errors.New("default account changed concurrently")
)

const invalidationTimeout = 2 * time.Second

// CreateAccountInput carries a create-account request. Balance is the raw
// decimal string supplied by the client.
type CreateAccountInput struct {
	Name      string
	Type      string
	Balance   string
	IsDefault bool
}

type RecordTransactionInput struct {
	AccountID         uuid.UUID
	Type              string
	Amount            string
	Description       string
	Date              time.Time
	Category          string
	ReceiptURL        string
	IsRecurring       bool
	RecurringInterval string
}

type ledgerService struct {
	userRepo        repositories.UserRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	auditRepo       repositories.AuditLogRepositoryInterface
	notifier        InvalidationNotifierInterface
	ledgerLogger    LedgerLoggerInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

// NewLedgerService wires the ledger to its store, invalidation sink and
// observability collaborators.
func NewLedgerService(
	userRepo repositories.UserRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	notifier InvalidationNotifierInterface,
	ledgerLogger LedgerLoggerInterface,
	metrics MetricsRecorderInterface,
) LedgerServiceInterface {
	return &ledgerService{
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		auditRepo:       auditRepo,
		notifier:        notifier,
		ledgerLogger:    ledgerLogger,
		metrics:         metrics,
		now:             time.Now,
	}
}

// CreateAccount validates the request and inserts the account. The first
// account a user owns is always the default; requesting a default clears the
// previous one in the same store transaction.
func (s *ledgerService) CreateAccount(ctx context.Context, externalUserID string, input CreateAccountInput) (*models.Account, error) {
	start := s.now()
	defer s.recordDuration(start)

	user, err := s.resolveUser(ctx, externalUserID)
	if err != nil {
		return nil, err
	}

	balance, err := models.ParseAmount(input.Balance)
	if err != nil {
		s.countCreateFailure("invalid_amount")
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	if err := models.ValidateAccountName(input.Name); err != nil {
		s.countCreateFailure("invalid_name")
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccountName, err)
	}

	accountType := models.NormalizeAccountType(input.Type)
	if !models.IsValidAccountType(accountType) {
		s.countCreateFailure("invalid_type")
		return nil, fmt.Errorf("%w: %q", ErrInvalidAccountType, input.Type)
	}

	account := &models.Account{
		UserID:    user.ID,
		Name:      strings.TrimSpace(input.Name),
		Type:      accountType,
		Balance:   balance,
		IsDefault: input.IsDefault,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		s.countCreateFailure("store")
		switch {
		case errors.Is(err, repositories.ErrUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repositories.ErrDefaultAccountConflict):
			return nil, fmt.Errorf("%w: %w", ErrStoreFailure, ErrDefaultAccountBusy)
		default:
			return nil, fmt.Errorf("%w: %w", ErrStoreFailure, err)
		}
	}

	s.ledgerLogger.LogAccountCreated(ctx, user.ID, account.ID, account.Type, account.IsDefault)
	s.metrics.IncrementCounter(MetricAccountCreated, map[string]string{
		"type":       account.Type,
		"is_default": strconv.FormatBool(account.IsDefault),
	})
	s.writeAudit(ctx, &models.AuditLog{
		UserID:     &user.ID,
		Action:     models.AuditActionAccountCreated,
		Resource:   models.AuditResourceAccount,
		ResourceID: account.ID.String(),
		Metadata: models.JSONBMap{
			"type":       account.Type,
			"is_default": account.IsDefault,
			"balance":    account.BalanceString(),
		},
	})
	s.invalidate(ctx, user.ID, "account_created", ResourceDashboard)

	return account, nil
}

// ListAccounts returns the caller's accounts newest first with their
// transaction counts. Store failures are logged and returned.
func (s *ledgerService) ListAccounts(ctx context.Context, externalUserID string) ([]models.AccountWithTransactionCount, error) {
	start := s.now()
	defer s.recordDuration(start)

	user, err := s.resolveUser(ctx, externalUserID)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListByUserIDWithCounts(ctx, user.ID)
	if err != nil {
		s.readFailed(ctx, "list_accounts", user.ID, err)
		return nil, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}
	if accounts == nil {
		accounts = []models.AccountWithTransactionCount{}
	}

	s.metrics.RecordGauge(MetricAccountsListed, float64(len(accounts)), nil)
	return accounts, nil
}

func (s *ledgerService) ListTransactionsForDashboard(ctx context.Context, externalUserID string) ([]models.Transaction, error) {
	user, err := s.resolveUser(ctx, externalUserID)
	if err != nil {
		return nil, err
	}

	return s.listTransactions(ctx, user.ID)
}

func (s *ledgerService) listTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.ListByUserID(ctx, userID)
	if err != nil {
		s.readFailed(ctx, "list_transactions", userID, err)
		return nil, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions, nil
}

// SetDefaultAccount makes accountID the caller's only default account.
// Re-designating the current default is a no-op and publishes nothing.
func (s *ledgerService) SetDefaultAccount(ctx context.Context, externalUserID string, accountID uuid.UUID) (*models.Account, error) {
	user, err := s.resolveUser(ctx, externalUserID)
	if err != nil {
		return nil, err
	}

	account, changed, err := s.accountRepo.SetDefault(ctx, user.ID, accountID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrAccountNotFound):
			return nil, ErrAccountNotFound
		case errors.Is(err, repositories.ErrUserNotFound):
			return nil, ErrUserNotFound
		default:
			return nil, fmt.Errorf("%w: %w", ErrStoreFailure, err)
		}
	}

	if !changed {
		return account, nil
	}

	s.ledgerLogger.LogDefaultAccountChanged(ctx, user.ID, account.ID)
	s.metrics.IncrementCounter(MetricDefaultAccountChanged, nil)
	s.writeAudit(ctx, &models.AuditLog{
		UserID:     &user.ID,
		Action:     models.AuditActionDefaultAccountChanged,
		Resource:   models.AuditResourceAccount,
		ResourceID: account.ID.String(),
	})
	s.invalidate(ctx, user.ID, "default_account_changed", ResourceDashboard, AccountResource(account.ID))

	return account, nil
}

// RecordTransaction posts an income or expense against one of the caller's
// accounts and returns the transaction with the updated account.
func (s *ledgerService) RecordTransaction(ctx context.Context, externalUserID string, input RecordTransactionInput) (*models.Transaction, *models.Account, error) {
	start := s.now()
	defer s.recordDuration(start)

	user, err := s.resolveUser(ctx, externalUserID)
	if err != nil {
		return nil, nil, err
	}

	amount, err := models.ParseAmount(input.Amount)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	if !amount.IsPositive() {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidAmount, models.ErrInvalidAmount)
	}

	transaction := &models.Transaction{
		Type:        strings.ToUpper(strings.TrimSpace(input.Type)),
		Amount:      amount,
		Description: strings.TrimSpace(input.Description),
		Date:        input.Date,
		Category:    strings.TrimSpace(input.Category),
		ReceiptURL:  strings.TrimSpace(input.ReceiptURL),
		IsRecurring: input.IsRecurring,
		Status:      models.TransactionStatusCompleted,
		UserID:      user.ID,
		AccountID:   input.AccountID,
	}
	if interval := strings.ToUpper(strings.TrimSpace(input.RecurringInterval)); interval != "" {
		transaction.RecurringInterval = &interval
	}

	if err := transaction.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}

	if next, ok := transaction.NextOccurrence(transaction.Date); ok {
		transaction.NextRecurringDate = &next
	}

	account, err := s.transactionRepo.Post(ctx, transaction)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, nil, ErrAccountNotFound
		}
		return nil, nil, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}

	s.ledgerLogger.LogTransactionRecorded(ctx, user.ID, transaction.ID, account.ID, transaction.Type, account.BalanceString())
	s.metrics.IncrementCounter(MetricTransactionRecorded, map[string]string{"type": transaction.Type})
	s.metrics.RecordGauge(MetricTransactionAmountValue, transaction.Amount.InexactFloat64(), nil)
	s.invalidate(ctx, user.ID, "transaction_recorded", ResourceDashboard, AccountResource(account.ID))

	return transaction, account, nil
}

// GetDashboard aggregates accounts, transactions and income/expense totals.
func (s *ledgerService) GetDashboard(ctx context.Context, externalUserID string) (*models.Dashboard, error) {
	accounts, err := s.ListAccounts(ctx, externalUserID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.ListTransactionsForDashboard(ctx, externalUserID)
	if err != nil {
		return nil, err
	}

	income, expense := models.TransactionTotals(transactions)
	return &models.Dashboard{
		Accounts:     accounts,
		Transactions: transactions,
		TotalIncome:  income,
		TotalExpense: expense,
	}, nil
}

func (s *ledgerService) resolveUser(ctx context.Context, externalUserID string) (*models.User, error) {
	if strings.TrimSpace(externalUserID) == "" {
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.GetByClerkUserID(ctx, externalUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}

	return user, nil
}

func (s *ledgerService) readFailed(ctx context.Context, operation string, userID uuid.UUID, err error) {
	s.ledgerLogger.LogLedgerReadFailed(ctx, operation, userID, err)
	s.metrics.IncrementCounter(MetricLedgerReadFailed, map[string]string{"operation": operation})
}

func (s *ledgerService) countCreateFailure(reason string) {
	s.metrics.IncrementCounter(MetricAccountCreateFailed, map[string]string{"reason": reason})
}

func (s *ledgerService) recordDuration(start time.Time) {
	s.metrics.RecordProcessingTime(MetricLedgerOperation, s.now().Sub(start))
}

// writeAudit persists an audit row after commit. Failures are logged only.
func (s *ledgerService) writeAudit(ctx context.Context, entry *models.AuditLog) {
	if s.auditRepo == nil {
		return
	}

	entry.CorrelationID = GetCorrelationID(ctx)
	if err := s.auditRepo.Create(context.WithoutCancel(ctx), entry); err != nil {
		var userID uuid.UUID
		if entry.UserID != nil {
			userID = *entry.UserID
		}
		s.ledgerLogger.LogAuditWriteFailed(ctx, entry.Action, userID, err)
	}
}

// invalidate publishes one event per resource. A slow or failing sink never
// fails the committed operation.
func (s *ledgerService) invalidate(ctx context.Context, userID uuid.UUID, reason string, resources ...string) {
	if s.notifier == nil {
		return
	}

	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), invalidationTimeout)
	defer cancel()

	for _, resource := range resources {
		err := s.notifier.Notify(notifyCtx, InvalidationEvent{
			Resource:   resource,
			UserID:     userID,
			Reason:     reason,
			OccurredAt: s.now().UTC(),
		})
		if err != nil {
			s.ledgerLogger.LogInvalidationFailed(ctx, resource, userID, err)
			s.metrics.IncrementCounter(MetricInvalidationFailed, nil)
			continue
		}
		s.metrics.IncrementCounter(MetricInvalidationPublished, nil)
	}
}
