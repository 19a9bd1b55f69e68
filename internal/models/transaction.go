package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "INCOME"
	TransactionTypeExpense = "EXPENSE"

	TransactionStatusPending   = "PENDING"
	TransactionStatusCompleted = "COMPLETED"
	TransactionStatusFailed    = "FAILED"

	RecurringIntervalDaily   = "DAILY"
	RecurringIntervalWeekly  = "WEEKLY"
	RecurringIntervalMonthly = "MONTHLY"
	RecurringIntervalYearly  = "YEARLY"
)

var (
	ErrInvalidTransactionType      = errors.New("invalid transaction type")
	ErrInvalidTransactionStatus    = errors.New("invalid transaction status")
	ErrInvalidAmount               = errors.New("transaction amount must be positive")
	ErrCategoryRequired            = errors.New("category is required")
	ErrTransactionDateRequired     = errors.New("transaction date is required")
	ErrRecurringIntervalRequired   = errors.New("recurring interval is required for recurring transactions")
	ErrInvalidRecurringInterval    = errors.New("invalid recurring interval")
	ErrUnexpectedRecurringInterval = errors.New("recurring interval set on a non-recurring transaction")
)

// Transaction is a single income or expense entry recorded against an account.
type Transaction struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Type              string          `gorm:"type:varchar(20);not null" json:"type"`
	Amount            decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	Description       string          `gorm:"type:text" json:"description,omitempty"`
	Date              time.Time       `gorm:"not null;index" json:"date"`
	Category          string          `gorm:"type:varchar(100);not null" json:"category"`
	ReceiptURL        string          `gorm:"type:text" json:"receipt_url,omitempty"`
	IsRecurring       bool            `gorm:"not null" json:"is_recurring"`
	RecurringInterval *string         `gorm:"type:varchar(20)" json:"recurring_interval,omitempty"`
	NextRecurringDate *time.Time      `json:"next_recurring_date,omitempty"`
	LastProcessed     *time.Time      `json:"last_processed,omitempty"`
	Status            string          `gorm:"type:varchar(20);not null" json:"status"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null" json:"updated_at"`

	Account *Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Status == "" {
		t.Status = TransactionStatusCompleted
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	if t.Category == "" {
		return ErrCategoryRequired
	}

	if t.Date.IsZero() {
		return ErrTransactionDateRequired
	}

	if t.Status != "" && !IsValidTransactionStatus(t.Status) {
		return ErrInvalidTransactionStatus
	}

	if t.IsRecurring {
		if t.RecurringInterval == nil || *t.RecurringInterval == "" {
			return ErrRecurringIntervalRequired
		}
		if !IsValidRecurringInterval(*t.RecurringInterval) {
			return ErrInvalidRecurringInterval
		}
	} else if t.RecurringInterval != nil && *t.RecurringInterval != "" {
		return ErrUnexpectedRecurringInterval
	}

	return nil
}

func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// SignedAmount is positive for income and negative for expenses.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// NextOccurrence returns the date the recurrence following from would fall on.
func (t *Transaction) NextOccurrence(from time.Time) (time.Time, bool) {
	if !t.IsRecurring || t.RecurringInterval == nil {
		return time.Time{}, false
	}

	switch *t.RecurringInterval {
	case RecurringIntervalDaily:
		return from.AddDate(0, 0, 1), true
	case RecurringIntervalWeekly:
		return from.AddDate(0, 0, 7), true
	case RecurringIntervalMonthly:
		return from.AddDate(0, 1, 0), true
	case RecurringIntervalYearly:
		return from.AddDate(1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

func (t *Transaction) TableName() string {
	return "transactions"
}

func IsValidTransactionType(txType string) bool {
	return txType == TransactionTypeIncome || txType == TransactionTypeExpense
}

func IsValidTransactionStatus(status string) bool {
	switch status {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed:
		return true
	default:
		return false
	}
}

func IsValidRecurringInterval(interval string) bool {
	switch interval {
	case RecurringIntervalDaily, RecurringIntervalWeekly, RecurringIntervalMonthly, RecurringIntervalYearly:
		return true
	default:
		return false
	}
}
