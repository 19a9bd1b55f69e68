package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeCurrent = "CURRENT"
	AccountTypeSavings = "SAVINGS"

	MaxAccountNameLength = 100

	// BalanceScale is the number of fractional digits stored for money columns.
	BalanceScale = 2
)

var (
	ErrAccountNameRequired = errors.New("account name is required")
	ErrAccountNameTooLong  = fmt.Errorf("account name must be at most %d characters", MaxAccountNameLength)
	ErrInvalidAccountType  = errors.New("invalid account type")
	ErrBalanceScale        = fmt.Errorf("balance must have at most %d decimal places", BalanceScale)
)

// Account is a user-owned financial account. Per user at most one row has
// IsDefault set.
type Account struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string          `gorm:"type:varchar(100);not null" json:"name"`
	Type      string          `gorm:"type:varchar(20);not null" json:"type"`
	Balance   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"balance"`
	IsDefault bool            `gorm:"not null" json:"is_default"`
	CreatedAt time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`

	User         *User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"-"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if err := ValidateAccountName(a.Name); err != nil {
		return err
	}

	if !IsValidAccountType(a.Type) {
		return fmt.Errorf("%w: %s", ErrInvalidAccountType, a.Type)
	}

	if a.Balance.Exponent() < -BalanceScale && !a.Balance.Equal(a.Balance.Round(BalanceScale)) {
		return ErrBalanceScale
	}

	return nil
}

// BalanceString renders the balance with exactly two fractional digits.
func (a *Account) BalanceString() string {
	return a.Balance.StringFixed(BalanceScale)
}

func (a *Account) TableName() string {
	return "accounts"
}

// ValidateAccountName checks a name after trimming surrounding whitespace.
func ValidateAccountName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrAccountNameRequired
	}
	if len([]rune(trimmed)) > MaxAccountNameLength {
		return ErrAccountNameTooLong
	}
	return nil
}

func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeCurrent, AccountTypeSavings:
		return true
	default:
		return false
	}
}

// NormalizeAccountType upper-cases and trims a user supplied type.
func NormalizeAccountType(accountType string) string {
	return strings.ToUpper(strings.TrimSpace(accountType))
}

// AccountWithTransactionCount pairs an account with the number of
// transactions recorded against it.
type AccountWithTransactionCount struct {
	Account
	TransactionCount int64 `json:"transaction_count"`
}
