package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Validate(t *testing.T) {
	validUserID := uuid.New()

	tests := []struct {
		name    string
		account Account
		wantErr error
		errMsg  string
	}{
		{
			name: "valid current account",
			account: Account{
				UserID:  validUserID,
				Name:    "Everyday",
				Type:    AccountTypeCurrent,
				Balance: decimal.RequireFromString("1250.00"),
			},
		},
		{
			name: "valid savings account with negative balance",
			account: Account{
				UserID:  validUserID,
				Name:    "Overdrawn",
				Type:    AccountTypeSavings,
				Balance: decimal.RequireFromString("-10.5"),
			},
		},
		{
			name: "trailing zeros beyond scale are accepted",
			account: Account{
				UserID:  validUserID,
				Name:    "Zeros",
				Type:    AccountTypeSavings,
				Balance: decimal.RequireFromString("1.500"),
			},
		},
		{
			name: "missing user ID",
			account: Account{
				Name: "Everyday",
				Type: AccountTypeCurrent,
			},
			errMsg: "user ID is required",
		},
		{
			name: "blank name",
			account: Account{
				UserID: validUserID,
				Name:   "   ",
				Type:   AccountTypeCurrent,
			},
			wantErr: ErrAccountNameRequired,
		},
		{
			name: "name too long",
			account: Account{
				UserID: validUserID,
				Name:   strings.Repeat("a", MaxAccountNameLength+1),
				Type:   AccountTypeCurrent,
			},
			wantErr: ErrAccountNameTooLong,
		},
		{
			name: "invalid type",
			account: Account{
				UserID: validUserID,
				Name:   "Brokerage",
				Type:   "INVESTMENT",
			},
			wantErr: ErrInvalidAccountType,
		},
		{
			name: "too many decimal places",
			account: Account{
				UserID:  validUserID,
				Name:    "Precise",
				Type:    AccountTypeCurrent,
				Balance: decimal.RequireFromString("1.005"),
			},
			wantErr: ErrBalanceScale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccount_BeforeCreate(t *testing.T) {
	account := &Account{
		UserID:  uuid.New(),
		Name:    "Everyday",
		Type:    AccountTypeCurrent,
		Balance: decimal.Zero,
	}

	require.NoError(t, account.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.False(t, account.CreatedAt.IsZero())
	assert.Equal(t, account.CreatedAt, account.UpdatedAt)

	invalid := &Account{UserID: uuid.New(), Name: "X", Type: "CHECKING"}
	assert.ErrorIs(t, invalid.BeforeCreate(nil), ErrInvalidAccountType)
}

func TestAccount_BalanceString(t *testing.T) {
	tests := []struct {
		balance  string
		expected string
	}{
		{"0", "0.00"},
		{"1250", "1250.00"},
		{"10.5", "10.50"},
		{"-3.25", "-3.25"},
	}

	for _, tt := range tests {
		t.Run(tt.balance, func(t *testing.T) {
			account := Account{Balance: decimal.RequireFromString(tt.balance)}
			assert.Equal(t, tt.expected, account.BalanceString())
		})
	}
}

func TestIsValidAccountType(t *testing.T) {
	assert.True(t, IsValidAccountType(AccountTypeCurrent))
	assert.True(t, IsValidAccountType(AccountTypeSavings))
	assert.False(t, IsValidAccountType("current"))
	assert.False(t, IsValidAccountType(""))
}

func TestNormalizeAccountType(t *testing.T) {
	assert.Equal(t, AccountTypeSavings, NormalizeAccountType(" savings "))
	assert.Equal(t, AccountTypeCurrent, NormalizeAccountType("Current"))
}

func TestValidateAccountName(t *testing.T) {
	assert.NoError(t, ValidateAccountName("  Holiday fund  "))
	assert.NoError(t, ValidateAccountName(strings.Repeat("é", MaxAccountNameLength)))
	assert.ErrorIs(t, ValidateAccountName(""), ErrAccountNameRequired)
}
