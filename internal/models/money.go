package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	maxAmountInputLength = 64
	// Exponents outside this window are rejected before any rescaling.
	minAmountExponent = -(BalanceScale + 8)
	maxAmountExponent = 15
)

var (
	ErrAmountRequired      = errors.New("amount is required")
	ErrAmountNotDecimal    = errors.New("amount is not a decimal number")
	ErrAmountOutOfRange    = errors.New("amount exceeds decimal(18,2) range")
	ErrAmountTooManyDigits = fmt.Errorf("amount has more than %d fractional digits", BalanceScale)
)

// maxAmount is the first value that does not fit decimal(18,2).
var maxAmount = decimal.New(1, 16)

// ParseAmount parses a client supplied money string. It rejects empty,
// non-numeric and non-finite input, more than two significant fractional
// digits and values outside decimal(18,2).
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, ErrAmountRequired
	}
	if len(trimmed) > maxAmountInputLength {
		return decimal.Zero, ErrAmountOutOfRange
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrAmountNotDecimal, raw)
	}

	exp := amount.Exponent()
	if exp < minAmountExponent {
		if amount.IsZero() {
			return decimal.Zero, nil
		}
		return decimal.Zero, ErrAmountTooManyDigits
	}
	if exp > maxAmountExponent {
		if amount.IsZero() {
			return decimal.Zero, nil
		}
		return decimal.Zero, ErrAmountOutOfRange
	}

	if !amount.Equal(amount.Round(BalanceScale)) {
		return decimal.Zero, ErrAmountTooManyDigits
	}

	if amount.Abs().GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, ErrAmountOutOfRange
	}

	return amount.Round(BalanceScale), nil
}
