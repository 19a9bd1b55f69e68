package validation

import (
	"reflect"
	"strings"
	"sync"

	"spenzly/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with the ledger's custom rules
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a validator with custom rules. Field names in errors
// use the json tag.
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("positive_decimal", validatePositiveDecimal)
	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("recurring_interval", validateRecurringInterval)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func validateDecimalAmount(fl validator.FieldLevel) bool {
	_, err := models.ParseAmount(fl.Field().String())
	return err == nil
}

func validatePositiveDecimal(fl validator.FieldLevel) bool {
	amount, err := models.ParseAmount(fl.Field().String())
	return err == nil && amount.IsPositive()
}

func validateAccountType(fl validator.FieldLevel) bool {
	return models.IsValidAccountType(models.NormalizeAccountType(fl.Field().String()))
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(strings.ToUpper(strings.TrimSpace(fl.Field().String())))
}

// validateRecurringInterval accepts an empty value; recurrence consistency is
// checked by the ledger.
func validateRecurringInterval(fl validator.FieldLevel) bool {
	interval := strings.ToUpper(strings.TrimSpace(fl.Field().String()))
	return interval == "" || models.IsValidRecurringInterval(interval)
}
