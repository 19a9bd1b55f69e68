package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// FieldErrors flattens validator errors into field -> message pairs. The
// second result is false when err is not a validation error.
func FieldErrors(err error) (map[string]string, bool) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, false
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = FormatFieldError(fe)
	}
	return fields, true
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "decimal_amount":
		return "must be a decimal amount with at most 2 decimal places"
	case "positive_decimal":
		return "must be a positive decimal amount with at most 2 decimal places"
	case "account_type":
		return "must be a valid account type (CURRENT, SAVINGS)"
	case "transaction_type":
		return "must be a valid transaction type (INCOME, EXPENSE)"
	case "recurring_interval":
		return "must be a valid recurring interval (DAILY, WEEKLY, MONTHLY, YEARLY)"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
