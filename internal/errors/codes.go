package errors

// ErrorCode is a stable, client-visible error identifier.
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthInvalidToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthUnauthenticated    ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidAmount ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
)

// User error codes (USER_*)
const (
	UserNotFound ErrorCode = "USER_001"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound    ErrorCode = "ACCOUNT_001"
	AccountInvalidName ErrorCode = "ACCOUNT_002"
	AccountInvalidType ErrorCode = "ACCOUNT_003"
	AccountInvalidID   ErrorCode = "ACCOUNT_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionValidationFailed ErrorCode = "TRANSACTION_001"
	TransactionInvalidType      ErrorCode = "TRANSACTION_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemRequestTimeout     ErrorCode = "SYSTEM_005"
	SystemRouteNotFound      ErrorCode = "SYSTEM_006"
)

var errorMessages = map[ErrorCode]string{
	AuthMissingToken:       "Authorization token is required",
	AuthInvalidToken:       "Authorization token is invalid",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthUnauthenticated:    "Authentication is required",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidAmount: "Amount must be a decimal number with at most two fractional digits",
	ValidationInvalidDate:   "Invalid date format",

	UserNotFound: "User not found",

	AccountNotFound:    "Account not found",
	AccountInvalidName: "Account name is required and must be at most 100 characters",
	AccountInvalidType: "Account type must be CURRENT or SAVINGS",
	AccountInvalidID:   "Invalid account ID format",

	TransactionValidationFailed: "Transaction validation failed",
	TransactionInvalidType:      "Transaction type must be INCOME or EXPENSE",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRequestTimeout:     "Request timed out",
	SystemRouteNotFound:      "The requested resource does not exist",
}

// GetErrorMessage returns the default message for a code, or a generic one
// for unregistered codes.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
