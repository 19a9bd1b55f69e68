package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(AuthMissingToken, s.traceID)

	s.Equal("AUTH_001", response.Error.Code)
	s.Equal("Authorization token is required", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	response := NewErrorResponse(
		AccountNotFound,
		s.traceID,
		WithMessage("No such account"),
		WithDetails("accountId: 42"),
	)

	s.Equal("ACCOUNT_001", response.Error.Code)
	s.Equal("No such account", response.Error.Message)
	s.Equal([]string{"accountId: 42"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestOptions_LastWins() {
	response := NewErrorResponse(
		ValidationGeneral,
		s.traceID,
		WithDetails("detail1", "detail2"),
		WithDetails("detail3"),
		WithMessage("First message"),
		WithMessage("Second message"),
	)

	s.Equal([]string{"detail3"}, response.Error.Details)
	s.Equal("Second message", response.Error.Message)
}

func (s *ResponseTestSuite) TestNewValidationError_SortedDetails() {
	response := NewValidationError(map[string]string{
		"type":    "must be one of CURRENT SAVINGS",
		"balance": "must be a decimal amount",
		"name":    "is required",
	}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{
		"balance: must be a decimal amount",
		"name: is required",
		"type: must be one of CURRENT SAVINGS",
	}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationErrorFromList() {
	details := []string{"amount: must be greater than 0"}

	response := NewValidationErrorFromList(details, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal(details, response.Error.Details)
	s.Equal(s.traceID, response.Error.TraceID)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternalDetails() {
	internalErr := errors.New(`pq: relation "accounts" does not exist`)

	response, originalErr := WrapSystemError(internalErr, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "accounts")
	s.Empty(response.Error.Details)
	s.Equal(internalErr, originalErr)
}

func (s *ResponseTestSuite) TestWrapDatabaseError() {
	dbErr := errors.New("connection pool exhausted")

	response, originalErr := WrapDatabaseError(dbErr, s.traceID)

	s.Equal("SYSTEM_002", response.Error.Code)
	s.Equal("Database connection error", response.Error.Message)
	s.Equal(dbErr, originalErr)
}

func (s *ResponseTestSuite) TestToJSON_Structure() {
	response := NewErrorResponse(ValidationInvalidAmount, s.traceID, WithDetails("balance: abc"))

	jsonBytes, err := response.ToJSON()
	s.Require().NoError(err)

	var jsonMap map[string]interface{}
	s.Require().NoError(json.Unmarshal(jsonBytes, &jsonMap))

	errorObj, ok := jsonMap["error"].(map[string]interface{})
	s.Require().True(ok)
	s.Equal("VALIDATION_005", errorObj["code"])
	s.Equal(s.traceID, errorObj["trace_id"])
	s.Equal([]interface{}{"balance: abc"}, errorObj["details"])
}

func (s *ResponseTestSuite) TestToJSON_EmptyDetailsOmitted() {
	jsonBytes, err := NewErrorResponse(UserNotFound, s.traceID).ToJSON()
	s.Require().NoError(err)

	var jsonMap map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(jsonBytes, &jsonMap))

	_, hasDetails := jsonMap["error"]["details"]
	s.False(hasDetails)
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := map[ErrorCode]int{
		ValidationGeneral:           http.StatusBadRequest,
		ValidationInvalidAmount:     http.StatusBadRequest,
		AccountInvalidName:          http.StatusBadRequest,
		AccountInvalidType:          http.StatusBadRequest,
		AccountInvalidID:            http.StatusBadRequest,
		AuthMissingToken:            http.StatusUnauthorized,
		AuthExpiredToken:            http.StatusUnauthorized,
		AuthUnauthenticated:         http.StatusUnauthorized,
		UserNotFound:                http.StatusNotFound,
		AccountNotFound:             http.StatusNotFound,
		TransactionValidationFailed: http.StatusUnprocessableEntity,
		SystemRateLimitExceeded:     http.StatusTooManyRequests,
		SystemServiceUnavailable:    http.StatusServiceUnavailable,
		SystemRequestTimeout:        http.StatusGatewayTimeout,
		SystemRouteNotFound:         http.StatusNotFound,
		SystemInternalError:         http.StatusInternalServerError,
		SystemDatabaseError:         http.StatusInternalServerError,
		"UNKNOWN_999":               http.StatusInternalServerError,
	}

	for code, expected := range testCases {
		s.Run(string(code), func() {
			s.Equal(expected, GetHTTPStatus(code))
		})
	}
}

func (s *ResponseTestSuite) TestClientAndServerClassification() {
	client := NewErrorResponse(AccountNotFound, s.traceID)
	s.True(client.IsClientError())
	s.False(client.IsServerError())

	server := NewErrorResponse(SystemDatabaseError, s.traceID)
	s.True(server.IsServerError())
	s.False(server.IsClientError())
}

func (s *ResponseTestSuite) TestString() {
	str := NewErrorResponse(AccountNotFound, s.traceID).String()

	s.Contains(str, "ACCOUNT_001")
	s.Contains(str, "Account not found")
	s.Contains(str, s.traceID)
}
