package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"spenzly/internal/config"
	"spenzly/internal/models"
	"spenzly/internal/repositories/repository_mocks"
	"spenzly/internal/services"
	"spenzly/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type healthyDatabase struct{}

func (healthyDatabase) HealthCheck(context.Context) error { return nil }

type ServerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	ledger   *service_mocks.MockLedgerServiceInterface
	users    *repository_mocks.MockUserRepositoryInterface
	resolver *services.JWTIdentityResolver
	cfg      *config.Config
	handler  http.Handler
}

func (s *ServerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ledger = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.users = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.cfg = &config.Config{
		Server: config.ServerConfig{
			Host:             "127.0.0.1",
			Port:             "0",
			Environment:      "testing",
			CORSAllowOrigins: []string{"http://localhost:3000"},
		},
		Identity: config.IdentityConfig{
			Issuer:        "spenzly-test",
			TokenDuration: time.Hour,
			ClockSkew:     time.Second,
			PrivateKey:    privateKey,
			PublicKey:     publicKey,
		},
		Security: config.SecurityConfig{RateLimitPerSecond: 100, RateLimitBurst: 100},
	}
	s.resolver = services.NewJWTIdentityResolver(&s.cfg.Identity)
	s.handler = s.newServer(s.cfg).Handler()
}

func (s *ServerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) newServer(cfg *config.Config) *Server {
	registry := prometheus.NewRegistry()
	return New(Dependencies{
		Config:   cfg,
		Ledger:   s.ledger,
		Identity: s.resolver,
		Sessions: s.resolver,
		Users:    s.users,
		Metrics:  services.NewPrometheusMetrics(registry),
		Database: healthyDatabase{},
		Registry: registry,
	})
}

func (s *ServerSuite) do(method, path, token string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *ServerSuite) token(externalUserID string) string {
	token, _, err := s.resolver.IssueSessionToken(externalUserID, "owner@example.com")
	s.Require().NoError(err)
	return token
}

func (s *ServerSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "", "")

	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))
	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func (s *ServerSuite) TestAPIRequiresToken() {
	rec := s.do(http.MethodGet, "/api/v1/accounts", "", "")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
}

func (s *ServerSuite) TestListAccountsResolvesCaller() {
	account := models.Account{
		ID:        uuid.New(),
		Name:      "Everyday",
		Type:      models.AccountTypeCurrent,
		Balance:   decimal.RequireFromString("10"),
		IsDefault: true,
	}
	s.ledger.EXPECT().
		ListAccounts(gomock.Any(), "user_abc").
		Return([]models.AccountWithTransactionCount{{Account: account, TransactionCount: 2}}, nil)

	rec := s.do(http.MethodGet, "/api/v1/accounts", s.token("user_abc"), "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"balance":"10.00"`)
	s.Contains(rec.Body.String(), `"transactionCount":2`)
	s.Equal("no-store, no-cache, must-revalidate, private", rec.Header().Get("Cache-Control"))
}

func (s *ServerSuite) TestCreateAccountRoute() {
	s.ledger.EXPECT().
		CreateAccount(gomock.Any(), "user_abc", services.CreateAccountInput{Name: "Savings", Type: "SAVINGS", Balance: "5.50"}).
		Return(&models.Account{ID: uuid.New(), Name: "Savings", Type: models.AccountTypeSavings, Balance: decimal.RequireFromString("5.5"), IsDefault: true}, nil)

	rec := s.do(http.MethodPost, "/api/v1/accounts", s.token("user_abc"), `{"name":"Savings","type":"SAVINGS","balance":"5.50"}`)

	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"balance":"5.50"`)
}

func (s *ServerSuite) TestSetDefaultRoute() {
	accountID := uuid.New()
	s.ledger.EXPECT().
		SetDefaultAccount(gomock.Any(), "user_abc", accountID).
		Return(&models.Account{ID: accountID, IsDefault: true}, nil)

	rec := s.do(http.MethodPatch, "/api/v1/accounts/"+accountID.String()+"/default", s.token("user_abc"), "")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerSuite) TestDashboardRoutes() {
	s.ledger.EXPECT().
		ListTransactionsForDashboard(gomock.Any(), "user_abc").
		Return([]models.Transaction{}, nil)
	s.ledger.EXPECT().
		GetDashboard(gomock.Any(), "user_abc").
		Return(&models.Dashboard{}, nil)

	rec := s.do(http.MethodGet, "/api/v1/dashboard/transactions", s.token("user_abc"), "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"transactions":[],"total":0}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/dashboard", s.token("user_abc"), "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/api/v2/nothing", "", "")

	s.Equal(http.StatusNotFound, rec.Code)

	var body map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("SYSTEM_006", body["error"]["code"])
	s.NotEqual("unknown", body["error"]["trace_id"])
}

func (s *ServerSuite) TestMetricsEndpoint() {
	s.do(http.MethodGet, "/api/v1/accounts", "", "")

	rec := s.do(http.MethodGet, "/metrics", "", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `authentication_events_total{event_type="missing_token"} 1`)
}

func (s *ServerSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/accounts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	s.handler.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *ServerSuite) TestDevSessionOnlyOutsideProduction() {
	s.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	rec := s.do(http.MethodPost, "/dev/session", "", `{"externalUserId":"user_dev","email":"dev@example.com"}`)
	s.Equal(http.StatusCreated, rec.Code)

	production := *s.cfg
	production.Server.Environment = "production"
	handler := s.newServer(&production).Handler()

	req := httptest.NewRequest(http.MethodPost, "/dev/session", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	prodRec := httptest.NewRecorder()
	handler.ServeHTTP(prodRec, req)
	s.Equal(http.StatusNotFound, prodRec.Code)
}
