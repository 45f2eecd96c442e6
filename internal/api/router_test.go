package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fxledger/internal/account"
	accounthandler "fxledger/internal/account/handler"
	"fxledger/internal/domain"
	"fxledger/internal/rate"
	ratehandler "fxledger/internal/rate/handler"
	userhandler "fxledger/internal/user/handler"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// stubLedger answers every call with ErrUserNotFound so routed requests are observable.
type stubLedger struct{}

func (stubLedger) Execute(context.Context, account.Operation) (account.OperationResult, error) {
	return account.OperationResult{}, domain.ErrUserNotFound
}

func (stubLedger) Deposit(context.Context, string, string, float64) (domain.DepositResult, error) {
	return domain.DepositResult{}, domain.ErrUserNotFound
}

func (stubLedger) Transfer(context.Context, string, float64, string, string) (domain.TransferResult, error) {
	return domain.TransferResult{}, domain.ErrUserNotFound
}

func (stubLedger) GetAccounts(context.Context, string) (map[string]float64, error) {
	return nil, domain.ErrUserNotFound
}

func (stubLedger) SetBalance(context.Context, string, string, float64) (domain.SetBalanceResult, error) {
	return domain.SetBalanceResult{}, domain.ErrUserNotFound
}

func (stubLedger) DeleteAccount(context.Context, string, string) error {
	return domain.ErrUserNotFound
}

type stubRates struct{}

func (stubRates) GetDatedRates(context.Context) (string, domain.Rates, error) {
	return "2024-03-01", domain.Rates{"usd": 1, "eur": 0.85}, nil
}

func (stubRates) CalculateRate(context.Context, string, string) (float64, error) {
	return 0.85, nil
}

type stubUsers struct{}

func (stubUsers) Register(_ context.Context, username string) (string, error) {
	return username, nil
}

func (stubUsers) List(context.Context) ([]string, error) {
	return []string{"alice"}, nil
}

func newTestRouter() *chi.Mux {
	validator := rate.NewValidator()
	return NewRouter(
		ratehandler.NewRateHandler(validator, stubRates{}),
		accounthandler.NewAccountHandler(validator, stubLedger{}),
		userhandler.NewUserHandler(stubUsers{}),
	)
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		method   string
		path     string
		body     string
		wantCode int
	}{
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/api/v1/rates", "", http.StatusOK},
		{http.MethodGet, "/api/v1/rates/usd/eur", "", http.StatusOK},
		{http.MethodPost, "/api/v1/accounts", `{"type":"deposit","deposit":{"username":"a","currency":"usd","amount":1}}`, http.StatusNotFound},
		{http.MethodPost, "/api/v1/accounts/deposits", `{"username":"a","currency":"usd","amount":1}`, http.StatusNotFound},
		{http.MethodPost, "/api/v1/accounts/transfers", `{"username":"a","amount":1,"from":"usd","to":"eur"}`, http.StatusNotFound},
		{http.MethodGet, "/api/v1/users/a/accounts", "", http.StatusNotFound},
		{http.MethodPut, "/api/v1/users/a/accounts/usd", `{"amount":1}`, http.StatusNotFound},
		{http.MethodDelete, "/api/v1/users/a/accounts/usd", "", http.StatusNotFound},
		{http.MethodPost, "/api/v1/users", `{"username":"alice"}`, http.StatusCreated},
		{http.MethodGet, "/api/v1/users", "", http.StatusOK},
		{http.MethodPatch, "/api/v1/users", "", http.StatusMethodNotAllowed},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			require.Equal(t, tc.wantCode, rr.Code)
		})
	}
}
