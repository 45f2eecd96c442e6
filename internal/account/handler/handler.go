package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fxledger/internal/account"
	"fxledger/internal/domain"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1024

type CodeValidator interface {
	ValidateCode(code string) error
	ValidateCodes(from, to string) error
}

type LedgerService interface {
	Execute(ctx context.Context, op account.Operation) (account.OperationResult, error)
	Deposit(ctx context.Context, username, currency string, amount float64) (domain.DepositResult, error)
	Transfer(ctx context.Context, username string, amount float64, from, to string) (domain.TransferResult, error)
	GetAccounts(ctx context.Context, username string) (map[string]float64, error)
	SetBalance(ctx context.Context, username, currency string, amount float64) (domain.SetBalanceResult, error)
	DeleteAccount(ctx context.Context, username, currency string) error
}

type Handler struct {
	codes    CodeValidator
	service  LedgerService
	validate *validator.Validate
}

func NewAccountHandler(codes CodeValidator, service LedgerService) *Handler {
	return &Handler{
		codes:    codes,
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// decodeBody reads a bounded JSON body into dst and runs its validate tags.
// It writes the 400 itself and reports whether the caller may continue.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return h.validBody(w, dst)
}

func (h *Handler) validBody(w http.ResponseWriter, body any) bool {
	if err := h.validate.Struct(body); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			writeError(w, http.StatusBadRequest, "invalid field: "+verrs[0].Field())
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// writeServiceError maps ledger errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error, handler string, fields logrus.Fields) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		writeError(w, http.StatusNotFound, domain.ErrUserNotFound.Error())
	case errors.Is(err, domain.ErrAccountNotFound):
		writeError(w, http.StatusNotFound, domain.ErrAccountNotFound.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		writeError(w, http.StatusUnprocessableEntity, domain.ErrInsufficientFunds.Error())
	case errors.Is(err, domain.ErrInvalidCurrencyPair):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidRequestShape):
		writeError(w, http.StatusBadRequest, domain.ErrInvalidRequestShape.Error())
	case errors.Is(err, domain.ErrRateFetchFailed):
		logrus.WithError(err).WithFields(fields).WithField("handler", handler).Warn("rate provider unavailable")
		writeError(w, http.StatusBadGateway, "rate provider unavailable")
	default:
		msg := "ups, couldn't process account operation this time"
		logrus.WithError(err).WithFields(fields).WithField("handler", handler).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
	}
}

type BalanceResponse struct {
	Username string  `json:"username" example:"alice"`
	Currency string  `json:"currency" example:"usd"`
	Balance  float64 `json:"balance" example:"100"`
}

type TransferResponse struct {
	Username        string  `json:"username" example:"alice"`
	From            string  `json:"from" example:"usd"`
	To              string  `json:"to" example:"eur"`
	ConvertedAmount float64 `json:"converted_amount" example:"85"`
	FromBalance     float64 `json:"from_balance" example:"0"`
	ToBalance       float64 `json:"to_balance" example:"85"`
}

func depositView(res domain.DepositResult) BalanceResponse {
	return BalanceResponse{Username: res.Username, Currency: res.CurrencyCode, Balance: res.Balance}
}

func transferView(res domain.TransferResult) TransferResponse {
	return TransferResponse{
		Username:        res.Username,
		From:            res.FromCurrency,
		To:              res.ToCurrency,
		ConvertedAmount: res.ConvertedAmount,
		FromBalance:     res.FromBalance,
		ToBalance:       res.ToBalance,
	}
}
