package handler

import (
	"fxledger/internal/account"
	"fxledger/internal/domain"
	"net/http"

	"github.com/sirupsen/logrus"
)

type DepositRequest struct {
	Username string   `json:"username" validate:"required" example:"alice"`
	Currency string   `json:"currency" validate:"required" example:"usd"`
	Amount   *float64 `json:"amount" validate:"required" example:"100"`
}

// Deposit godoc
// @Summary Deposit into a currency account
// @Description Adds the amount to the user's balance, creating the account on first use
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body DepositRequest true "Deposit"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "user not found"
// @Failure 500 {object} errorResponse
// @Router /accounts/deposits [post]
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req DepositRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	op, ok := h.depositOperation(w, req)
	if !ok {
		return
	}

	res, err := h.service.Deposit(r.Context(), op.Username, op.Currency, op.Amount)
	if err != nil {
		writeServiceError(w, err, "Deposit", logrus.Fields{"username": op.Username, "currency": op.Currency})
		return
	}
	writeJSON(w, http.StatusOK, depositView(res))
}

func (h *Handler) depositOperation(w http.ResponseWriter, req DepositRequest) (account.DepositOperation, bool) {
	currency := domain.NormalizeCode(req.Currency)
	if err := h.codes.ValidateCode(currency); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return account.DepositOperation{}, false
	}
	return account.DepositOperation{Username: domain.NormalizeUsername(req.Username), Currency: currency, Amount: *req.Amount}, true
}
