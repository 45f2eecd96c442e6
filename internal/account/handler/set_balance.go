package handler

import (
	"fxledger/internal/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type SetBalanceRequest struct {
	Amount *float64 `json:"amount" validate:"required" example:"250.5"`
}

// SetBalance godoc
// @Summary Overwrite a currency account balance
// @Description Corrective update, creates the account when missing
// @Tags Accounts
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param currency path string true "Currency code" example(usd)
// @Param request body SetBalanceRequest true "New balance"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "user not found"
// @Failure 500 {object} errorResponse
// @Router /users/{username}/accounts/{currency} [put]
func (h *Handler) SetBalance(w http.ResponseWriter, r *http.Request) {
	username := domain.NormalizeUsername(chi.URLParam(r, "username"))
	currency := domain.NormalizeCode(chi.URLParam(r, "currency"))
	if err := h.codes.ValidateCode(currency); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req SetBalanceRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	res, err := h.service.SetBalance(r.Context(), username, currency, *req.Amount)
	if err != nil {
		writeServiceError(w, err, "SetBalance", logrus.Fields{"username": username, "currency": currency})
		return
	}
	writeJSON(w, http.StatusOK, BalanceResponse{Username: res.Username, Currency: res.CurrencyCode, Balance: res.Balance})
}
