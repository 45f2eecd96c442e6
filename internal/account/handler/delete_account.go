package handler

import (
	"fxledger/internal/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// DeleteAccount godoc
// @Summary Delete a currency account
// @Tags Accounts
// @Param username path string true "Username"
// @Param currency path string true "Currency code" example(usd)
// @Success 204
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "user or account not found"
// @Failure 500 {object} errorResponse
// @Router /users/{username}/accounts/{currency} [delete]
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	username := domain.NormalizeUsername(chi.URLParam(r, "username"))
	currency := domain.NormalizeCode(chi.URLParam(r, "currency"))
	if err := h.codes.ValidateCode(currency); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.DeleteAccount(r.Context(), username, currency); err != nil {
		writeServiceError(w, err, "DeleteAccount", logrus.Fields{"username": username, "currency": currency})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
