package handler

import (
	"fxledger/internal/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type AccountsResponse struct {
	Username string             `json:"username" example:"alice"`
	Accounts map[string]float64 `json:"accounts"`
}

// GetAccounts godoc
// @Summary List a user's currency accounts
// @Tags Accounts
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} AccountsResponse
// @Failure 404 {object} errorResponse "user not found"
// @Failure 500 {object} errorResponse
// @Router /users/{username}/accounts [get]
func (h *Handler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	username := domain.NormalizeUsername(chi.URLParam(r, "username"))

	accounts, err := h.service.GetAccounts(r.Context(), username)
	if err != nil {
		writeServiceError(w, err, "GetAccounts", logrus.Fields{"username": username})
		return
	}
	writeJSON(w, http.StatusOK, AccountsResponse{Username: username, Accounts: accounts})
}
