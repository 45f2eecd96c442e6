package handler

import (
	"fxledger/internal/account"
	"fxledger/internal/domain"
	"net/http"

	"github.com/sirupsen/logrus"
)

type TransferRequest struct {
	Username string   `json:"username" validate:"required" example:"alice"`
	Amount   *float64 `json:"amount" validate:"required" example:"100"`
	From     string   `json:"from" validate:"required" example:"usd"`
	To       string   `json:"to" validate:"required" example:"eur"`
}

// Transfer godoc
// @Summary Transfer between currency accounts
// @Description Debits `from` and credits `to` with the amount converted at today's rate
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Transfer"
// @Success 200 {object} TransferResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "user not found"
// @Failure 422 {object} errorResponse "insufficient funds"
// @Failure 502 {object} errorResponse "rate provider unavailable"
// @Failure 500 {object} errorResponse
// @Router /accounts/transfers [post]
func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	op, ok := h.transferOperation(w, req)
	if !ok {
		return
	}

	res, err := h.service.Transfer(r.Context(), op.Username, op.Amount, op.From, op.To)
	if err != nil {
		writeServiceError(w, err, "Transfer", logrus.Fields{"username": op.Username, "from": op.From, "to": op.To})
		return
	}
	writeJSON(w, http.StatusOK, transferView(res))
}

func (h *Handler) transferOperation(w http.ResponseWriter, req TransferRequest) (account.TransferOperation, bool) {
	from := domain.NormalizeCode(req.From)
	to := domain.NormalizeCode(req.To)
	if err := h.codes.ValidateCodes(from, to); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return account.TransferOperation{}, false
	}
	return account.TransferOperation{Username: domain.NormalizeUsername(req.Username), Amount: *req.Amount, From: from, To: to}, true
}
