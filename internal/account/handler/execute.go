package handler

import (
	"fxledger/internal/account"
	"fxledger/internal/domain"
	"net/http"

	"github.com/sirupsen/logrus"
)

const (
	OperationDeposit  = "deposit"
	OperationTransfer = "transfer"
)

// OperationRequest carries exactly one variant, named by Type.
type OperationRequest struct {
	Type     string           `json:"type" validate:"required,oneof=deposit transfer" example:"deposit"`
	Deposit  *DepositRequest  `json:"deposit,omitempty"`
	Transfer *TransferRequest `json:"transfer,omitempty"`
}

type OperationResponse struct {
	Type     string            `json:"type" example:"deposit"`
	Deposit  *BalanceResponse  `json:"deposit,omitempty"`
	Transfer *TransferResponse `json:"transfer,omitempty"`
}

// Execute godoc
// @Summary Run a ledger operation
// @Description Executes a deposit or a transfer given as a tagged request
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body OperationRequest true "Tagged operation"
// @Success 200 {object} OperationResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse "user not found"
// @Failure 422 {object} errorResponse "insufficient funds"
// @Failure 502 {object} errorResponse "rate provider unavailable"
// @Failure 500 {object} errorResponse
// @Router /accounts [post]
func (h *Handler) Execute(w http.ResponseWriter, r *http.Request) {
	var req OperationRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	var (
		op       account.Operation
		ok       bool
		username string
	)
	switch {
	case req.Type == OperationDeposit && req.Deposit != nil && req.Transfer == nil:
		if !h.validBody(w, req.Deposit) {
			return
		}
		op, ok = h.depositOperation(w, *req.Deposit)
		username = domain.NormalizeUsername(req.Deposit.Username)
	case req.Type == OperationTransfer && req.Transfer != nil && req.Deposit == nil:
		if !h.validBody(w, req.Transfer) {
			return
		}
		op, ok = h.transferOperation(w, *req.Transfer)
		username = domain.NormalizeUsername(req.Transfer.Username)
	default:
		writeError(w, http.StatusBadRequest, domain.ErrInvalidRequestShape.Error())
		return
	}
	if !ok {
		return
	}

	res, err := h.service.Execute(r.Context(), op)
	if err != nil {
		writeServiceError(w, err, "Execute", logrus.Fields{"type": req.Type, "username": username})
		return
	}

	out := OperationResponse{Type: req.Type}
	if res.Deposit != nil {
		v := depositView(*res.Deposit)
		out.Deposit = &v
	}
	if res.Transfer != nil {
		v := transferView(*res.Transfer)
		out.Transfer = &v
	}
	writeJSON(w, http.StatusOK, out)
}
