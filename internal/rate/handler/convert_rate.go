package handler

import (
	"errors"
	"fxledger/internal/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type ConvertRateResponse struct {
	From string  `json:"from" example:"eur"`
	To   string  `json:"to" example:"gbp"`
	Rate float64 `json:"rate" example:"0.8571"`
}

// ConvertRate godoc
// @Summary Conversion factor between two currencies
// @Description Units of `to` one unit of `from` buys at today's rates
// @Tags Rates
// @Produce json
// @Param from path string true "Source currency code" example(eur)
// @Param to path string true "Target currency code" example(gbp)
// @Success 200 {object} ConvertRateResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse "rate provider unavailable"
// @Failure 500 {object} errorResponse
// @Router /rates/{from}/{to} [get]
func (h *Handler) ConvertRate(w http.ResponseWriter, r *http.Request) {
	from := domain.NormalizeCode(chi.URLParam(r, "from"))
	to := domain.NormalizeCode(chi.URLParam(r, "to"))

	if err := h.validator.ValidateCodes(from, to); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	value, err := h.service.CalculateRate(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCurrencyPair):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrRateFetchFailed):
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "ConvertRate", "from": from, "to": to}).Warn("rate provider unavailable")
			writeError(w, http.StatusBadGateway, "rate provider unavailable")
		default:
			msg := "ups, couldn't convert rate this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "ConvertRate", "from": from, "to": to}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	writeJSON(w, http.StatusOK, ConvertRateResponse{From: from, To: to, Rate: value})
}
