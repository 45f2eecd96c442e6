package handler

import (
	"errors"
	"fxledger/internal/domain"
	"net/http"

	"github.com/sirupsen/logrus"
)

type GetRatesResponse struct {
	Date  string             `json:"date" example:"2024-03-01"`
	Base  string             `json:"base" example:"usd"`
	Rates map[string]float64 `json:"rates"`
}

// GetRates godoc
// @Summary Today's exchange rates
// @Description Units of each currency one USD buys, for the current day
// @Tags Rates
// @Produce json
// @Success 200 {object} GetRatesResponse
// @Failure 502 {object} errorResponse "rate provider unavailable"
// @Failure 500 {object} errorResponse
// @Router /rates [get]
func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	date, rates, err := h.service.GetDatedRates(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrRateFetchFailed) {
			logrus.WithError(err).WithField("handler", "GetRates").Warn("rate provider unavailable")
			writeError(w, http.StatusBadGateway, "rate provider unavailable")
			return
		}
		msg := "ups, couldn't get rates this time"
		logrus.WithError(err).WithField("handler", "GetRates").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, GetRatesResponse{
		Date:  date,
		Base:  domain.BaseCurrency,
		Rates: rates,
	})
}
