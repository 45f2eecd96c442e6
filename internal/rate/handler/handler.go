package handler

import (
	"context"
	"encoding/json"
	"fxledger/internal/domain"
	"net/http"
)

type CodeValidator interface {
	ValidateCodes(from, to string) error
}

type RateService interface {
	GetDatedRates(ctx context.Context) (string, domain.Rates, error)
	CalculateRate(ctx context.Context, from, to string) (float64, error)
}

type Handler struct {
	validator CodeValidator
	service   RateService
}

func NewRateHandler(validator CodeValidator, service RateService) *Handler {
	return &Handler{validator: validator, service: service}
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
