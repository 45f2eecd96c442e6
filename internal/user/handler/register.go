package handler

import (
	"encoding/json"
	"errors"
	"fxledger/internal/domain"
	"net/http"

	"github.com/sirupsen/logrus"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64" example:"alice"`
}

type RegisterResponse struct {
	Username string `json:"username" example:"alice"`
}

// Register godoc
// @Summary Register user
// @Description Create a user that can own currency accounts
// @Tags Users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "New user"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse "user already exists"
// @Failure 500 {object} errorResponse
// @Router /users [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 256)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req RegisterRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "username is required and must be at most 64 characters")
		return
	}

	username, err := h.service.Register(r.Context(), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidUsername):
			writeError(w, http.StatusBadRequest, domain.ErrInvalidUsername.Error())
		case errors.Is(err, domain.ErrUserExists):
			writeError(w, http.StatusConflict, domain.ErrUserExists.Error())
		default:
			msg := "ups, couldn't register user this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "Register", "username": req.Username}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(RegisterResponse{Username: username})
}
