package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

type ListResponse struct {
	Users []string `json:"users" example:"alice,bob"`
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 500 {object} errorResponse
// @Router /users [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		msg := "ups, couldn't list users this time"
		logrus.WithError(err).WithField("handler", "List").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(ListResponse{Users: users})
}
