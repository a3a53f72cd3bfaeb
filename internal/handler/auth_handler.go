package handler

import (
	"encoding/json"
	"net/http"

	"inventory-api/internal/metrics"
	"inventory-api/internal/model"
	"inventory-api/internal/service"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "Invalid JSON body.")
		return
	}

	res := h.service.Login(r.Context(), payload.Email, payload.Password)
	metrics.ObserveLogin(res.Status)
	writeResult(w, res)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "Invalid JSON body.")
		return
	}

	writeResult(w, h.service.Refresh(r.Context(), payload.RefreshToken))
}
