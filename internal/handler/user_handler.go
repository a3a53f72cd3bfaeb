package handler

import (
	"encoding/json"
	"net/http"

	"inventory-api/internal/model"
	"inventory-api/internal/paging"
	"inventory-api/internal/service"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeBadRequest(w, "A valid user id is required.")
		return
	}

	writeResult(w, h.service.Get(r.Context(), id))
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	params := paging.FromQuery(r.URL.Query())
	filter := r.URL.Query().Get("filter")

	writeResult(w, h.service.List(r.Context(), params, filter))
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "Invalid JSON body.")
		return
	}

	writeResult(w, h.service.Create(r.Context(), payload))
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, ok := idParam(r)
	if !ok {
		writeBadRequest(w, "A valid user id is required.")
		return
	}

	var payload model.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "Invalid JSON body.")
		return
	}

	writeResult(w, h.service.Update(r.Context(), id, payload))
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeBadRequest(w, "A valid user id is required.")
		return
	}

	writeResult(w, h.service.Delete(r.Context(), id))
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, ok := idParam(r)
	if !ok {
		writeBadRequest(w, "A valid user id is required.")
		return
	}

	var payload model.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "Invalid JSON body.")
		return
	}

	writeResult(w, h.service.ChangePassword(r.Context(), id, payload))
}
