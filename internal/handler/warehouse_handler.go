package handler

import (
	"encoding/json"
	"net/http"

	"inventory-api/internal/model"
	"inventory-api/internal/paging"
	"inventory-api/internal/service"
)

type WarehouseHandler struct {
	service *service.WarehouseService
}

func NewWarehouseHandler(service *service.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{service: service}
}

func (h *WarehouseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeBadRequest(w, "A valid warehouse id is required.")
		return
	}

	writeResult(w, h.service.Get(r.Context(), id))
}

func (h *WarehouseHandler) List(w http.ResponseWriter, r *http.Request) {
	params := paging.FromQuery(r.URL.Query())
	filter := r.URL.Query().Get("filter")

	writeResult(w, h.service.List(r.Context(), params, filter))
}

func (h *WarehouseHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateWarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "Invalid JSON body.")
		return
	}

	writeResult(w, h.service.Create(r.Context(), payload))
}

func (h *WarehouseHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, ok := idParam(r)
	if !ok {
		writeBadRequest(w, "A valid warehouse id is required.")
		return
	}

	var payload model.UpdateWarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "Invalid JSON body.")
		return
	}

	writeResult(w, h.service.Update(r.Context(), id, payload))
}

func (h *WarehouseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeBadRequest(w, "A valid warehouse id is required.")
		return
	}

	writeResult(w, h.service.Delete(r.Context(), id))
}
