package handler

import (
	"encoding/json"
	"net/http"

	"inventory-api/internal/model"
	"inventory-api/internal/paging"
	"inventory-api/internal/service"
)

type ItemHandler struct {
	service *service.ItemService
}

func NewItemHandler(service *service.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeBadRequest(w, "A valid item id is required.")
		return
	}

	writeResult(w, h.service.Get(r.Context(), id))
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	params := paging.FromQuery(r.URL.Query())
	filter := r.URL.Query().Get("filter")

	writeResult(w, h.service.List(r.Context(), params, filter))
}

func (h *ItemHandler) TopItems(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.service.TopItems(r.Context()))
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateWarehouseItemRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "Invalid JSON body.")
		return
	}

	writeResult(w, h.service.Create(r.Context(), payload))
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, ok := idParam(r)
	if !ok {
		writeBadRequest(w, "A valid item id is required.")
		return
	}

	var payload model.UpdateWarehouseItemRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "Invalid JSON body.")
		return
	}

	writeResult(w, h.service.Update(r.Context(), id, payload))
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeBadRequest(w, "A valid item id is required.")
		return
	}

	writeResult(w, h.service.Delete(r.Context(), id))
}
