package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"inventory-api/internal/model"
	"inventory-api/internal/paging"
	"inventory-api/internal/result"
)

// topItemsLimit bounds each half of the top-items report.
const topItemsLimit = 10

type ItemService struct {
	items  ItemStore
	logger *slog.Logger
}

func NewItemService(items ItemStore, logger *slog.Logger) *ItemService {
	return &ItemService{items: items, logger: logger}
}

func (s *ItemService) Get(ctx context.Context, id int) *result.Result[model.WarehouseItem] {
	res := result.New[model.WarehouseItem]()

	item, err := s.items.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return res.Fail(result.StatusNotFound, "Warehouse item not found.")
	}
	if err != nil {
		s.logger.Error("get item failed", "id", id, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while retrieving the warehouse item.")
	}

	return res.Succeed(item, "")
}

func (s *ItemService) List(ctx context.Context, p paging.Params, filter string) *result.Result[[]model.WarehouseItem] {
	res := result.New[[]model.WarehouseItem]()

	items, total, err := s.items.List(ctx, p, filter)
	if err != nil {
		s.logger.Error("list items failed", "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while retrieving warehouse items.")
	}

	return res.Succeed(items, "").WithPaging(paging.NewPageInfo(p, total))
}

func (s *ItemService) Create(ctx context.Context, req model.CreateWarehouseItemRequest) *result.Result[model.WarehouseItem] {
	res := result.New[model.WarehouseItem]()

	if strings.TrimSpace(req.ItemName) == "" || req.WarehouseID <= 0 {
		return res.Fail(result.StatusBadRequest, "Item name and warehouse are required.")
	}

	exists, err := s.items.ExistsInWarehouse(ctx, req.WarehouseID, req.ItemName)
	if err != nil {
		s.logger.Error("create item failed", "name", req.ItemName, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while creating the warehouse item.")
	}
	if exists {
		return res.Fail(result.StatusAlreadyExist, "An item with this name already exists in the warehouse.")
	}

	created, err := s.items.Create(ctx, model.WarehouseItem{
		ItemName:    req.ItemName,
		SkuCode:     req.SkuCode,
		Quantity:    req.Qty,
		CostPrice:   req.CostPrice,
		MsrpPrice:   req.MsrpPrice,
		WarehouseID: req.WarehouseID,
	})
	if err != nil {
		s.logger.Error("create item failed", "name", req.ItemName, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while creating the warehouse item.")
	}

	return res.Succeed(created, "Warehouse item created successfully.")
}

func (s *ItemService) Update(ctx context.Context, id int, req model.UpdateWarehouseItemRequest) *result.Result[model.WarehouseItem] {
	res := result.New[model.WarehouseItem]()

	item, err := s.items.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return res.Fail(result.StatusNotFound, "Warehouse item not found.")
	}
	if err != nil {
		s.logger.Error("update item failed", "id", id, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while updating the warehouse item.")
	}

	item.ItemName = req.ItemName
	item.SkuCode = req.SkuCode
	item.Quantity = req.Qty
	item.CostPrice = req.CostPrice
	item.MsrpPrice = req.MsrpPrice

	if err := s.items.Update(ctx, item); err != nil {
		s.logger.Error("update item failed", "id", id, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while updating the warehouse item.")
	}

	return res.Succeed(item, "Warehouse item updated successfully.")
}

func (s *ItemService) Delete(ctx context.Context, id int) *result.Result[bool] {
	res := result.New[bool]()

	err := s.items.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return res.Fail(result.StatusNotFound, "Warehouse item not found.")
	}
	if err != nil {
		s.logger.Error("delete item failed", "id", id, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while deleting the warehouse item.")
	}

	return res.Succeed(true, "Warehouse item deleted successfully.")
}

// TopItems reports the ten highest and ten lowest stocked items.
func (s *ItemService) TopItems(ctx context.Context) *result.Result[model.TopItems] {
	res := result.New[model.TopItems]()

	high, err := s.items.TopByQuantity(ctx, topItemsLimit, false)
	if err != nil {
		s.logger.Error("top items failed", "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while retrieving top items.")
	}

	low, err := s.items.TopByQuantity(ctx, topItemsLimit, true)
	if err != nil {
		s.logger.Error("top items failed", "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while retrieving top items.")
	}

	return res.Succeed(model.TopItems{TopHighItems: high, TopLowItems: low}, "")
}
