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

type WarehouseService struct {
	warehouses WarehouseStore
	logger     *slog.Logger
}

func NewWarehouseService(warehouses WarehouseStore, logger *slog.Logger) *WarehouseService {
	return &WarehouseService{warehouses: warehouses, logger: logger}
}

func (s *WarehouseService) Get(ctx context.Context, id int) *result.Result[model.Warehouse] {
	res := result.New[model.Warehouse]()

	warehouse, err := s.warehouses.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return res.Fail(result.StatusNotFound, "Warehouse not found.")
	}
	if err != nil {
		s.logger.Error("get warehouse failed", "id", id, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while retrieving the warehouse.")
	}

	return res.Succeed(warehouse, "")
}

func (s *WarehouseService) List(ctx context.Context, p paging.Params, filter string) *result.Result[[]model.Warehouse] {
	res := result.New[[]model.Warehouse]()

	warehouses, total, err := s.warehouses.List(ctx, p, filter)
	if err != nil {
		s.logger.Error("list warehouses failed", "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while retrieving warehouses.")
	}

	return res.Succeed(warehouses, "").WithPaging(paging.NewPageInfo(p, total))
}

func (s *WarehouseService) Create(ctx context.Context, req model.CreateWarehouseRequest) *result.Result[model.Warehouse] {
	res := result.New[model.Warehouse]()

	if strings.TrimSpace(req.Name) == "" {
		return res.Fail(result.StatusBadRequest, "Warehouse name is required.")
	}

	exists, err := s.warehouses.ExistsByName(ctx, req.Name)
	if err != nil {
		s.logger.Error("create warehouse failed", "name", req.Name, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while creating the warehouse.")
	}
	if exists {
		return res.Fail(result.StatusAlreadyExist, "Warehouse name already exists.")
	}

	created, err := s.warehouses.Create(ctx, model.Warehouse{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
	})
	if err != nil {
		s.logger.Error("create warehouse failed", "name", req.Name, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while creating the warehouse.")
	}

	return res.Succeed(created, "Warehouse created successfully.")
}

func (s *WarehouseService) Update(ctx context.Context, id int, req model.UpdateWarehouseRequest) *result.Result[model.Warehouse] {
	res := result.New[model.Warehouse]()

	err := s.warehouses.Update(ctx, model.Warehouse{
		ID:      id,
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
	})
	if errors.Is(err, model.ErrNotFound) {
		return res.Fail(result.StatusNotFound, "Warehouse not found.")
	}
	if err != nil {
		s.logger.Error("update warehouse failed", "id", id, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while updating the warehouse.")
	}

	updated, err := s.warehouses.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update warehouse failed", "id", id, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while updating the warehouse.")
	}

	return res.Succeed(updated, "Warehouse updated successfully.")
}

func (s *WarehouseService) Delete(ctx context.Context, id int) *result.Result[bool] {
	res := result.New[bool]()

	err := s.warehouses.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return res.Fail(result.StatusNotFound, "Warehouse not found.")
	}
	if err != nil {
		s.logger.Error("delete warehouse failed", "id", id, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while deleting the warehouse.")
	}

	return res.Succeed(true, "Warehouse deleted successfully.")
}
