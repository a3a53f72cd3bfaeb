package service

import (
	"context"
	"time"

	"inventory-api/internal/model"
	"inventory-api/internal/paging"
)

// Store interfaces are defined on the consumer side; the pgx repositories in
// internal/repository satisfy them, and tests substitute in-memory fakes.

type UserStore interface {
	FindByID(ctx context.Context, id int) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByRefreshToken(ctx context.Context, token string) (model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, p paging.Params, filter string) ([]model.User, int, error)
	Create(ctx context.Context, u model.User) (model.User, error)
	Update(ctx context.Context, u model.User) error
	UpdatePassword(ctx context.Context, userID int, passwordHash string) error
	StoreRefreshToken(ctx context.Context, userID int, token string, expiresAt time.Time) error
	Delete(ctx context.Context, id int) error
	Touch(ctx context.Context) error
}

type WarehouseStore interface {
	FindByID(ctx context.Context, id int) (model.Warehouse, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, p paging.Params, filter string) ([]model.Warehouse, int, error)
	Create(ctx context.Context, w model.Warehouse) (model.Warehouse, error)
	Update(ctx context.Context, w model.Warehouse) error
	Delete(ctx context.Context, id int) error
}

type ItemStore interface {
	FindByID(ctx context.Context, id int) (model.WarehouseItem, error)
	ExistsInWarehouse(ctx context.Context, warehouseID int, itemName string) (bool, error)
	List(ctx context.Context, p paging.Params, filter string) ([]model.WarehouseItem, int, error)
	TopByQuantity(ctx context.Context, limit int, lowest bool) ([]model.WarehouseItem, error)
	Create(ctx context.Context, it model.WarehouseItem) (model.WarehouseItem, error)
	Update(ctx context.Context, it model.WarehouseItem) error
	Delete(ctx context.Context, id int) error
}
