package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-api/internal/model"
	"inventory-api/internal/paging"
)

type WarehouseRepository struct {
	pool *pgxpool.Pool
}

func NewWarehouseRepository(pool *pgxpool.Pool) *WarehouseRepository {
	return &WarehouseRepository{pool: pool}
}

const warehouseColumns = `w.id, w.name, w.address, w.city, w.country,
	        (SELECT COUNT(*) FROM warehouse_items i WHERE i.warehouse_id = w.id)`

func scanWarehouse(row pgx.Row) (model.Warehouse, error) {
	var w model.Warehouse
	err := row.Scan(&w.ID, &w.Name, &w.Address, &w.City, &w.Country, &w.ItemsCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Warehouse{}, model.ErrNotFound
	}
	if err != nil {
		return model.Warehouse{}, err
	}
	return w, nil
}

func (r *WarehouseRepository) FindByID(ctx context.Context, id int) (model.Warehouse, error) {
	w, err := scanWarehouse(r.pool.QueryRow(ctx,
		`SELECT `+warehouseColumns+` FROM warehouses w WHERE w.id = $1`, id))
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.Warehouse{}, fmt.Errorf("find warehouse by id: %w", err)
	}
	return w, err
}

func (r *WarehouseRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM warehouses WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check warehouse name exists: %w", err)
	}
	return exists, nil
}

var warehouseSortColumns = map[string]string{
	"name":    "w.name",
	"city":    "w.city",
	"country": "w.country",
}

// List pages warehouses filtered by a name substring.
func (r *WarehouseRepository) List(ctx context.Context, p paging.Params, filter string) ([]model.Warehouse, int, error) {
	pattern := "%" + filter + "%"

	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM warehouses w WHERE w.name LIKE $1`, pattern).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count warehouses: %w", err)
	}

	limit, offset := p.Window()
	rows, err := r.pool.Query(ctx,
		`SELECT `+warehouseColumns+`
		 FROM warehouses w
		 WHERE w.name LIKE $1
		 ORDER BY `+orderBy(warehouseSortColumns, p, "w.name")+`
		 LIMIT $2 OFFSET $3`, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	warehouses := make([]model.Warehouse, 0)
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan warehouse: %w", err)
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, total, rows.Err()
}

func (r *WarehouseRepository) Create(ctx context.Context, w model.Warehouse) (model.Warehouse, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO warehouses (name, address, city, country)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		w.Name, w.Address, w.City, w.Country).Scan(&w.ID)
	if err != nil {
		return model.Warehouse{}, fmt.Errorf("create warehouse: %w", err)
	}
	w.ItemsCount = 0
	return w, nil
}

func (r *WarehouseRepository) Update(ctx context.Context, w model.Warehouse) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE warehouses SET name = $2, address = $3, city = $4, country = $5
		 WHERE id = $1`,
		w.ID, w.Name, w.Address, w.City, w.Country)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *WarehouseRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
