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

type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

const itemColumns = `i.id, i.item_name, i.sku_code, i.quantity, i.cost_price, i.msrp_price, i.warehouse_id`

func scanItem(row pgx.Row) (model.WarehouseItem, error) {
	var it model.WarehouseItem
	err := row.Scan(&it.ID, &it.ItemName, &it.SkuCode, &it.Quantity,
		&it.CostPrice, &it.MsrpPrice, &it.WarehouseID)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.WarehouseItem{}, model.ErrNotFound
	}
	if err != nil {
		return model.WarehouseItem{}, err
	}
	return it, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id int) (model.WarehouseItem, error) {
	it, err := scanItem(r.pool.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM warehouse_items i WHERE i.id = $1`, id))
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.WarehouseItem{}, fmt.Errorf("find item by id: %w", err)
	}
	return it, err
}

func (r *ItemRepository) ExistsInWarehouse(ctx context.Context, warehouseID int, itemName string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM warehouse_items WHERE warehouse_id = $1 AND item_name = $2)`,
		warehouseID, itemName).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check item exists: %w", err)
	}
	return exists, nil
}

var itemSortColumns = map[string]string{
	"itemName": "i.item_name",
	"skuCode":  "i.sku_code",
	"qty":      "i.quantity",
}

// List pages items filtered by an item-name substring.
func (r *ItemRepository) List(ctx context.Context, p paging.Params, filter string) ([]model.WarehouseItem, int, error) {
	pattern := "%" + filter + "%"

	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM warehouse_items i WHERE i.item_name LIKE $1`, pattern).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	limit, offset := p.Window()
	rows, err := r.pool.Query(ctx,
		`SELECT `+itemColumns+`
		 FROM warehouse_items i
		 WHERE i.item_name LIKE $1
		 ORDER BY `+orderBy(itemSortColumns, p, "i.item_name")+`
		 LIMIT $2 OFFSET $3`, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]model.WarehouseItem, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, total, rows.Err()
}

// TopByQuantity returns up to limit items ordered by stock level, highest
// first unless lowest is set.
func (r *ItemRepository) TopByQuantity(ctx context.Context, limit int, lowest bool) ([]model.WarehouseItem, error) {
	direction := "DESC"
	if lowest {
		direction = "ASC"
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+itemColumns+`
		 FROM warehouse_items i
		 ORDER BY i.quantity `+direction+`
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("top items by quantity: %w", err)
	}
	defer rows.Close()

	items := make([]model.WarehouseItem, 0, limit)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *ItemRepository) Create(ctx context.Context, it model.WarehouseItem) (model.WarehouseItem, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO warehouse_items (item_name, sku_code, quantity, cost_price, msrp_price, warehouse_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		it.ItemName, it.SkuCode, it.Quantity, it.CostPrice, it.MsrpPrice, it.WarehouseID).Scan(&it.ID)
	if err != nil {
		return model.WarehouseItem{}, fmt.Errorf("create item: %w", err)
	}
	return it, nil
}

func (r *ItemRepository) Update(ctx context.Context, it model.WarehouseItem) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE warehouse_items
		 SET item_name = $2, sku_code = $3, quantity = $4, cost_price = $5, msrp_price = $6
		 WHERE id = $1`,
		it.ID, it.ItemName, it.SkuCode, it.Quantity, it.CostPrice, it.MsrpPrice)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM warehouse_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
