package model

// Warehouse is a storage location. Name is unique across warehouses.
type Warehouse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`

	// ItemsCount is derived at read time, never stored.
	ItemsCount int `json:"itemsCount"`
}

// WarehouseItem is a stock record. (WarehouseID, ItemName) is unique.
type WarehouseItem struct {
	ID          int      `json:"id"`
	ItemName    string   `json:"itemName"`
	SkuCode     string   `json:"skuCode"`
	Quantity    int      `json:"qty"`
	CostPrice   float64  `json:"costPrice"`
	MsrpPrice   *float64 `json:"msrpPrice,omitempty"`
	WarehouseID int      `json:"warehouseId"`
}

// TopItems lists the ten highest and ten lowest stocked items.
type TopItems struct {
	TopHighItems []WarehouseItem `json:"topHighItems"`
	TopLowItems  []WarehouseItem `json:"topLowItems"`
}
