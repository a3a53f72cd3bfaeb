package model

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
	RoleID   int    `json:"roleId"`
	Active   bool   `json:"active"`
}

type UpdateUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	RoleID   int    `json:"roleId"`
	Active   bool   `json:"active"`
}

type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

type CreateWarehouseRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type UpdateWarehouseRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type CreateWarehouseItemRequest struct {
	ItemName    string   `json:"itemName"`
	SkuCode     string   `json:"skuCode"`
	Qty         int      `json:"qty"`
	CostPrice   float64  `json:"costPrice"`
	MsrpPrice   *float64 `json:"msrpPrice,omitempty"`
	WarehouseID int      `json:"warehouseId"`
}

type UpdateWarehouseItemRequest struct {
	ItemName  string   `json:"itemName"`
	SkuCode   string   `json:"skuCode"`
	Qty       int      `json:"qty"`
	CostPrice float64  `json:"costPrice"`
	MsrpPrice *float64 `json:"msrpPrice,omitempty"`
}
