package models

import "github.com/shopspring/decimal"

// Request payloads mirror the remote API's field names exactly,
// including its inconsistent casing of actor fields
// (createdBy/updatedBy vs DeletedBy).

type CreateUserRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Status    bool   `json:"status"`
	CreatedBy ID     `json:"createdBy"`
}

type UpdateUserRequest struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Status    bool   `json:"status"`
	UpdatedBy ID     `json:"updatedBy"`
}

type CreateItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Status      bool            `json:"status"`
	CreatedBy   ID              `json:"createdBy"`
}

type UpdateItemRequest struct {
	ID          ID              `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Status      bool            `json:"status"`
	UpdatedBy   ID              `json:"updatedBy"`
}

type CreateCartRequest struct {
	UserID    ID         `json:"user_id"`
	FoodItems []CartLine `json:"food_items"`
	Status    bool       `json:"status"`
	CreatedBy ID         `json:"createdBy"`
}

type UpdateCartRequest struct {
	ID        ID         `json:"id"`
	UserID    ID         `json:"user_id"`
	FoodItems []CartLine `json:"food_items"`
	Status    bool       `json:"status"`
	UpdatedBy ID         `json:"updatedBy"`
}

type UpdateCartQuantityRequest struct {
	CartID   ID  `json:"cart_id"`
	ItemID   ID  `json:"food_items_id"`
	Quantity int `json:"quantity"`
}

type RemoveCartItemRequest struct {
	CartID ID `json:"cart_id"`
	ItemID ID `json:"food_items_id"`
}

type CreateOrderRequest struct {
	CartID    ID `json:"cart_id"`
	UserID    ID `json:"user_id"`
	CreatedBy ID `json:"createdBy"`
}

type UpdateOrderRequest struct {
	ID          ID          `json:"id"`
	OrderStatus OrderStatus `json:"order_status"`
	Status      bool        `json:"status"`
	UpdatedBy   ID          `json:"updatedBy"`
}

type UpdateOrderStatusRequest struct {
	ID          ID          `json:"id"`
	OrderStatus OrderStatus `json:"order_status"`
	UpdatedBy   ID          `json:"updatedBy"`
}

type DeleteRequest struct {
	DeletedBy ID `json:"DeletedBy"`
}
