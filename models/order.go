package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is one entry of the fixed delivery sequence. Transitions
// are strictly forward, one step at a time.
type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusOrderReceived  OrderStatus = "Order Received"
	StatusPreparing      OrderStatus = "Preparing"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
)

// OrderStatusSequence lists every status in delivery order.
var OrderStatusSequence = []OrderStatus{
	StatusPending,
	StatusOrderReceived,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

// Next returns the status following s in the sequence. ok is false
// when s is terminal or not part of the sequence.
func (s OrderStatus) Next() (next OrderStatus, ok bool) {
	for i, st := range OrderStatusSequence {
		if st == s && i+1 < len(OrderStatusSequence) {
			return OrderStatusSequence[i+1], true
		}
	}
	return "", false
}

// Terminal reports whether s is the last status of the sequence.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered
}

type Order struct {
	ID        ID              `json:"order_id"`
	CartID    ID              `json:"cart_id"`
	UserID    ID              `json:"user_id"`
	Status    OrderStatus     `json:"order_status"`
	Total     decimal.Decimal `json:"total"`
	Items     []CartLine      `json:"food_items"`
	Active    bool            `json:"status"`
	CreatedAt time.Time       `json:"createdAt,omitempty"`
}

func (o *Order) UnmarshalJSON(data []byte) error {
	var w struct {
		OrderID   ID              `json:"order_id"`
		AltID     ID              `json:"id"`
		MongoID   ID              `json:"_id"`
		CartID    ID              `json:"cart_id"`
		UserID    ID              `json:"user_id"`
		Status    OrderStatus     `json:"order_status"`
		Total     decimal.Decimal `json:"total"`
		Items     []CartLine      `json:"food_items"`
		Active    *bool           `json:"status"`
		CreatedAt string          `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	o.ID = FirstID(w.OrderID, w.AltID, w.MongoID)
	o.CartID = w.CartID
	o.UserID = w.UserID
	o.Status = w.Status
	o.Total = w.Total
	o.Items = w.Items
	o.Active = activeByDefault(w.Active)
	// createdAt is best-effort: deployments disagree on its format and
	// the list views only decorate with it when present.
	if ts, err := time.Parse(time.RFC3339, w.CreatedAt); err == nil {
		o.CreatedAt = ts
	}
	return nil
}
