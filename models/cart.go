package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CartLine is a (item identifier, quantity) pair as stored on the
// remote cart and order resources.
type CartLine struct {
	ItemID   ID  `json:"food_items_id"`
	Quantity int `json:"quantity"`
}

type Cart struct {
	ID     ID         `json:"cart_id"`
	UserID ID         `json:"user_id"`
	Items  []CartLine `json:"food_items"`
	Status bool       `json:"status"`
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	var w struct {
		CartID  ID         `json:"cart_id"`
		AltID   ID         `json:"id"`
		MongoID ID         `json:"_id"`
		UserID  ID         `json:"user_id"`
		Items   []CartLine `json:"food_items"`
		Status  *bool      `json:"status"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	c.ID = FirstID(w.CartID, w.AltID, w.MongoID)
	c.UserID = w.UserID
	c.Items = w.Items
	c.Status = activeByDefault(w.Status)
	return nil
}

// CartItem is a display-ready cart line: the raw line joined against
// the known menu items for name and price.
type CartItem struct {
	ItemID   ID
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// Subtotal is price times quantity for this line.
func (ci CartItem) Subtotal() decimal.Decimal {
	return ci.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// DisplayCartItem joins a raw cart line against the known menu items.
// Unknown items fall back to a placeholder name and zero price.
func DisplayCartItem(line CartLine, known []Item) CartItem {
	for _, it := range known {
		if it.ID == line.ItemID {
			return CartItem{
				ItemID:   line.ItemID,
				Name:     it.Name,
				Price:    it.Price,
				Quantity: line.Quantity,
			}
		}
	}
	return CartItem{
		ItemID:   line.ItemID,
		Name:     fmt.Sprintf("Item #%s", line.ItemID),
		Quantity: line.Quantity,
	}
}
