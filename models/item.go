package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type Item struct {
	ID          ID              `json:"food_items_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	Status      bool            `json:"status"`
}

func (it *Item) UnmarshalJSON(data []byte) error {
	var w struct {
		ItemID      ID              `json:"food_items_id"`
		AltID       ID              `json:"id"`
		MongoID     ID              `json:"_id"`
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Price       decimal.Decimal `json:"price"`
		Image       string          `json:"image"`
		Status      *bool           `json:"status"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	it.ID = FirstID(w.ItemID, w.AltID, w.MongoID)
	it.Name = w.Name
	it.Description = w.Description
	it.Price = w.Price
	it.Image = w.Image
	it.Status = activeByDefault(w.Status)
	return nil
}
