package controllers

import (
	"context"
	"fmt"
	"sync"

	"food-admin/api"
	"food-admin/models"

	"github.com/shopspring/decimal"
)

// ItemController manages the menu item list and the edit selection.
type ItemController struct {
	api *api.Client

	mu       sync.Mutex
	items    []models.Item
	selected models.ID
}

func NewItemController(client *api.Client) *ItemController {
	return &ItemController{api: client}
}

// Load fetches all menu items, dropping soft-deleted or
// unidentifiable entries.
func (ctrl *ItemController) Load(ctx context.Context) error {
	items, err := ctrl.api.GetItems(ctx)
	if err != nil {
		return fmt.Errorf("loading menu items: %w", err)
	}

	active := make([]models.Item, 0, len(items))
	for _, it := range items {
		if !it.ID.IsZero() && it.Status {
			active = append(active, it)
		}
	}

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	ctrl.items = active
	return nil
}

func (ctrl *ItemController) Items() []models.Item {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	items := make([]models.Item, len(ctrl.items))
	copy(items, ctrl.items)
	return items
}

// Find returns the loaded item with the given identifier.
func (ctrl *ItemController) Find(id models.ID) (models.Item, bool) {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	for _, it := range ctrl.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.Item{}, false
}

func (ctrl *ItemController) Select(id models.ID) {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	ctrl.selected = id
}

func (ctrl *ItemController) Selected() models.ID {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	return ctrl.selected
}

// Save updates the selected item, or creates a new one when no item is
// selected. An acting user is required (it becomes createdBy or
// updatedBy), as are a name and a valid non-negative price. After a
// create the selection is cleared.
func (ctrl *ItemController) Save(ctx context.Context, actor models.ID, name, description, price, image string, active bool) error {
	if actor.IsZero() {
		return &ValidationError{Message: "select a user first; items record that user as creator"}
	}
	if name == "" || price == "" {
		return &ValidationError{Message: "name and price are required"}
	}
	numericPrice, err := decimal.NewFromString(price)
	if err != nil || numericPrice.IsNegative() {
		return &ValidationError{Message: "price must be a valid non-negative number"}
	}

	selected := ctrl.Selected()
	if !selected.IsZero() {
		updated, err := ctrl.api.UpdateItem(ctx, models.UpdateItemRequest{
			ID:          selected,
			Name:        name,
			Description: description,
			Price:       numericPrice,
			Image:       image,
			Status:      active,
			UpdatedBy:   actor,
		})
		if err != nil {
			return fmt.Errorf("updating item: %w", err)
		}
		if updated.ID.IsZero() {
			updated.ID = selected
		}

		ctrl.mu.Lock()
		defer ctrl.mu.Unlock()
		next := ctrl.items[:0]
		for _, it := range ctrl.items {
			if it.ID == selected {
				it = updated
			}
			if it.Status {
				next = append(next, it)
			}
		}
		ctrl.items = next
		return nil
	}

	created, err := ctrl.api.CreateItem(ctx, models.CreateItemRequest{
		Name:        name,
		Description: description,
		Price:       numericPrice,
		Image:       image,
		Status:      true,
		CreatedBy:   actor,
	})
	if err != nil {
		return fmt.Errorf("creating item: %w", err)
	}

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	if !created.ID.IsZero() && created.Status {
		ctrl.items = append(ctrl.items, created)
	}
	ctrl.selected = ""
	return nil
}

// Delete soft-deletes the selected item and moves the selection to the
// first remaining item.
func (ctrl *ItemController) Delete(ctx context.Context, actor models.ID) error {
	selected := ctrl.Selected()
	if selected.IsZero() {
		return &ValidationError{Message: "select an item to delete"}
	}
	if actor.IsZero() {
		actor = models.ID("1")
	}

	if err := ctrl.api.DeleteItem(ctx, selected, actor); err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	next := ctrl.items[:0]
	for _, it := range ctrl.items {
		if it.ID != selected {
			next = append(next, it)
		}
	}
	ctrl.items = next
	if len(ctrl.items) > 0 {
		ctrl.selected = ctrl.items[0].ID
	} else {
		ctrl.selected = ""
	}
	return nil
}
