package controllers

import (
	"context"
	"fmt"
	"log"
	"sync"

	"food-admin/api"
	"food-admin/models"

	"github.com/shopspring/decimal"
)

// syncState tracks how much the local cart can be trusted relative to
// the remote one. A failed write leaves optimistic local state in
// place but marks it dirty so the next hydration is forced.
type syncState int

const (
	stateSynced syncState = iota
	statePendingWrite
	stateDirty
)

// CartController mirrors the operator's cart to the remote cart
// resource. Mutations apply locally first (optimistic), then persist;
// a transport failure leaves local state as-is and flags it dirty.
type CartController struct {
	api *api.Client

	mu     sync.Mutex
	cartID models.ID
	items  []models.CartItem
	saving bool
	state  syncState
}

func NewCartController(client *api.Client) *CartController {
	return &CartController{api: client}
}

// Hydrate replaces local cart state from the remote service: of the
// active carts belonging to userID, the last one returned wins (the
// API offers no recency timestamp, so order of return is the
// tie-break). Transport failures are logged and leave prior local
// state untouched.
func (ctrl *CartController) Hydrate(ctx context.Context, userID models.ID, knownItems []models.Item) {
	if userID.IsZero() {
		return
	}

	carts, err := ctrl.api.GetCarts(ctx)
	if err != nil {
		log.Printf("Failed to hydrate cart: %v", err)
		return
	}

	var latest *models.Cart
	for i := range carts {
		if carts[i].UserID == userID && carts[i].Status {
			latest = &carts[i]
		}
	}

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	if latest == nil || latest.ID.IsZero() {
		ctrl.cartID = ""
		ctrl.items = nil
		ctrl.state = stateSynced
		return
	}

	items := make([]models.CartItem, 0, len(latest.Items))
	for _, line := range latest.Items {
		items = append(items, models.DisplayCartItem(line, knownItems))
	}
	ctrl.cartID = latest.ID
	ctrl.items = items
	ctrl.state = stateSynced
}

// AddItem increments the quantity of item in the cart, or appends it
// with quantity one, then persists the full line list. The first
// persisted write creates the remote cart and captures its
// backend-assigned identifier.
func (ctrl *CartController) AddItem(ctx context.Context, userID models.ID, item models.Item) error {
	if userID.IsZero() {
		return &ValidationError{Message: "select a user before adding items to the cart"}
	}

	ctrl.mu.Lock()
	ctrl.saving = true
	ctrl.state = statePendingWrite

	found := false
	for i := range ctrl.items {
		if ctrl.items[i].ItemID == item.ID {
			ctrl.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		ctrl.items = append(ctrl.items, models.CartItem{
			ItemID:   item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: 1,
		})
	}
	cartID := ctrl.cartID
	lines := ctrl.lines()
	ctrl.mu.Unlock()

	if cartID.IsZero() {
		created, err := ctrl.api.CreateCart(ctx, models.CreateCartRequest{
			UserID:    userID,
			FoodItems: lines,
			Status:    true,
			CreatedBy: userID,
		})
		return ctrl.finishWrite(created.ID, err, "creating cart")
	}

	_, err := ctrl.api.UpdateCart(ctx, models.UpdateCartRequest{
		ID:        cartID,
		UserID:    userID,
		FoodItems: lines,
		Status:    true,
		UpdatedBy: userID,
	})
	return ctrl.finishWrite("", err, "updating cart")
}

// ChangeQuantity applies delta to the matching line's quantity,
// dropping the line entirely when it falls to zero or below, then
// persists the full resulting list.
func (ctrl *CartController) ChangeQuantity(ctx context.Context, userID, itemID models.ID, delta int) error {
	ctrl.mu.Lock()
	if ctrl.cartID.IsZero() || userID.IsZero() {
		ctrl.mu.Unlock()
		return &ValidationError{Message: "a cart and a selected user are required"}
	}

	ctrl.saving = true
	ctrl.state = statePendingWrite

	next := ctrl.items[:0]
	for _, ci := range ctrl.items {
		if ci.ItemID == itemID {
			ci.Quantity += delta
		}
		if ci.Quantity > 0 {
			next = append(next, ci)
		}
	}
	ctrl.items = next
	cartID := ctrl.cartID
	lines := ctrl.lines()
	ctrl.mu.Unlock()

	_, err := ctrl.api.UpdateCart(ctx, models.UpdateCartRequest{
		ID:        cartID,
		UserID:    userID,
		FoodItems: lines,
		Status:    true,
		UpdatedBy: userID,
	})
	return ctrl.finishWrite("", err, "updating cart")
}

// finishWrite records the write outcome. createdID is only set for a
// cart-create; the backend occasionally omits it, in which case the
// local cart stays unidentified and the next write creates again.
func (ctrl *CartController) finishWrite(createdID models.ID, err error, op string) error {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	ctrl.saving = false
	if err != nil {
		// No rollback: optimistic state stays, but is flagged so the
		// next hydration is forced instead of trusted.
		ctrl.state = stateDirty
		return fmt.Errorf("%s: %w", op, err)
	}
	if !createdID.IsZero() {
		ctrl.cartID = createdID
	}
	ctrl.state = stateSynced
	return nil
}

// lines converts display items back to wire lines. Callers must hold mu.
func (ctrl *CartController) lines() []models.CartLine {
	lines := make([]models.CartLine, len(ctrl.items))
	for i, ci := range ctrl.items {
		lines[i] = models.CartLine{ItemID: ci.ItemID, Quantity: ci.Quantity}
	}
	return lines
}

// Total sums price times quantity over the current line items.
func (ctrl *CartController) Total() decimal.Decimal {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	total := decimal.Zero
	for _, ci := range ctrl.items {
		total = total.Add(ci.Subtotal())
	}
	return total
}

// Items returns a copy of the current display line items.
func (ctrl *CartController) Items() []models.CartItem {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	items := make([]models.CartItem, len(ctrl.items))
	copy(items, ctrl.items)
	return items
}

func (ctrl *CartController) CartID() models.ID {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	return ctrl.cartID
}

// Saving reports whether a mutation is in flight. The flag is
// advisory: views use it to disable their triggering controls, it
// does not queue or reject concurrent calls.
func (ctrl *CartController) Saving() bool {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	return ctrl.saving
}

// Dirty reports whether the last write failed, meaning local state may
// disagree with the remote cart and a re-hydration should be forced.
func (ctrl *CartController) Dirty() bool {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	return ctrl.state == stateDirty
}

// Clear drops the local cart identifier and items. Called after an
// order consumes the cart on the backend.
func (ctrl *CartController) Clear() {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	ctrl.cartID = ""
	ctrl.items = nil
	ctrl.state = stateSynced
}
