package controllers

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"food-admin/api"
	"food-admin/models"
)

// OrderController places orders and tracks the live one. Once an
// order exists it is polled on a fixed interval; an optional
// simulation loop walks the order through the delivery sequence by
// calling updateStatus on a timer, standing in for the kitchen.
type OrderController struct {
	api           *api.Client
	pollInterval  time.Duration
	simulateDelay time.Duration

	mu       sync.Mutex
	orderID  models.ID
	snapshot *models.Order
	pollErr  error
	simulate bool
	// gen invalidates in-flight poll results after teardown or after a
	// new order replaces the tracked one.
	gen uint64
}

func NewOrderController(client *api.Client, pollInterval, simulateDelay time.Duration) *OrderController {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}
	if simulateDelay <= 0 {
		simulateDelay = 4 * time.Second
	}
	return &OrderController{
		api:           client,
		pollInterval:  pollInterval,
		simulateDelay: simulateDelay,
		simulate:      true,
	}
}

// PlaceOrder creates an order from the cart. It requires a selected
// user, a persisted cart, and at least one line item; otherwise it
// reports a validation error without calling the API. On success the
// backend consumes the cart, so local cart state is cleared and the
// returned order identifier becomes the tracked order.
func (ctrl *OrderController) PlaceOrder(ctx context.Context, userID models.ID, cart *CartController) error {
	if userID.IsZero() || cart.CartID().IsZero() || len(cart.Items()) == 0 {
		return &ValidationError{Message: "a user, a cart and at least one item are required to place an order"}
	}

	order, err := ctrl.api.CreateOrder(ctx, models.CreateOrderRequest{
		CartID:    cart.CartID(),
		UserID:    userID,
		CreatedBy: userID,
	})
	if err != nil {
		return fmt.Errorf("placing order: %w", err)
	}
	if order.ID.IsZero() {
		// The order exists on the backend but is unreachable from
		// here: there is nothing to poll and the cart must not be
		// cleared on blind faith.
		return fmt.Errorf("order created but %w", api.ErrMissingID)
	}

	cart.Clear()

	ctrl.mu.Lock()
	ctrl.orderID = order.ID
	ctrl.snapshot = nil
	ctrl.pollErr = nil
	ctrl.gen++
	ctrl.mu.Unlock()
	return nil
}

// StartPolling fetches the tracked order immediately and then on the
// fixed interval until the returned stop function is called. Fetch
// failures are recorded for display and never stop the loop. Stopping
// also suppresses the effect of any in-flight fetch.
func (ctrl *OrderController) StartPolling(ctx context.Context) (stop func()) {
	ctrl.mu.Lock()
	id := ctrl.orderID
	gen := ctrl.gen
	ctrl.mu.Unlock()
	if id.IsZero() {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(ctrl.pollInterval)
		defer ticker.Stop()
		ctrl.fetchOrder(ctx, gen, id)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ctrl.fetchOrder(ctx, gen, id)
			}
		}
	}()

	return func() {
		cancel()
		ctrl.mu.Lock()
		if ctrl.gen == gen {
			ctrl.gen++
		}
		ctrl.mu.Unlock()
	}
}

func (ctrl *OrderController) fetchOrder(ctx context.Context, gen uint64, id models.ID) {
	order, err := ctrl.api.GetOrderByID(ctx, id)

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	if ctrl.gen != gen {
		// The loop was torn down (or the order replaced) while this
		// fetch was in flight; its result no longer applies.
		return
	}
	if err != nil {
		ctrl.pollErr = err
		return
	}
	ctrl.snapshot = &order
	ctrl.pollErr = nil
}

// StartSimulation advances the tracked order one status per tick,
// skipping the initial status, until Delivered is reached or the
// returned stop function is called. Each tick is scheduled only after
// the previous update resolves, so statuses are never sent out of
// order. Update failures are logged and do not stop the sequence.
func (ctrl *OrderController) StartSimulation(ctx context.Context, userID models.ID) (stop func()) {
	ctrl.mu.Lock()
	id := ctrl.orderID
	enabled := ctrl.simulate
	ctrl.mu.Unlock()
	if id.IsZero() || userID.IsZero() || !enabled {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		status := models.StatusPending
		timer := time.NewTimer(ctrl.simulateDelay)
		defer timer.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			next, ok := status.Next()
			if !ok {
				return
			}
			status = next

			if _, err := ctrl.api.UpdateOrderStatus(ctx, models.UpdateOrderStatusRequest{
				ID:          id,
				OrderStatus: status,
				UpdatedBy:   userID,
			}); err != nil {
				log.Printf("Failed to update order status to %q: %v", status, err)
			}

			if status.Terminal() {
				return
			}
			timer.Reset(ctrl.simulateDelay)
		}
	}()
	return cancel
}

// SetSimulate toggles whether a subsequently started simulation loop
// runs. Turning it off does not stop a running loop; callers stop the
// loop via its stop function.
func (ctrl *OrderController) SetSimulate(enabled bool) {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	ctrl.simulate = enabled
}

func (ctrl *OrderController) Simulate() bool {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	return ctrl.simulate
}

func (ctrl *OrderController) OrderID() models.ID {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	return ctrl.orderID
}

// Snapshot returns the last-fetched order and the last poll error.
func (ctrl *OrderController) Snapshot() (*models.Order, error) {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	if ctrl.snapshot == nil {
		return nil, ctrl.pollErr
	}
	order := *ctrl.snapshot
	return &order, ctrl.pollErr
}

// ListOrders fetches all orders for the list view. Entries missing an
// identifier are kept; rendering falls back field by field.
func (ctrl *OrderController) ListOrders(ctx context.Context) ([]models.Order, error) {
	return ctrl.api.GetOrders(ctx)
}
