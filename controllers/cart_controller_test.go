package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"food-admin/api"
	"food-admin/mockapi"
	"food-admin/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture spins up the in-memory API and seeds one user and two menu
// items through the real client, so tests exercise the full wire path.
type fixture struct {
	client *api.Client
	user   models.User
	coffee models.Item
	bagel  models.Item
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	server := httptest.NewServer(mockapi.NewServer(mockapi.NewStore()).Router())
	t.Cleanup(server.Close)

	client, err := api.NewClient(api.Config{BaseURL: server.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)

	ctx := context.Background()
	user, err := client.CreateUser(ctx, models.CreateUserRequest{
		Name: "Asep", Phone: "0812", Address: "Jl. Sudirman 1", CreatedBy: models.ID("1"),
	})
	require.NoError(t, err)

	coffee, err := client.CreateItem(ctx, models.CreateItemRequest{
		Name: "Coffee", Price: decimal.NewFromInt(25), CreatedBy: models.ID("1"),
	})
	require.NoError(t, err)
	bagel, err := client.CreateItem(ctx, models.CreateItemRequest{
		Name: "Bagel", Price: decimal.NewFromInt(40), CreatedBy: models.ID("1"),
	})
	require.NoError(t, err)

	return &fixture{client: client, user: user, coffee: coffee, bagel: bagel}
}

func TestAddItemRequiresUser(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()
	client, err := api.NewClient(api.Config{BaseURL: server.URL})
	require.NoError(t, err)

	cart := NewCartController(client)
	err = cart.AddItem(context.Background(), "", models.Item{ID: models.ID("1"), Name: "Coffee"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, int64(0), calls.Load(), "no request should be made without a user")
	assert.Empty(t, cart.Items())
}

func TestAddItemCreatesCartThenAccumulates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cart := NewCartController(f.client)

	require.NoError(t, cart.AddItem(ctx, f.user.ID, f.coffee))
	assert.False(t, cart.CartID().IsZero(), "first add captures the backend cart id")

	firstID := cart.CartID()
	require.NoError(t, cart.AddItem(ctx, f.user.ID, f.coffee))
	require.NoError(t, cart.AddItem(ctx, f.user.ID, f.bagel))
	assert.Equal(t, firstID, cart.CartID(), "subsequent adds update, not recreate")

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(90)))
	assert.False(t, cart.Dirty())

	// The remote cart holds the same lines.
	remote, err := f.client.GetCartByID(ctx, firstID)
	require.NoError(t, err)
	require.Len(t, remote.Items, 2)
	assert.Equal(t, 2, remote.Items[0].Quantity)
}

func TestChangeQuantityDropsLineAtZero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cart := NewCartController(f.client)

	require.NoError(t, cart.AddItem(ctx, f.user.ID, f.coffee))
	require.NoError(t, cart.AddItem(ctx, f.user.ID, f.bagel))
	require.NoError(t, cart.ChangeQuantity(ctx, f.user.ID, f.coffee.ID, 2))
	require.Len(t, cart.Items(), 2)
	assert.Equal(t, 3, cart.Items()[0].Quantity)

	require.NoError(t, cart.ChangeQuantity(ctx, f.user.ID, f.bagel.ID, -1))
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, f.coffee.ID, items[0].ItemID)

	remote, err := f.client.GetCartByID(ctx, cart.CartID())
	require.NoError(t, err)
	require.Len(t, remote.Items, 1)
}

func TestChangeQuantityRequiresCartAndUser(t *testing.T) {
	f := newFixture(t)
	cart := NewCartController(f.client)

	err := cart.ChangeQuantity(context.Background(), f.user.ID, f.coffee.ID, 1)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestHydratePicksLastActiveCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Two active carts for the same user; the later one wins.
	_, err := f.client.CreateCart(ctx, models.CreateCartRequest{
		UserID:    f.user.ID,
		FoodItems: []models.CartLine{{ItemID: f.coffee.ID, Quantity: 1}},
		Status:    true,
		CreatedBy: f.user.ID,
	})
	require.NoError(t, err)
	second, err := f.client.CreateCart(ctx, models.CreateCartRequest{
		UserID:    f.user.ID,
		FoodItems: []models.CartLine{{ItemID: f.bagel.ID, Quantity: 2}},
		Status:    true,
		CreatedBy: f.user.ID,
	})
	require.NoError(t, err)

	known := []models.Item{f.coffee, f.bagel}
	cart := NewCartController(f.client)
	cart.Hydrate(ctx, f.user.ID, known)

	assert.Equal(t, second.ID, cart.CartID())
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Bagel", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)

	// Hydrating again changes nothing.
	cart.Hydrate(ctx, f.user.ID, known)
	assert.Equal(t, second.ID, cart.CartID())
	assert.Len(t, cart.Items(), 1)
}

func TestHydrateWithoutCartClearsState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cart := NewCartController(f.client)

	require.NoError(t, cart.AddItem(ctx, f.user.ID, f.coffee))
	require.NoError(t, f.client.DeleteCart(ctx, cart.CartID(), f.user.ID))

	cart.Hydrate(ctx, f.user.ID, nil)
	assert.True(t, cart.CartID().IsZero())
	assert.Empty(t, cart.Items())
}

func TestHydrateUsesPlaceholderForUnknownItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.client.CreateCart(ctx, models.CreateCartRequest{
		UserID:    f.user.ID,
		FoodItems: []models.CartLine{{ItemID: f.coffee.ID, Quantity: 1}},
		Status:    true,
		CreatedBy: f.user.ID,
	})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	cart := NewCartController(f.client)
	cart.Hydrate(ctx, f.user.ID, nil)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Item #"+f.coffee.ID.String(), items[0].Name)
	assert.True(t, items[0].Price.IsZero())
}

func TestFailedWriteKeepsOptimisticStateAndMarksDirty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "backend down"}`))
	}))
	defer server.Close()
	client, err := api.NewClient(api.Config{BaseURL: server.URL})
	require.NoError(t, err)

	cart := NewCartController(client)
	err = cart.AddItem(context.Background(), models.ID("7"), models.Item{
		ID: models.ID("3"), Name: "Coffee", Price: decimal.NewFromInt(25),
	})

	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "backend down", reqErr.Message)

	// Optimistic line stays, flagged for a forced re-hydration.
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.True(t, cart.Dirty())
	assert.False(t, cart.Saving())

	// A hydration that also fails leaves the dirty local state alone.
	cart.Hydrate(context.Background(), models.ID("7"), nil)
	assert.Len(t, cart.Items(), 1)
	assert.True(t, cart.Dirty())
}

func TestTotalOnEmptyCartIsZero(t *testing.T) {
	cart := NewCartController(nil)
	assert.True(t, cart.Total().IsZero())
	assert.Empty(t, cart.Items())
	assert.True(t, cart.CartID().IsZero())
}

func TestClearResetsCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cart := NewCartController(f.client)

	require.NoError(t, cart.AddItem(ctx, f.user.ID, f.coffee))
	cart.Clear()
	assert.True(t, cart.CartID().IsZero())
	assert.Empty(t, cart.Items())
	assert.False(t, cart.Dirty())
}
