package mockapi

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"food-admin/api"
	"food-admin/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T) (*api.Client, *Store) {
	t.Helper()
	store := NewStore()
	server := httptest.NewServer(NewServer(store).Router())
	t.Cleanup(server.Close)
	client, err := api.NewClient(api.Config{BaseURL: server.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return client, store
}

func TestSeedProducesActiveRecords(t *testing.T) {
	client, store := newAPI(t)
	store.Seed(3, 8)

	users, err := client.GetUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	for _, u := range users {
		assert.False(t, u.ID.IsZero())
		assert.NotEmpty(t, u.Name)
		assert.True(t, u.Status)
	}

	items, err := client.GetItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 8)
	for _, it := range items {
		assert.NotEmpty(t, it.Name)
		assert.NotEmpty(t, it.Image)
		assert.False(t, it.Price.IsNegative())
	}
}

func TestCartQuantityAndRemovalEndpoints(t *testing.T) {
	client, _ := newAPI(t)
	ctx := context.Background()

	user, err := client.CreateUser(ctx, models.CreateUserRequest{Name: "Dina", Phone: "0813"})
	require.NoError(t, err)
	coffee, err := client.CreateItem(ctx, models.CreateItemRequest{Name: "Coffee", Price: decimal.NewFromInt(25)})
	require.NoError(t, err)
	bagel, err := client.CreateItem(ctx, models.CreateItemRequest{Name: "Bagel", Price: decimal.NewFromInt(40)})
	require.NoError(t, err)

	cart, err := client.CreateCart(ctx, models.CreateCartRequest{
		UserID: user.ID,
		FoodItems: []models.CartLine{
			{ItemID: coffee.ID, Quantity: 1},
			{ItemID: bagel.ID, Quantity: 1},
		},
		Status:    true,
		CreatedBy: user.ID,
	})
	require.NoError(t, err)

	updated, err := client.UpdateCartQuantity(ctx, models.UpdateCartQuantityRequest{
		CartID: cart.ID, ItemID: coffee.ID, Quantity: 5,
	})
	require.NoError(t, err)
	require.Len(t, updated.Items, 2)
	assert.Equal(t, 5, updated.Items[0].Quantity)

	updated, err = client.RemoveCartItem(ctx, models.RemoveCartItemRequest{CartID: cart.ID, ItemID: bagel.ID})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, coffee.ID, updated.Items[0].ItemID)

	// Setting a quantity to zero drops the line.
	updated, err = client.UpdateCartQuantity(ctx, models.UpdateCartQuantityRequest{
		CartID: cart.ID, ItemID: coffee.ID, Quantity: 0,
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Items)
}

func TestCreateOrderConsumesCartAndPricesIt(t *testing.T) {
	client, _ := newAPI(t)
	ctx := context.Background()

	user, err := client.CreateUser(ctx, models.CreateUserRequest{Name: "Dina", Phone: "0813"})
	require.NoError(t, err)
	coffee, err := client.CreateItem(ctx, models.CreateItemRequest{Name: "Coffee", Price: decimal.NewFromInt(25)})
	require.NoError(t, err)

	cart, err := client.CreateCart(ctx, models.CreateCartRequest{
		UserID:    user.ID,
		FoodItems: []models.CartLine{{ItemID: coffee.ID, Quantity: 3}},
		Status:    true,
		CreatedBy: user.ID,
	})
	require.NoError(t, err)

	order, err := client.CreateOrder(ctx, models.CreateOrderRequest{
		CartID: cart.ID, UserID: user.ID, CreatedBy: user.ID,
	})
	require.NoError(t, err)
	assert.False(t, order.ID.IsZero())
	assert.Equal(t, models.StatusPending, order.Status)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(75)))
	require.Len(t, order.Items, 1)
	assert.False(t, order.CreatedAt.IsZero())

	// The cart is consumed and cannot be ordered again.
	consumed, err := client.GetCartByID(ctx, cart.ID)
	require.NoError(t, err)
	assert.False(t, consumed.Status)

	_, err = client.CreateOrder(ctx, models.CreateOrderRequest{
		CartID: cart.ID, UserID: user.ID, CreatedBy: user.ID,
	})
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 404, reqErr.StatusCode)
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	client, _ := newAPI(t)
	ctx := context.Background()

	user, err := client.CreateUser(ctx, models.CreateUserRequest{Name: "Dina", Phone: "0813"})
	require.NoError(t, err)
	cart, err := client.CreateCart(ctx, models.CreateCartRequest{
		UserID: user.ID, Status: true, CreatedBy: user.ID,
	})
	require.NoError(t, err)

	_, err = client.CreateOrder(ctx, models.CreateOrderRequest{
		CartID: cart.ID, UserID: user.ID, CreatedBy: user.ID,
	})
	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "cart is empty", reqErr.Message)
}

func TestDeletesAreSoft(t *testing.T) {
	client, _ := newAPI(t)
	ctx := context.Background()

	user, err := client.CreateUser(ctx, models.CreateUserRequest{Name: "Dina", Phone: "0813"})
	require.NoError(t, err)
	require.NoError(t, client.DeleteUser(ctx, user.ID, user.ID))

	users, err := client.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1, "deleted users stay listed, inactive")
	assert.False(t, users[0].Status)

	item, err := client.CreateItem(ctx, models.CreateItemRequest{Name: "Coffee", Price: decimal.NewFromInt(25)})
	require.NoError(t, err)
	require.NoError(t, client.DeleteItem(ctx, item.ID, user.ID))

	items, err := client.GetItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].Status)
}

func TestOrderStatusUpdate(t *testing.T) {
	client, _ := newAPI(t)
	ctx := context.Background()

	user, err := client.CreateUser(ctx, models.CreateUserRequest{Name: "Dina", Phone: "0813"})
	require.NoError(t, err)
	coffee, err := client.CreateItem(ctx, models.CreateItemRequest{Name: "Coffee", Price: decimal.NewFromInt(25)})
	require.NoError(t, err)
	cart, err := client.CreateCart(ctx, models.CreateCartRequest{
		UserID:    user.ID,
		FoodItems: []models.CartLine{{ItemID: coffee.ID, Quantity: 1}},
		Status:    true,
		CreatedBy: user.ID,
	})
	require.NoError(t, err)
	order, err := client.CreateOrder(ctx, models.CreateOrderRequest{
		CartID: cart.ID, UserID: user.ID, CreatedBy: user.ID,
	})
	require.NoError(t, err)

	updated, err := client.UpdateOrderStatus(ctx, models.UpdateOrderStatusRequest{
		ID: order.ID, OrderStatus: models.StatusPreparing, UpdatedBy: user.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPreparing, updated.Status)

	fetched, err := client.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPreparing, fetched.Status)
}
