package api

import (
	"context"
	"fmt"
	"net/http"

	"food-admin/models"
)

func (c *Client) GetCarts(ctx context.Context) ([]models.Cart, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/cart/all", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.Cart](raw), nil
}

func (c *Client) GetCartByID(ctx context.Context, id models.ID) (models.Cart, error) {
	path := fmt.Sprintf("/api/cart/getbyid/%s", id)
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return models.Cart{}, err
	}
	return decode[models.Cart](raw, "cart"), nil
}

func (c *Client) CreateCart(ctx context.Context, req models.CreateCartRequest) (models.Cart, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/cart/create", req)
	if err != nil {
		return models.Cart{}, err
	}
	return decode[models.Cart](raw, "cart"), nil
}

func (c *Client) UpdateCart(ctx context.Context, req models.UpdateCartRequest) (models.Cart, error) {
	raw, err := c.do(ctx, http.MethodPut, "/api/cart/update", req)
	if err != nil {
		return models.Cart{}, err
	}
	return decode[models.Cart](raw, "cart"), nil
}

func (c *Client) UpdateCartQuantity(ctx context.Context, req models.UpdateCartQuantityRequest) (models.Cart, error) {
	raw, err := c.do(ctx, http.MethodPut, "/api/cart/updateQuantity", req)
	if err != nil {
		return models.Cart{}, err
	}
	return decode[models.Cart](raw, "cart"), nil
}

func (c *Client) RemoveCartItem(ctx context.Context, req models.RemoveCartItemRequest) (models.Cart, error) {
	raw, err := c.do(ctx, http.MethodPut, "/api/cart/RemoveItemsinCart", req)
	if err != nil {
		return models.Cart{}, err
	}
	return decode[models.Cart](raw, "cart"), nil
}

func (c *Client) DeleteCart(ctx context.Context, id, deletedBy models.ID) error {
	path := fmt.Sprintf("/api/cart/delete/%s", id)
	_, err := c.do(ctx, http.MethodDelete, path, models.DeleteRequest{DeletedBy: deletedBy})
	return err
}
