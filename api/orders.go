package api

import (
	"context"
	"fmt"
	"net/http"

	"food-admin/models"
)

func (c *Client) GetOrders(ctx context.Context) ([]models.Order, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/orders/all", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.Order](raw), nil
}

func (c *Client) GetOrderByID(ctx context.Context, id models.ID) (models.Order, error) {
	path := fmt.Sprintf("/api/orders/getbyid/%s", id)
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return models.Order{}, err
	}
	return decode[models.Order](raw, "order"), nil
}

func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (models.Order, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/orders/create", req)
	if err != nil {
		return models.Order{}, err
	}
	return decode[models.Order](raw, "order"), nil
}

func (c *Client) UpdateOrder(ctx context.Context, req models.UpdateOrderRequest) (models.Order, error) {
	raw, err := c.do(ctx, http.MethodPut, "/api/orders/update", req)
	if err != nil {
		return models.Order{}, err
	}
	return decode[models.Order](raw, "order"), nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, req models.UpdateOrderStatusRequest) (models.Order, error) {
	raw, err := c.do(ctx, http.MethodPut, "/api/orders/updateStatus", req)
	if err != nil {
		return models.Order{}, err
	}
	return decode[models.Order](raw, "order"), nil
}

func (c *Client) DeleteOrder(ctx context.Context, id, deletedBy models.ID) error {
	path := fmt.Sprintf("/api/orders/delete/%s", id)
	_, err := c.do(ctx, http.MethodDelete, path, models.DeleteRequest{DeletedBy: deletedBy})
	return err
}
