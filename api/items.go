package api

import (
	"context"
	"fmt"
	"net/http"

	"food-admin/models"
)

func (c *Client) GetItems(ctx context.Context) ([]models.Item, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/items/all", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.Item](raw), nil
}

func (c *Client) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/items/create", req)
	if err != nil {
		return models.Item{}, err
	}
	return decode[models.Item](raw, "item"), nil
}

func (c *Client) UpdateItem(ctx context.Context, req models.UpdateItemRequest) (models.Item, error) {
	raw, err := c.do(ctx, http.MethodPut, "/api/items/update", req)
	if err != nil {
		return models.Item{}, err
	}
	return decode[models.Item](raw, "item"), nil
}

func (c *Client) DeleteItem(ctx context.Context, id, deletedBy models.ID) error {
	path := fmt.Sprintf("/api/items/delete/%s", id)
	_, err := c.do(ctx, http.MethodDelete, path, models.DeleteRequest{DeletedBy: deletedBy})
	return err
}
