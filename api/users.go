package api

import (
	"context"
	"fmt"
	"net/http"

	"food-admin/models"
)

func (c *Client) GetUsers(ctx context.Context) ([]models.User, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/user/all", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.User](raw), nil
}

func (c *Client) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/user/create", req)
	if err != nil {
		return models.User{}, err
	}
	return decode[models.User](raw, "user"), nil
}

func (c *Client) UpdateUser(ctx context.Context, req models.UpdateUserRequest) (models.User, error) {
	raw, err := c.do(ctx, http.MethodPut, "/api/user/update", req)
	if err != nil {
		return models.User{}, err
	}
	return decode[models.User](raw, "user"), nil
}

func (c *Client) DeleteUser(ctx context.Context, id, deletedBy models.ID) error {
	path := fmt.Sprintf("/api/user/delete/%s", id)
	_, err := c.do(ctx, http.MethodDelete, path, models.DeleteRequest{DeletedBy: deletedBy})
	return err
}
