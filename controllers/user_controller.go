package controllers

import (
	"context"
	"fmt"
	"sync"

	"food-admin/api"
	"food-admin/models"
)

// UserController manages the user list and the acting-user selection.
// At most one user is selected at a time; that user is the actor for
// cart and order operations.
type UserController struct {
	api *api.Client

	mu       sync.Mutex
	users    []models.User
	selected models.ID
}

func NewUserController(client *api.Client) *UserController {
	return &UserController{api: client}
}

// Load fetches all users, drops soft-deleted or unidentifiable
// entries, and selects the first user when none is selected yet.
func (ctrl *UserController) Load(ctx context.Context) error {
	users, err := ctrl.api.GetUsers(ctx)
	if err != nil {
		return fmt.Errorf("loading users: %w", err)
	}

	active := make([]models.User, 0, len(users))
	for _, u := range users {
		if !u.ID.IsZero() && u.Status {
			active = append(active, u)
		}
	}

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	ctrl.users = active
	if ctrl.selected.IsZero() && len(active) > 0 {
		ctrl.selected = active[0].ID
	}
	return nil
}

func (ctrl *UserController) Users() []models.User {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	users := make([]models.User, len(ctrl.users))
	copy(users, ctrl.users)
	return users
}

// Select marks id as the acting user. Selecting an unknown id is
// allowed; the operator may know a user the last load did not return.
func (ctrl *UserController) Select(id models.ID) {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	ctrl.selected = id
}

func (ctrl *UserController) Selected() models.ID {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	return ctrl.selected
}

// SelectedUser returns the acting user's record when it is in the
// loaded list.
func (ctrl *UserController) SelectedUser() (models.User, bool) {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	for _, u := range ctrl.users {
		if u.ID == ctrl.selected {
			return u, true
		}
	}
	return models.User{}, false
}

// Save updates the selected user, or creates a new one when no user is
// selected. Name and phone are required. A newly created user becomes
// the acting user.
func (ctrl *UserController) Save(ctx context.Context, name, phone, address string, active bool) error {
	if name == "" || phone == "" {
		return &ValidationError{Message: "name and phone are required"}
	}

	selected := ctrl.Selected()
	if !selected.IsZero() {
		updated, err := ctrl.api.UpdateUser(ctx, models.UpdateUserRequest{
			ID:        selected,
			Name:      name,
			Phone:     phone,
			Address:   address,
			Status:    active,
			UpdatedBy: selected,
		})
		if err != nil {
			return fmt.Errorf("updating user: %w", err)
		}
		if updated.ID.IsZero() {
			updated.ID = selected
		}

		ctrl.mu.Lock()
		defer ctrl.mu.Unlock()
		next := ctrl.users[:0]
		for _, u := range ctrl.users {
			if u.ID == selected {
				u = updated
			}
			if u.Status {
				next = append(next, u)
			}
		}
		ctrl.users = next
		return nil
	}

	created, err := ctrl.api.CreateUser(ctx, models.CreateUserRequest{
		Name:    name,
		Phone:   phone,
		Address: address,
		Status:  true,
		// First user is bootstrapped by the system actor.
		CreatedBy: models.ID("1"),
	})
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	if !created.ID.IsZero() && created.Status {
		ctrl.users = append(ctrl.users, created)
		ctrl.selected = created.ID
	}
	return nil
}

// Delete soft-deletes the selected user and moves the selection to the
// first remaining user.
func (ctrl *UserController) Delete(ctx context.Context) error {
	selected := ctrl.Selected()
	if selected.IsZero() {
		return &ValidationError{Message: "select a user to delete"}
	}

	if err := ctrl.api.DeleteUser(ctx, selected, selected); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	next := ctrl.users[:0]
	for _, u := range ctrl.users {
		if u.ID != selected {
			next = append(next, u)
		}
	}
	ctrl.users = next
	if len(ctrl.users) > 0 {
		ctrl.selected = ctrl.users[0].ID
	} else {
		ctrl.selected = ""
	}
	return nil
}
