package controllers

import (
	"context"
	"testing"

	"food-admin/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemLoadFiltersInactive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.client.DeleteItem(ctx, f.bagel.ID, f.user.ID))

	items := NewItemController(f.client)
	require.NoError(t, items.Load(ctx))

	require.Len(t, items.Items(), 1)
	assert.Equal(t, "Coffee", items.Items()[0].Name)

	_, ok := items.Find(f.bagel.ID)
	assert.False(t, ok)
	found, ok := items.Find(f.coffee.ID)
	require.True(t, ok)
	assert.True(t, found.Price.Equal(decimal.NewFromInt(25)))
}

func TestItemSaveValidation(t *testing.T) {
	items := NewItemController(nil)
	ctx := context.Background()
	var vErr *ValidationError

	assert.ErrorAs(t, items.Save(ctx, "", "Coffee", "", "25", "", true), &vErr)
	assert.ErrorAs(t, items.Save(ctx, models.ID("1"), "", "", "25", "", true), &vErr)
	assert.ErrorAs(t, items.Save(ctx, models.ID("1"), "Coffee", "", "", "", true), &vErr)
	assert.ErrorAs(t, items.Save(ctx, models.ID("1"), "Coffee", "", "abc", "", true), &vErr)
	assert.ErrorAs(t, items.Save(ctx, models.ID("1"), "Coffee", "", "-5", "", true), &vErr)
}

func TestItemSaveCreatesAndClearsSelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	items := NewItemController(f.client)
	require.NoError(t, items.Load(ctx))
	require.NoError(t, items.Save(ctx, f.user.ID, "Croissant", "buttery", "30.50", "", true))

	assert.True(t, items.Selected().IsZero())
	require.Len(t, items.Items(), 3)
	created := items.Items()[2]
	assert.Equal(t, "Croissant", created.Name)
	assert.True(t, created.Price.Equal(decimal.RequireFromString("30.50")))
}

func TestItemSaveUpdatesSelected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	items := NewItemController(f.client)
	require.NoError(t, items.Load(ctx))
	items.Select(f.coffee.ID)
	require.NoError(t, items.Save(ctx, f.user.ID, "Iced Coffee", "cold", "28", "", true))

	found, ok := items.Find(f.coffee.ID)
	require.True(t, ok)
	assert.Equal(t, "Iced Coffee", found.Name)
	assert.True(t, found.Price.Equal(decimal.NewFromInt(28)))
}

func TestItemDeleteMovesSelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	items := NewItemController(f.client)
	require.NoError(t, items.Load(ctx))
	items.Select(f.coffee.ID)
	require.NoError(t, items.Delete(ctx, f.user.ID))

	require.Len(t, items.Items(), 1)
	assert.Equal(t, f.bagel.ID, items.Selected())
}
