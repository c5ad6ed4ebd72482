package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCartAddMergesQuantities(t *testing.T) {
	e := newEnv(t)
	u := e.newUser(t, "cart@example.com")
	f := e.newFood(t, "Burger", 100)

	_, err := e.cart.Add(context.Background(), u.ID, f.ID, 2)
	require.NoError(t, err)
	updated, err := e.cart.Add(context.Background(), u.ID, f.ID, 3)
	require.NoError(t, err)

	require.Len(t, updated.Cart, 1)
	assert.Equal(t, f.ID, updated.Cart[0].Product)
	assert.Equal(t, 5, updated.Cart[0].Quantity)
}

func TestCartAddRejectsNonPositiveQuantity(t *testing.T) {
	e := newEnv(t)
	u := e.newUser(t, "cart@example.com")
	f := e.newFood(t, "Burger", 100)

	_, err := e.cart.Add(context.Background(), u.ID, f.ID, 0)
	status, ok := StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCartAddUnknownUser(t *testing.T) {
	e := newEnv(t)
	f := e.newFood(t, "Burger", 100)

	_, err := e.cart.Add(context.Background(), primitive.NewObjectID(), f.ID, 1)
	status, ok := StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCartRemoveWithoutQuantityDropsEntry(t *testing.T) {
	e := newEnv(t)
	u := e.newUser(t, "cart@example.com")
	f := e.newFood(t, "Burger", 100)

	_, err := e.cart.Add(context.Background(), u.ID, f.ID, 7)
	require.NoError(t, err)

	updated, err := e.cart.Remove(context.Background(), u.ID, f.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, updated.Cart)
}

func TestCartRemoveDecrements(t *testing.T) {
	e := newEnv(t)
	u := e.newUser(t, "cart@example.com")
	f := e.newFood(t, "Burger", 100)

	_, err := e.cart.Add(context.Background(), u.ID, f.ID, 5)
	require.NoError(t, err)

	updated, err := e.cart.Remove(context.Background(), u.ID, f.ID, 2)
	require.NoError(t, err)
	require.Len(t, updated.Cart, 1)
	assert.Equal(t, 3, updated.Cart[0].Quantity)

	// removing at least the current quantity drops the entry
	updated, err = e.cart.Remove(context.Background(), u.ID, f.ID, 3)
	require.NoError(t, err)
	assert.Empty(t, updated.Cart)
}

func TestCartRemoveMissingEntry(t *testing.T) {
	e := newEnv(t)
	u := e.newUser(t, "cart@example.com")
	f := e.newFood(t, "Burger", 100)

	_, err := e.cart.Remove(context.Background(), u.ID, f.ID, 0)
	status, ok := StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCartListResolvesProducts(t *testing.T) {
	e := newEnv(t)
	u := e.newUser(t, "cart@example.com")
	burger := e.newFood(t, "Burger", 100)
	pizza := e.newFood(t, "Pizza", 200)

	_, err := e.cart.Add(context.Background(), u.ID, burger.ID, 1)
	require.NoError(t, err)
	_, err = e.cart.Add(context.Background(), u.ID, pizza.ID, 2)
	require.NoError(t, err)

	items, err := e.cart.List(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, "Burger", items[0].Product.Name)
	require.NotNil(t, items[1].Product)
	assert.Equal(t, "Pizza", items[1].Product.Name)
}

func TestCartListKeepsDeletedProductsAsNullMarker(t *testing.T) {
	e := newEnv(t)
	u := e.newUser(t, "cart@example.com")
	f := e.newFood(t, "Burger", 100)

	_, err := e.cart.Add(context.Background(), u.ID, f.ID, 2)
	require.NoError(t, err)
	require.NoError(t, e.st.Foods().Delete(context.Background(), f.ID))

	items, err := e.cart.List(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Product)
	assert.Equal(t, 2, items[0].Quantity)
}
