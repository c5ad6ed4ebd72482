package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesAddIsIdempotent(t *testing.T) {
	e := newEnv(t)
	u := e.newUser(t, "fav@example.com")
	f := e.newFood(t, "Burger", 100)

	_, err := e.fav.Add(context.Background(), u.ID, f.ID)
	require.NoError(t, err)
	updated, err := e.fav.Add(context.Background(), u.ID, f.ID)
	require.NoError(t, err)

	assert.Len(t, updated.Favourites, 1)
}

func TestFavoritesRemoveAbsentIsNotAnError(t *testing.T) {
	e := newEnv(t)
	u := e.newUser(t, "fav@example.com")
	f := e.newFood(t, "Burger", 100)

	updated, err := e.fav.Remove(context.Background(), u.ID, f.ID)
	require.NoError(t, err)
	assert.Empty(t, updated.Favourites)
}

func TestFavoritesListResolvesProducts(t *testing.T) {
	e := newEnv(t)
	u := e.newUser(t, "fav@example.com")
	burger := e.newFood(t, "Burger", 100)
	pizza := e.newFood(t, "Pizza", 200)

	_, err := e.fav.Add(context.Background(), u.ID, burger.ID)
	require.NoError(t, err)
	_, err = e.fav.Add(context.Background(), u.ID, pizza.ID)
	require.NoError(t, err)

	foods, err := e.fav.List(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "Burger", foods[0].Name)
	assert.Equal(t, "Pizza", foods[1].Name)

	// deleted products drop out of the favourites listing
	require.NoError(t, e.st.Foods().Delete(context.Background(), burger.ID))
	foods, err = e.fav.List(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Pizza", foods[0].Name)
}
