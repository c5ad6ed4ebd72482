package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Anupamgithub3/Food-Delivery-site/internal/model"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/store"
)

func seedCatalog(t *testing.T, e *env) {
	t.Helper()
	_, err := e.catalog.AddProducts(context.Background(), []FoodInput{
		{
			Name:        "Classic Cheeseburger",
			Desc:        "A juicy beef patty",
			Price:       model.Price{Org: 249, MRP: 299, Off: 17},
			Category:    []string{"Burgers"},
			Ingredients: []string{"Beef Patty", "Cheddar Cheese"},
		},
		{
			Name:        "Margarita Pizza",
			Desc:        "Fresh basil and mozzarella",
			Price:       model.Price{Org: 399, MRP: 449, Off: 11},
			Category:    []string{"Pizzas"},
			Ingredients: []string{"Pizza Dough", "Mozzarella"},
		},
		{
			Name:        "Mango Lassi",
			Desc:        "A creamy mango yogurt drink",
			Price:       model.Price{Org: 99, MRP: 129, Off: 23},
			Category:    []string{"Beverages"},
			Ingredients: []string{"Mango Pulp", "Yogurt"},
		},
	})
	require.NoError(t, err)
}

func names(foods []model.Food) []string {
	out := make([]string, 0, len(foods))
	for _, f := range foods {
		out = append(out, f.Name)
	}
	return out
}

func TestCatalogListUnfiltered(t *testing.T) {
	e := newEnv(t)
	seedCatalog(t, e)

	foods, err := e.catalog.List(context.Background(), store.FoodFilter{})
	require.NoError(t, err)
	assert.Len(t, foods, 3)
}

func TestCatalogFiltersCompose(t *testing.T) {
	e := newEnv(t)
	seedCatalog(t, e)

	min, max := 100.0, 400.0
	foods, err := e.catalog.List(context.Background(), store.FoodFilter{
		Categories: []string{"Burgers", "Pizzas"},
		MinPrice:   &min,
		MaxPrice:   &max,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Classic Cheeseburger", "Margarita Pizza"}, names(foods))

	// adding an ingredient conjunct narrows further
	foods, err = e.catalog.List(context.Background(), store.FoodFilter{
		Categories:  []string{"Burgers", "Pizzas"},
		Ingredients: []string{"Mozzarella"},
		MinPrice:    &min,
		MaxPrice:    &max,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Margarita Pizza"}, names(foods))
}

func TestCatalogSearchIsCaseInsensitiveOverNameAndDesc(t *testing.T) {
	e := newEnv(t)
	seedCatalog(t, e)

	foods, err := e.catalog.List(context.Background(), store.FoodFilter{Search: "MANGO"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Mango Lassi"}, names(foods))

	foods, err = e.catalog.List(context.Background(), store.FoodFilter{Search: "juicy"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Classic Cheeseburger"}, names(foods))
}

func TestCatalogAddRequiresArray(t *testing.T) {
	e := newEnv(t)

	_, err := e.catalog.AddProducts(context.Background(), nil)
	status, ok := StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCatalogUpdateIsPartial(t *testing.T) {
	e := newEnv(t)
	seedCatalog(t, e)

	foods, err := e.catalog.List(context.Background(), store.FoodFilter{Search: "Lassi"})
	require.NoError(t, err)
	require.Len(t, foods, 1)

	newName := "Mango Lassi (Large)"
	updated, err := e.catalog.Update(context.Background(), foods[0].ID, store.FoodUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, foods[0].Price, updated.Price, "untouched fields survive a patch")
	assert.Equal(t, foods[0].Category, updated.Category)
}

func TestCatalogGetAndDeleteMissing(t *testing.T) {
	e := newEnv(t)

	_, err := e.catalog.Get(context.Background(), primitive.NewObjectID())
	status, ok := StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, status)

	err = e.catalog.Delete(context.Background(), primitive.NewObjectID())
	status, ok = StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, status)
}
