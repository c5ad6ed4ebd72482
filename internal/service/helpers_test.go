package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Anupamgithub3/Food-Delivery-site/internal/model"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/store"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/store/memstore"
)

type env struct {
	st      *memstore.Store
	auth    AuthService
	catalog CatalogService
	cart    CartService
	fav     FavoriteService
	orders  OrderService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	st := memstore.New()
	return &env{
		st:      st,
		auth:    NewAuthService(st.Users(), []byte("test-secret")),
		catalog: NewCatalogService(st.Foods()),
		cart:    NewCartService(st.Users(), st.Foods()),
		fav:     NewFavoriteService(st.Users(), st.Foods()),
		orders:  NewOrderService(st.Users(), st.Foods(), st.Orders()),
	}
}

func (e *env) newUser(t *testing.T, email string) model.User {
	t.Helper()
	u := model.User{
		Name:       "Test User",
		Email:      email,
		Password:   "irrelevant-hash",
		Role:       model.RoleCustomer,
		Cart:       []model.CartItem{},
		Favourites: []primitive.ObjectID{},
		Orders:     []primitive.ObjectID{},
	}
	require.NoError(t, e.st.Users().Create(context.Background(), &u))
	return u
}

func memUsers(t *testing.T) store.UserStore {
	t.Helper()
	return memstore.New().Users()
}

func (e *env) newFood(t *testing.T, name string, price float64) model.Food {
	t.Helper()
	foods, err := e.st.Foods().Insert(context.Background(), []model.Food{{
		Name:  name,
		Desc:  name + " description",
		Price: model.Price{Org: price, MRP: price, Off: 0},
	}})
	require.NoError(t, err)
	return foods[0]
}
