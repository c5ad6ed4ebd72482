package memstore

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Anupamgithub3/Food-Delivery-site/internal/model"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/store"
)

func TestUserRoundTripAndNotFound(t *testing.T) {
	s := New()
	ctx := context.Background()

	u := model.User{Name: "Alice", Email: "alice@example.com", Role: model.RoleCustomer}
	if err := s.Users().Create(ctx, &u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID.IsZero() {
		t.Fatal("create must assign an id")
	}

	got, err := s.Users().GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("got id %v, want %v", got.ID, u.ID)
	}

	if _, err := s.Users().GetByID(ctx, primitive.NewObjectID()); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserUpdateDoesNotShareSlices(t *testing.T) {
	s := New()
	ctx := context.Background()

	u := model.User{Email: "alice@example.com", Cart: []model.CartItem{{Product: primitive.NewObjectID(), Quantity: 1}}}
	if err := s.Users().Create(ctx, &u); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, _ := s.Users().GetByID(ctx, u.ID)
	got.Cart[0].Quantity = 99

	again, _ := s.Users().GetByID(ctx, u.ID)
	if again.Cart[0].Quantity != 1 {
		t.Fatalf("mutation through a returned copy leaked into the store")
	}
}

func TestOrdersNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()
	user := primitive.NewObjectID()

	var ids []primitive.ObjectID
	for i := 0; i < 3; i++ {
		o := model.Order{User: user, Status: model.StatusPaymentDone}
		if err := s.Orders().Create(ctx, &o); err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, o.ID)
	}

	got, err := s.Orders().ListByUser(ctx, user)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d orders, want 3", len(got))
	}
	for i := range got {
		if got[i].ID != ids[len(ids)-1-i] {
			t.Fatalf("order %d out of sequence", i)
		}
	}
}

func TestFoodPatchOnlyTouchesProvidedFields(t *testing.T) {
	s := New()
	ctx := context.Background()

	foods, err := s.Foods().Insert(ctx, []model.Food{{
		Name:  "Burger",
		Desc:  "Juicy",
		Price: model.Price{Org: 100, MRP: 120, Off: 17},
	}})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	name := "Cheeseburger"
	patched, err := s.Foods().Patch(ctx, foods[0].ID, store.FoodUpdate{Name: &name})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if patched.Name != "Cheeseburger" || patched.Desc != "Juicy" || patched.Price.Org != 100 {
		t.Fatalf("patch touched unspecified fields: %+v", patched)
	}
}

func TestFoodListFilter(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Foods().Insert(ctx, []model.Food{
		{Name: "Burger", Desc: "Beef", Price: model.Price{Org: 100}, Category: []string{"Burgers"}, Ingredients: []string{"Beef"}},
		{Name: "Pizza", Desc: "Cheesy", Price: model.Price{Org: 400}, Category: []string{"Pizzas"}, Ingredients: []string{"Mozzarella"}},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	max := 200.0
	got, err := s.Foods().List(ctx, store.FoodFilter{MaxPrice: &max})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Burger" {
		t.Fatalf("price filter: got %+v", got)
	}

	got, err = s.Foods().List(ctx, store.FoodFilter{Search: "cheesy", Categories: []string{"Pizzas"}})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Pizza" {
		t.Fatalf("combined filter: got %+v", got)
	}
}
