package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Anupamgithub3/Food-Delivery-site/internal/model"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/store"
)

type CartService interface {
	// Add merges into an existing cart line for the product or appends a
	// new one. The updated user document is returned for the response body.
	Add(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (model.User, error)
	// Remove deletes the cart line outright when quantity <= 0; otherwise
	// it decrements and drops the line once it reaches zero or below.
	Remove(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (model.User, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]model.ResolvedCartItem, error)
}

type cartService struct {
	users store.UserStore
	foods store.FoodStore
}

func NewCartService(users store.UserStore, foods store.FoodStore) CartService {
	return &cartService{users: users, foods: foods}
}

func (s *cartService) Add(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (model.User, error) {
	if quantity <= 0 {
		return model.User{}, BadRequest("quantity must be greater than zero")
	}
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return model.User{}, err
	}

	if i := u.CartIndex(productID); i >= 0 {
		u.Cart[i].Quantity += quantity
	} else {
		u.Cart = append(u.Cart, model.CartItem{Product: productID, Quantity: quantity})
	}
	if err := s.users.Update(ctx, &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (s *cartService) Remove(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (model.User, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return model.User{}, err
	}

	i := u.CartIndex(productID)
	if i < 0 {
		return model.User{}, NotFound("Product not found in the user's cart")
	}
	if quantity > 0 {
		u.Cart[i].Quantity -= quantity
		if u.Cart[i].Quantity <= 0 {
			u.Cart = append(u.Cart[:i], u.Cart[i+1:]...)
		}
	} else {
		u.Cart = append(u.Cart[:i], u.Cart[i+1:]...)
	}

	if err := s.users.Update(ctx, &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (s *cartService) List(ctx context.Context, userID primitive.ObjectID) ([]model.ResolvedCartItem, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(u.Cart))
	for _, it := range u.Cart {
		ids = append(ids, it.Product)
	}
	foods, err := s.foods.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Lines whose product has been deleted resolve to a nil product; they
	// stay in the listing so the client can mark them as removed.
	out := make([]model.ResolvedCartItem, 0, len(u.Cart))
	for _, it := range u.Cart {
		item := model.ResolvedCartItem{Quantity: it.Quantity}
		if f, ok := foods[it.Product]; ok {
			item.Product = &f
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *cartService) getUser(ctx context.Context, userID primitive.ObjectID) (model.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return model.User{}, NotFound("User not found")
	}
	return u, err
}
