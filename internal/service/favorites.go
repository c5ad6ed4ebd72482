package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Anupamgithub3/Food-Delivery-site/internal/model"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/store"
)

// FavoriteService keeps the favourites set on a user document. Add and
// Remove are both idempotent.
type FavoriteService interface {
	Add(ctx context.Context, userID, productID primitive.ObjectID) (model.User, error)
	Remove(ctx context.Context, userID, productID primitive.ObjectID) (model.User, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]model.Food, error)
}

type favoriteService struct {
	users store.UserStore
	foods store.FoodStore
}

func NewFavoriteService(users store.UserStore, foods store.FoodStore) FavoriteService {
	return &favoriteService{users: users, foods: foods}
}

func (s *favoriteService) Add(ctx context.Context, userID, productID primitive.ObjectID) (model.User, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return model.User{}, err
	}
	if !u.HasFavourite(productID) {
		u.Favourites = append(u.Favourites, productID)
		if err := s.users.Update(ctx, &u); err != nil {
			return model.User{}, err
		}
	}
	return u, nil
}

func (s *favoriteService) Remove(ctx context.Context, userID, productID primitive.ObjectID) (model.User, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return model.User{}, err
	}
	kept := u.Favourites[:0]
	for _, f := range u.Favourites {
		if f != productID {
			kept = append(kept, f)
		}
	}
	u.Favourites = kept
	if err := s.users.Update(ctx, &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (s *favoriteService) List(ctx context.Context, userID primitive.ObjectID) ([]model.Food, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	foods, err := s.foods.GetByIDs(ctx, u.Favourites)
	if err != nil {
		return nil, err
	}
	// Deleted products simply drop out of the favourites listing.
	out := make([]model.Food, 0, len(u.Favourites))
	for _, id := range u.Favourites {
		if f, ok := foods[id]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *favoriteService) getUser(ctx context.Context, userID primitive.ObjectID) (model.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return model.User{}, NotFound("User not found")
	}
	return u, err
}
