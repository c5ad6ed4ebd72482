package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Anupamgithub3/Food-Delivery-site/internal/model"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/store"
)

// FoodInput is one product in an admin bulk insert.
type FoodInput struct {
	Name        string      `json:"name"`
	Desc        string      `json:"desc"`
	Img         string      `json:"img"`
	Price       model.Price `json:"price"`
	Category    []string    `json:"category"`
	Ingredients []string    `json:"ingredients"`
}

type CatalogService interface {
	AddProducts(ctx context.Context, in []FoodInput) ([]model.Food, error)
	List(ctx context.Context, f store.FoodFilter) ([]model.Food, error)
	Get(ctx context.Context, id primitive.ObjectID) (model.Food, error)
	Update(ctx context.Context, id primitive.ObjectID, upd store.FoodUpdate) (model.Food, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type catalogService struct {
	foods store.FoodStore
}

func NewCatalogService(foods store.FoodStore) CatalogService {
	return &catalogService{foods: foods}
}

func (s *catalogService) AddProducts(ctx context.Context, in []FoodInput) ([]model.Food, error) {
	if len(in) == 0 {
		return nil, BadRequest("Invalid request. Expected an array of foods.")
	}
	foods := make([]model.Food, 0, len(in))
	for _, fi := range in {
		foods = append(foods, model.Food{
			Name:        fi.Name,
			Desc:        fi.Desc,
			Img:         fi.Img,
			Price:       fi.Price,
			Category:    fi.Category,
			Ingredients: fi.Ingredients,
		})
	}
	return s.foods.Insert(ctx, foods)
}

func (s *catalogService) List(ctx context.Context, f store.FoodFilter) ([]model.Food, error) {
	foods, err := s.foods.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if foods == nil {
		foods = []model.Food{}
	}
	return foods, nil
}

func (s *catalogService) Get(ctx context.Context, id primitive.ObjectID) (model.Food, error) {
	f, err := s.foods.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return model.Food{}, NotFound("Food not found")
	}
	return f, err
}

func (s *catalogService) Update(ctx context.Context, id primitive.ObjectID, upd store.FoodUpdate) (model.Food, error) {
	f, err := s.foods.Patch(ctx, id, upd)
	if errors.Is(err, store.ErrNotFound) {
		return model.Food{}, NotFound("Food not found")
	}
	return f, err
}

func (s *catalogService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.foods.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return NotFound("Food not found")
	}
	return err
}
