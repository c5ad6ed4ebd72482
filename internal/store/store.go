package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Anupamgithub3/Food-Delivery-site/internal/model"
)

// ErrNotFound is returned by every store when the requested document does
// not exist. Services translate it into the API-level not-found error.
var ErrNotFound = errors.New("store: not found")

// FoodFilter is the composed catalog query. Each field is optional and
// toggles a conjunct independently: a zero field adds no constraint.
type FoodFilter struct {
	Search      string   // case-insensitive substring over name and desc
	Categories  []string // match any
	Ingredients []string // match any
	MinPrice    *float64 // on price.org, inclusive
	MaxPrice    *float64 // on price.org, inclusive
}

// FoodUpdate is a partial catalog update; nil fields are left untouched.
type FoodUpdate struct {
	Name        *string
	Desc        *string
	Img         *string
	Price       *model.Price
	Category    *[]string
	Ingredients *[]string
}

// UserStore persists account documents. Update replaces the whole document,
// matching the read-modify-write style the services use for the embedded
// cart and favourites arrays.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	Update(ctx context.Context, u *model.User) error
}

// FoodStore persists catalog documents.
type FoodStore interface {
	Insert(ctx context.Context, foods []model.Food) ([]model.Food, error)
	List(ctx context.Context, f FoodFilter) ([]model.Food, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (model.Food, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.Food, error)
	Patch(ctx context.Context, id primitive.ObjectID, upd FoodUpdate) (model.Food, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// OrderStore persists order documents. All listings are newest-first.
type OrderStore interface {
	Create(ctx context.Context, o *model.Order) error
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Order, error)
	// GetByIDs resolves a set of order ids, newest-first. Used by the
	// order-listing fallback that walks a user's denormalized order list.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (model.Order, error)
}

// Store bundles the three collections behind one handle.
type Store interface {
	Users() UserStore
	Foods() FoodStore
	Orders() OrderStore
}
