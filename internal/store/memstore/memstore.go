// Package memstore is a map-backed implementation of the store interfaces.
// It backs the service and handler tests and the STORE_DRIVER=memory dev
// mode, so the server can run without a MongoDB instance.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Anupamgithub3/Food-Delivery-site/internal/model"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/store"
)

type Store struct {
	mu     sync.Mutex
	users  map[primitive.ObjectID]model.User
	foods  map[primitive.ObjectID]model.Food
	orders map[primitive.ObjectID]model.Order
	// insertion sequence per order, to keep newest-first listings stable
	// when createdAt timestamps collide
	orderSeq map[primitive.ObjectID]int
	nextSeq  int
}

func New() *Store {
	return &Store{
		users:    make(map[primitive.ObjectID]model.User),
		foods:    make(map[primitive.ObjectID]model.Food),
		orders:   make(map[primitive.ObjectID]model.Order),
		orderSeq: make(map[primitive.ObjectID]int),
	}
}

func (s *Store) Users() store.UserStore   { return (*userStore)(s) }
func (s *Store) Foods() store.FoodStore   { return (*foodStore)(s) }
func (s *Store) Orders() store.OrderStore { return (*orderStore)(s) }

// --- users ---

type userStore Store

func (s *userStore) Create(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ID] = cloneUser(*u)
	return nil
}

func (s *userStore) GetByID(_ context.Context, id primitive.ObjectID) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, store.ErrNotFound
	}
	return cloneUser(u), nil
}

func (s *userStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return model.User{}, store.ErrNotFound
}

func (s *userStore) Update(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return store.ErrNotFound
	}
	u.UpdatedAt = time.Now().UTC()
	s.users[u.ID] = cloneUser(*u)
	return nil
}

// --- foods ---

type foodStore Store

func (s *foodStore) Insert(_ context.Context, foods []model.Food) ([]model.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	out := make([]model.Food, 0, len(foods))
	for _, f := range foods {
		if f.ID.IsZero() {
			f.ID = primitive.NewObjectID()
		}
		f.CreatedAt = now
		f.UpdatedAt = now
		s.foods[f.ID] = f
		out = append(out, f)
	}
	return out, nil
}

func (s *foodStore) List(_ context.Context, filter store.FoodFilter) ([]model.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Food
	for _, f := range s.foods {
		if matches(f, filter) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out, nil
}

func matches(f model.Food, filter store.FoodFilter) bool {
	if len(filter.Categories) > 0 && !intersects(f.Category, filter.Categories) {
		return false
	}
	if len(filter.Ingredients) > 0 && !intersects(f.Ingredients, filter.Ingredients) {
		return false
	}
	if filter.MinPrice != nil && f.Price.Org < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && f.Price.Org > *filter.MaxPrice {
		return false
	}
	if filter.Search != "" {
		q := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(f.Name), q) &&
			!strings.Contains(strings.ToLower(f.Desc), q) {
			return false
		}
	}
	return true
}

func intersects(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func (s *foodStore) GetByID(_ context.Context, id primitive.ObjectID) (model.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.foods[id]
	if !ok {
		return model.Food{}, store.ErrNotFound
	}
	return f, nil
}

func (s *foodStore) GetByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[primitive.ObjectID]model.Food, len(ids))
	for _, id := range ids {
		if f, ok := s.foods[id]; ok {
			out[id] = f
		}
	}
	return out, nil
}

func (s *foodStore) Patch(_ context.Context, id primitive.ObjectID, upd store.FoodUpdate) (model.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.foods[id]
	if !ok {
		return model.Food{}, store.ErrNotFound
	}
	if upd.Name != nil {
		f.Name = *upd.Name
	}
	if upd.Desc != nil {
		f.Desc = *upd.Desc
	}
	if upd.Img != nil {
		f.Img = *upd.Img
	}
	if upd.Price != nil {
		f.Price = *upd.Price
	}
	if upd.Category != nil {
		f.Category = *upd.Category
	}
	if upd.Ingredients != nil {
		f.Ingredients = *upd.Ingredients
	}
	f.UpdatedAt = time.Now().UTC()
	s.foods[id] = f
	return f, nil
}

func (s *foodStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.foods[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.foods, id)
	return nil
}

// --- orders ---

type orderStore Store

func (s *orderStore) Create(_ context.Context, o *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	o.CreatedAt = time.Now().UTC()
	s.orders[o.ID] = cloneOrder(*o)
	s.nextSeq++
	s.orderSeq[o.ID] = s.nextSeq
	return nil
}

func (s *orderStore) ListByUser(_ context.Context, userID primitive.ObjectID) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Order
	for _, o := range s.orders {
		if o.User == userID {
			out = append(out, cloneOrder(o))
		}
	}
	s.sortNewestFirst(out)
	return out, nil
}

func (s *orderStore) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Order
	for _, id := range ids {
		if o, ok := s.orders[id]; ok {
			out = append(out, cloneOrder(o))
		}
	}
	s.sortNewestFirst(out)
	return out, nil
}

func (s *orderStore) ListAll(_ context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, cloneOrder(o))
	}
	s.sortNewestFirst(out)
	return out, nil
}

func (s *orderStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return model.Order{}, store.ErrNotFound
	}
	o.Status = status
	s.orders[id] = cloneOrder(o)
	return cloneOrder(o), nil
}

func (s *orderStore) sortNewestFirst(orders []model.Order) {
	sort.Slice(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return s.orderSeq[a.ID] > s.orderSeq[b.ID]
	})
}

// --- copies, so callers can't reach into the maps ---

func cloneUser(u model.User) model.User {
	u.Cart = append([]model.CartItem(nil), u.Cart...)
	u.Favourites = append([]primitive.ObjectID(nil), u.Favourites...)
	u.Orders = append([]primitive.ObjectID(nil), u.Orders...)
	return u
}

func cloneOrder(o model.Order) model.Order {
	o.Products = append([]model.OrderLine(nil), o.Products...)
	return o
}
