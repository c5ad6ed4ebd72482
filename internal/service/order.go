package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Anupamgithub3/Food-Delivery-site/internal/model"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/store"
)

// PlaceOrderInput carries the checkout submission. TotalAmount comes from
// the client and is stored as-is; the server does not price the lines.
type PlaceOrderInput struct {
	Products    []model.OrderLine
	Address     string
	TotalAmount float64
}

type OrderService interface {
	Place(ctx context.Context, userID primitive.ObjectID, in PlaceOrderInput) (model.OrderView, error)
	ListForUser(ctx context.Context, userID primitive.ObjectID) ([]model.OrderView, error)
	ListAll(ctx context.Context) ([]model.OrderView, error)
	UpdateStatus(ctx context.Context, orderID primitive.ObjectID, status string) (model.Order, error)
}

type orderService struct {
	users  store.UserStore
	foods  store.FoodStore
	orders store.OrderStore
}

func NewOrderService(users store.UserStore, foods store.FoodStore, orders store.OrderStore) OrderService {
	return &orderService{users: users, foods: foods, orders: orders}
}

// Place persists the order, then links it into the user document and clears
// the cart. The two writes are not transactional; a crash in between leaves
// an order whose back-reference or cart-clear is missing, which the listing
// fallback in ListForUser compensates for.
func (s *orderService) Place(ctx context.Context, userID primitive.ObjectID, in PlaceOrderInput) (model.OrderView, error) {
	u, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return model.OrderView{}, NotFound("User not found")
	}
	if err != nil {
		return model.OrderView{}, err
	}
	if len(in.Products) == 0 {
		return model.OrderView{}, BadRequest("order has no products")
	}

	o := model.Order{
		User:        u.ID,
		Products:    in.Products,
		TotalAmount: in.TotalAmount,
		Address:     in.Address,
		Status:      model.StatusPaymentDone,
	}
	if err := s.orders.Create(ctx, &o); err != nil {
		return model.OrderView{}, err
	}

	u.Orders = append(u.Orders, o.ID)
	u.Cart = []model.CartItem{}
	if err := s.users.Update(ctx, &u); err != nil {
		return model.OrderView{}, err
	}

	views, err := s.resolve(ctx, []model.Order{o}, nil)
	if err != nil {
		return model.OrderView{}, err
	}
	return views[0], nil
}

func (s *orderService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]model.OrderView, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Legacy documents may miss the user field; resolve the denormalized
	// order-reference list on the user before reporting an empty history.
	if len(orders) == 0 {
		u, err := s.users.GetByID(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("User not found")
		}
		if err != nil {
			return nil, err
		}
		if len(u.Orders) > 0 {
			orders, err = s.orders.GetByIDs(ctx, u.Orders)
			if err != nil {
				return nil, err
			}
		}
	}
	return s.resolve(ctx, orders, nil)
}

func (s *orderService) ListAll(ctx context.Context) ([]model.OrderView, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	refs := make(map[primitive.ObjectID]model.UserRef)
	for _, o := range orders {
		if _, ok := refs[o.User]; ok {
			continue
		}
		u, err := s.users.GetByID(ctx, o.User)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		refs[o.User] = model.UserRef{ID: o.User, Name: u.Name, Email: u.Email}
	}
	return s.resolve(ctx, orders, refs)
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID primitive.ObjectID, status string) (model.Order, error) {
	if !model.ValidStatus(status) {
		return model.Order{}, BadRequest("Invalid order status")
	}
	// No transition table: any known status overwrites the current one.
	o, err := s.orders.UpdateStatus(ctx, orderID, status)
	if errors.Is(err, store.ErrNotFound) {
		return model.Order{}, NotFound("Order not found")
	}
	return o, err
}

// resolve joins product documents into the order lines. When userRefs is
// non-nil the view embeds the trimmed user record (admin listing); otherwise
// the raw user id is passed through.
func (s *orderService) resolve(ctx context.Context, orders []model.Order, userRefs map[primitive.ObjectID]model.UserRef) ([]model.OrderView, error) {
	var ids []primitive.ObjectID
	seen := make(map[primitive.ObjectID]bool)
	for _, o := range orders {
		for _, line := range o.Products {
			if !seen[line.Product] {
				seen[line.Product] = true
				ids = append(ids, line.Product)
			}
		}
	}
	foods, err := s.foods.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]model.OrderView, 0, len(orders))
	for _, o := range orders {
		v := model.OrderView{
			ID:          o.ID,
			User:        o.User,
			TotalAmount: o.TotalAmount,
			Address:     o.Address,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt,
		}
		if userRefs != nil {
			v.User = userRefs[o.User]
		}
		v.Products = make([]model.ResolvedOrderLine, 0, len(o.Products))
		for _, line := range o.Products {
			rl := model.ResolvedOrderLine{Quantity: line.Quantity}
			if f, ok := foods[line.Product]; ok {
				rl.Product = &f
			}
			v.Products = append(v.Products, rl)
		}
		out = append(out, v)
	}
	return out, nil
}
