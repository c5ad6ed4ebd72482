package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles stored on a user document. There is no hierarchy: admin routes
// require an exact match on RoleAdmin.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Order statuses. New orders always start in StatusPaymentDone; admins may
// overwrite the status with any of the four values, current state regardless.
const (
	StatusPaymentDone = "Payment Done"
	StatusDelivering  = "Delivering"
	StatusDelivered   = "Delivered"
	StatusCancelled   = "Cancelled"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPaymentDone, StatusDelivering, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Price carries the sticker price, the list price and the discount percent.
type Price struct {
	Org float64 `bson:"org" json:"org"`
	MRP float64 `bson:"mrp" json:"mrp"`
	Off float64 `bson:"off" json:"off"`
}

// Food is a catalog item. Category and ingredient tags drive the search
// filters; everything else is display data.
type Food struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Desc        string             `bson:"desc" json:"desc"`
	Img         string             `bson:"img,omitempty" json:"img,omitempty"`
	Price       Price              `bson:"price" json:"price"`
	Category    []string           `bson:"category" json:"category"`
	Ingredients []string           `bson:"ingredients" json:"ingredients"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CartItem is one line of a user's embedded cart: a product reference and a
// quantity. The cart holds at most one item per product.
type CartItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// User is an account document. Cart and favourites are embedded; Orders is a
// denormalized list of order ids kept alongside the authoritative `user`
// field on the order documents themselves.
type User struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name       string               `bson:"name" json:"name"`
	Email      string               `bson:"email" json:"email"`
	Password   string               `bson:"password" json:"-"`
	Img        string               `bson:"img,omitempty" json:"img,omitempty"`
	Role       string               `bson:"role" json:"role"`
	Cart       []CartItem           `bson:"cart" json:"cart"`
	Favourites []primitive.ObjectID `bson:"favourites" json:"favourites"`
	Orders     []primitive.ObjectID `bson:"orders" json:"orders"`
	CreatedAt  time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// HasFavourite reports whether the product is already in the favourites set.
func (u *User) HasFavourite(productID primitive.ObjectID) bool {
	for _, f := range u.Favourites {
		if f == productID {
			return true
		}
	}
	return false
}

// CartIndex returns the position of the product in the cart, or -1.
func (u *User) CartIndex(productID primitive.ObjectID) int {
	for i, it := range u.Cart {
		if it.Product == productID {
			return i
		}
	}
	return -1
}

// OrderLine is one line of an order: product reference plus quantity. Orders
// capture references only, not price snapshots; products are resolved against
// the catalog at read time.
type OrderLine struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Order is immutable once placed except for its status. The total is the
// amount the client submitted at checkout; the server does not recompute it.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	Products    []OrderLine        `bson:"products" json:"products"`
	TotalAmount float64            `bson:"total_amount" json:"total_amount"`
	Address     string             `bson:"address" json:"address"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// ResolvedCartItem is a cart line with its product document joined in.
// Product is nil when the referenced item has since been deleted from the
// catalog; the client renders such lines as removed, so they must not be
// dropped from the response.
type ResolvedCartItem struct {
	Product  *Food `json:"product"`
	Quantity int   `json:"quantity"`
}

// ResolvedOrderLine mirrors ResolvedCartItem for order lines.
type ResolvedOrderLine struct {
	Product  *Food `json:"product"`
	Quantity int   `json:"quantity"`
}

// UserRef is the trimmed user shape embedded in admin order views.
type UserRef struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

// OrderView is the read shape of an order. For a customer's own listing User
// holds the raw ObjectID; for the admin listing it holds a UserRef with name
// and email resolved.
type OrderView struct {
	ID          primitive.ObjectID  `json:"_id"`
	User        any                 `json:"user"`
	Products    []ResolvedOrderLine `json:"products"`
	TotalAmount float64             `json:"total_amount"`
	Address     string              `json:"address"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
}
