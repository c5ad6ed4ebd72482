package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Anupamgithub3/Food-Delivery-site/internal/model"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/service"
)

// User bundles the handlers behind /user that act on the authenticated
// account: cart, favourites and orders.
type User struct {
	Cart      service.CartService
	Favorites service.FavoriteService
	Orders    service.OrderService
}

func NewUser(cart service.CartService, favorites service.FavoriteService, orders service.OrderService) *User {
	return &User{Cart: cart, Favorites: favorites, Orders: orders}
}

// --- cart ---

type cartReq struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func (h *User) AddToCart(c *gin.Context) {
	var req cartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	productID, ok := parseObjectID(c, req.ProductID)
	if !ok {
		return
	}
	user, err := h.Cart.Add(c.Request.Context(), identityFrom(c).ID, productID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product added to cart successfully", "user": user})
}

func (h *User) RemoveFromCart(c *gin.Context) {
	var req cartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	productID, ok := parseObjectID(c, req.ProductID)
	if !ok {
		return
	}
	user, err := h.Cart.Remove(c.Request.Context(), identityFrom(c).ID, productID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product quantity updated in cart", "user": user})
}

func (h *User) GetCart(c *gin.Context) {
	items, err := h.Cart.List(c.Request.Context(), identityFrom(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// --- favourites ---

type favoriteReq struct {
	ProductID string `json:"productId" binding:"required"`
}

func (h *User) AddFavorite(c *gin.Context) {
	var req favoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	productID, ok := parseObjectID(c, req.ProductID)
	if !ok {
		return
	}
	user, err := h.Favorites.Add(c.Request.Context(), identityFrom(c).ID, productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product added to favorites successfully", "user": user})
}

func (h *User) RemoveFavorite(c *gin.Context) {
	var req favoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	productID, ok := parseObjectID(c, req.ProductID)
	if !ok {
		return
	}
	user, err := h.Favorites.Remove(c.Request.Context(), identityFrom(c).ID, productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed from favorites successfully", "user": user})
}

func (h *User) GetFavorites(c *gin.Context) {
	foods, err := h.Favorites.List(c.Request.Context(), identityFrom(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// --- orders ---

// productRef accepts either a bare id string or a product object carrying
// an _id, since the client submits whichever shape its cart held.
type productRef struct {
	ID string
}

func (p *productRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.ID = s
		return nil
	}
	var obj struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	p.ID = obj.ID
	return nil
}

type orderLineReq struct {
	Product  productRef `json:"product"`
	Quantity int        `json:"quantity"`
}

func (h *User) PlaceOrder(c *gin.Context) {
	var req struct {
		Products    []orderLineReq `json:"products" binding:"required"`
		Address     string         `json:"address"`
		TotalAmount float64        `json:"totalAmount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	lines := make([]model.OrderLine, 0, len(req.Products))
	for _, p := range req.Products {
		id, ok := parseObjectID(c, p.Product.ID)
		if !ok {
			return
		}
		lines = append(lines, model.OrderLine{Product: id, Quantity: p.Quantity})
	}

	order, err := h.Orders.Place(c.Request.Context(), identityFrom(c).ID, service.PlaceOrderInput{
		Products:    lines,
		Address:     req.Address,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

func (h *User) GetOrders(c *gin.Context) {
	orders, err := h.Orders.ListForUser(c.Request.Context(), identityFrom(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if orders == nil {
		orders = []model.OrderView{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// --- admin ---

func (h *User) AdminOrders(c *gin.Context) {
	orders, err := h.Orders.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if orders == nil {
		orders = []model.OrderView{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *User) UpdateOrderStatus(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	order, err := h.Orders.UpdateStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "updatedOrder": order})
}

// parseObjectID parses an id from a request body, answering 400 on a
// malformed value.
func parseObjectID(c *gin.Context, hex string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return primitive.NilObjectID, false
	}
	return id, true
}
