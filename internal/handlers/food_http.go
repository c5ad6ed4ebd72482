package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Anupamgithub3/Food-Delivery-site/internal/model"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/service"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/store"
)

type Food struct {
	Svc service.CatalogService
}

func NewFood(svc service.CatalogService) *Food { return &Food{Svc: svc} }

func (h *Food) Add(c *gin.Context) {
	var req []service.FoodInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Expected an array of foods."})
		return
	}
	created, err := h.Svc.AddProducts(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Products added successfully", "createdfoods": created})
}

func (h *Food) List(c *gin.Context) {
	filter := store.FoodFilter{
		Search:      queryValue(c, "search"),
		Categories:  splitParam(queryValue(c, "categories")),
		Ingredients: splitParam(queryValue(c, "ingredients")),
		MinPrice:    parsePrice(queryValue(c, "minPrice")),
		MaxPrice:    parsePrice(queryValue(c, "maxPrice")),
	}
	foods, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (h *Food) Get(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	food, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (h *Food) Update(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req foodUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	food, err := h.Svc.Update(c.Request.Context(), id, req.toUpdate())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "updatedFood": food})
}

func (h *Food) Delete(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// foodUpdateReq keeps patch semantics: only fields present in the body are
// applied.
type foodUpdateReq struct {
	Name        *string   `json:"name"`
	Desc        *string   `json:"desc"`
	Img         *string   `json:"img"`
	Price       *priceReq `json:"price"`
	Category    *[]string `json:"category"`
	Ingredients *[]string `json:"ingredients"`
}

type priceReq struct {
	Org float64 `json:"org"`
	MRP float64 `json:"mrp"`
	Off float64 `json:"off"`
}

func (r foodUpdateReq) toUpdate() store.FoodUpdate {
	upd := store.FoodUpdate{
		Name:        r.Name,
		Desc:        r.Desc,
		Img:         r.Img,
		Category:    r.Category,
		Ingredients: r.Ingredients,
	}
	if r.Price != nil {
		upd.Price = &model.Price{Org: r.Price.Org, MRP: r.Price.MRP, Off: r.Price.Off}
	}
	return upd
}

// splitParam turns a comma-joined query parameter into its values. The web
// client sends the literal string "undefined" for unset filters; treat it
// as absent.
func splitParam(v string) []string {
	if v == "" || v == "undefined" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p != "" && p != "undefined" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parsePrice(v string) *float64 {
	if v == "" || v == "undefined" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func queryValue(c *gin.Context, key string) string {
	return strings.TrimSpace(c.Query(key))
}

// objectIDParam parses a path parameter as an ObjectID, answering 400 on a
// malformed id so it is distinguishable from a 404.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return primitive.NilObjectID, false
	}
	return id, true
}
