package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Anupamgithub3/Food-Delivery-site/internal/handlers"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/service"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/store"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/store/memstore"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/store/mongostore"
)

func NewServer(cfg Config) (*gin.Engine, func(), error) {
	if cfg.JWTSecret == "" {
		return nil, nil, errors.New("JWT_SECRET is required")
	}

	var (
		st      store.Store
		cleanup = func() {}
	)
	switch cfg.StoreDriver {
	case "memory":
		st = memstore.New()
	case "mongo":
		ms, closeStore, err := mongostore.Open(context.Background(), cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		st = ms
		cleanup = closeStore
	default:
		return nil, nil, errors.New("unknown STORE_DRIVER: " + cfg.StoreDriver)
	}

	return Router(cfg, st), cleanup, nil
}

// Router builds the gin engine over an already-opened store.
func Router(cfg Config, st store.Store) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(handlers.RequestID())

	auth := service.NewAuthService(st.Users(), []byte(cfg.JWTSecret))
	catalog := service.NewCatalogService(st.Foods())
	cart := service.NewCartService(st.Users(), st.Foods())
	favorites := service.NewFavoriteService(st.Users(), st.Foods())
	orders := service.NewOrderService(st.Users(), st.Foods(), st.Orders())

	authH := handlers.NewAuth(auth)
	foodH := handlers.NewFood(catalog)
	userH := handlers.NewUser(cart, favorites, orders)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	api := r.Group("/api")
	requireAuth := handlers.RequireAuth(auth)
	requireAdmin := handlers.RequireAdmin()

	user := api.Group("/user")
	{
		user.POST("/signup", authH.Signup)
		user.POST("/signin", authH.Signin)

		user.POST("/cart", requireAuth, userH.AddToCart)
		user.GET("/cart", requireAuth, userH.GetCart)
		user.PATCH("/cart", requireAuth, userH.RemoveFromCart)

		user.POST("/favorite", requireAuth, userH.AddFavorite)
		user.GET("/favorite", requireAuth, userH.GetFavorites)
		user.PATCH("/favorite", requireAuth, userH.RemoveFavorite)

		user.POST("/order", requireAuth, userH.PlaceOrder)
		user.GET("/order", requireAuth, userH.GetOrders)

		user.GET("/admin/orders", requireAuth, requireAdmin, userH.AdminOrders)
		user.PATCH("/admin/order/:orderId", requireAuth, requireAdmin, userH.UpdateOrderStatus)
	}

	food := api.Group("/food")
	{
		food.POST("/add", requireAuth, requireAdmin, foodH.Add)
		food.GET("", foodH.List)
		food.GET("/:id", foodH.Get)
		food.PATCH("/:id", requireAuth, requireAdmin, foodH.Update)
		food.DELETE("/:id", requireAuth, requireAdmin, foodH.Delete)
	}

	return r
}
