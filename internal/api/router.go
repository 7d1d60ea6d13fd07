package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/fruitmart/shop-api/docs"
	"github.com/fruitmart/shop-api/internal/api/handler"
	"github.com/fruitmart/shop-api/internal/api/middleware"
	"github.com/fruitmart/shop-api/internal/core/domain"
	"github.com/fruitmart/shop-api/internal/core/ports"
	"github.com/fruitmart/shop-api/internal/core/service"
	"github.com/fruitmart/shop-api/internal/infrastructure/config"
	mongostore "github.com/fruitmart/shop-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb is nil when carts live in process memory; it is only used for the
// readiness probe.
func NewRouter(db *mongo.Database, rdb *redis.Client, cartStore ports.CartStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fruitmart"))

	// --- Dependencies ---
	catalog := domain.DefaultCatalog()
	memberRepo := mongostore.NewMemberRepository(db)
	memberService := service.NewMemberService(memberRepo, cfg.JWTSecret, 24*time.Hour, log)
	cartService := service.NewCartService(cartStore, catalog, log)

	memberHandler := handler.NewMemberHandler(memberService, cartService)
	cartHandler := handler.NewCartHandler(cartService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", memberHandler.Register)
	e.POST("/auth/login", memberHandler.Login)

	// --- Shop routes (token + active session required) ---
	shop := e.Group("/v1", authMiddleware)
	shop.GET("/products", cartHandler.ListProducts)
	shop.GET("/cart", cartHandler.ViewCart)
	shop.PUT("/cart", cartHandler.UpdateCart)
	shop.POST("/cart/items/:product_id", cartHandler.AddItem)
	shop.GET("/checkout", cartHandler.Checkout)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
