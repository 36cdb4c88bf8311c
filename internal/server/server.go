package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/picksart/backend/internal/authctx"
	"github.com/picksart/backend/internal/config"
	"github.com/picksart/backend/internal/handler"
	appmw "github.com/picksart/backend/internal/middleware"
	"github.com/picksart/backend/internal/repository"
	"github.com/picksart/backend/internal/service"
	"github.com/picksart/backend/internal/token"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

func New(db *gorm.DB, cfg *config.Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
	}))
	e.Use(requestID)

	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	principalRepo := repository.NewPrincipalRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	artworkRepo := repository.NewArtworkRepository(db)

	authSvc := service.NewAuthService(principalRepo, tokens)
	cartSvc := service.NewCartService(orderRepo)
	orderSvc := service.NewOrderService(orderRepo)
	artworkSvc := service.NewArtworkService(artworkRepo)

	authHandler := handler.NewAuthHandler(authSvc)
	cartHandler := handler.NewCartHandler(cartSvc)
	orderHandler := handler.NewOrderHandler(orderSvc)
	shippingHandler := handler.NewShippingHandler(orderSvc)
	artworkHandler := handler.NewArtworkHandler(artworkSvc)

	authMw := appmw.NewAuthMiddleware(tokens, principalRepo)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	e.GET("/artworks", artworkHandler.List)
	e.GET("/artworks/:id", artworkHandler.Get)
	e.POST("/artworks", artworkHandler.Create, authMw.RequireAuth, authMw.RequireArtist)

	e.POST("/cart/sync", cartHandler.Sync, authMw.RequireAuth, authMw.RequireCustomer)
	e.GET("/cart", cartHandler.Get, authMw.RequireAuth, authMw.RequireCustomer)
	e.POST("/cart/checkout", orderHandler.Checkout, authMw.RequireAuth, authMw.RequireCustomer)
	e.GET("/orders", orderHandler.List, authMw.RequireAuth, authMw.RequireCustomer)

	e.POST("/shipping", shippingHandler.Add, authMw.RequireAuth, authMw.RequireCustomer)
	e.GET("/shipping/:orderId", shippingHandler.Get, authMw.RequireAuth)

	return &Server{e: e}
}

// requestID attaches a correlation id to the request context and echoes it
// back in the response headers.
func requestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rid := uuid.NewString()
		ctx := authctx.WithRID(c.Request().Context(), rid)
		c.SetRequest(c.Request().WithContext(ctx))
		c.Response().Header().Set("X-Request-Id", rid)
		return next(c)
	}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}
