package server

import (
	"github.com/gin-gonic/gin"

	"github.com/peakstore/peakstore-be/internal/address"
	"github.com/peakstore/peakstore-be/internal/config"
	"github.com/peakstore/peakstore-be/internal/logger"
	"github.com/peakstore/peakstore-be/internal/middleware"
	"github.com/peakstore/peakstore-be/internal/order"
	"github.com/peakstore/peakstore-be/internal/post"
	"github.com/peakstore/peakstore-be/internal/product"
	"github.com/peakstore/peakstore-be/internal/user"
)

// Handlers bundles the route registrars the router mounts under /api.
type Handlers struct {
	User    *user.Handler
	Address *address.Handler
	Order   *order.Handler
	Product *product.Handler
	Post    *post.Handler
}

// NewRouter assembles the gin engine with the shared middleware chain and
// the per-domain route groups.
func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.LoggingMiddleware())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(middleware.AuthMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	h.User.RegisterRoutes(api.Group("/auth"))
	h.Address.RegisterRoutes(api.Group("/addresses"))
	h.Order.RegisterRoutes(api.Group("/orders"))
	h.Product.RegisterRoutes(api.Group("/products"))
	h.Post.RegisterRoutes(api.Group("/posts"))

	return r
}
