package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/peakstore/peakstore-be/internal/address"
	"github.com/peakstore/peakstore-be/internal/config"
	"github.com/peakstore/peakstore-be/internal/db"
	"github.com/peakstore/peakstore-be/internal/logger"
	"github.com/peakstore/peakstore-be/internal/order"
	"github.com/peakstore/peakstore-be/internal/post"
	"github.com/peakstore/peakstore-be/internal/product"
	"github.com/peakstore/peakstore-be/internal/server"
	"github.com/peakstore/peakstore-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	conn := db.InitDB(cfg)
	defer conn.Close()

	userSvc := user.NewService(user.NewRepository(conn))
	if err := userSvc.EnsureAdmin(context.Background()); err != nil {
		logger.L().Fatal("failed to seed admin user", zap.Error(err))
	}

	handlers := server.Handlers{
		User:    user.NewHandler(userSvc),
		Address: address.NewHandler(address.NewService(address.NewRepository(conn))),
		Order:   order.NewHandler(order.NewService(order.NewRepository(conn))),
		Product: product.NewHandler(product.NewService(product.NewRepository(conn))),
		Post:    post.NewHandler(post.NewService(post.NewRepository(conn))),
	}

	r := server.NewRouter(cfg, handlers)

	logger.L().Info("server starting", zap.String("port", cfg.AppPort))
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
