package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/taskman-backend/auth-service/config"
	"github.com/taskman-backend/auth-service/db"
	"github.com/taskman-backend/auth-service/internal/auth/handler"
	repo "github.com/taskman-backend/auth-service/internal/auth/repository/postgres"
	"github.com/taskman-backend/auth-service/internal/auth/service"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	dbPool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()

	userRepo := repo.NewPostgresUserRepository(dbPool)
	passwordService := service.NewPasswordService(cfg.BcryptCost)
	tokenService := service.NewTokenService(cfg.TokenSecret, cfg.TokenExpiryMin)
	authService := service.NewAuthService(userRepo, passwordService, tokenService, logger)
	userService := service.NewUserService(userRepo, passwordService, logger)
	adminService := service.NewAdminService(userRepo, logger)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(adminService)
	middleware := handler.NewMiddleware(tokenService, logger)
	auditLogger := handler.NewAuditLogger(logger)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, userHandler, adminHandler, middleware, auditLogger)

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
