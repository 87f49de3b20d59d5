package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"precrastine-se/configs"
	v1 "precrastine-se/internal/api/v1"
	"precrastine-se/internal/api/v1/handlers"
	"precrastine-se/internal/middleware"
	"precrastine-se/internal/repository"
	"precrastine-se/pkg/database"
	"precrastine-se/pkg/logger"
)

func main() {
	logger.InitLoggers()
	defer logger.SyncLoggers()
	logger.SystemLogger.Info("Starting application", zap.String("time", time.Now().Format(time.RFC3339)))

	cfg := configs.LoadConfig()

	db := database.ConnectDB(cfg)
	defer db.Close()
	logger.SystemLogger.Info("Database connected")

	repository.CreateTableIfNotExists(db)
	if err := repository.SeedDemoData(context.Background(), db); err != nil {
		logger.ErrorLogger.Error("Demo seed failed", zap.Error(err))
	} else {
		logger.SystemLogger.Info("Demo data ready", zap.String("email", repository.DemoEmail))
	}

	// Provisioned for clients that expect it; photos themselves are stored
	// inline in the users table.
	if err := os.MkdirAll(cfg.UploadFolder, 0o755); err != nil {
		logger.ErrorLogger.Error("Cannot create upload folder", zap.Error(err))
	}

	redisClient := database.ConnectRedis(cfg)
	if redisClient != nil {
		defer redisClient.Close()
		logger.SystemLogger.Info("Redis connected", zap.String("addr", cfg.RedisAddr))
	}

	h := handlers.New(
		repository.NewPostgresUserRepository(db),
		repository.NewPostgresTaskRepository(db),
		repository.NewPostgresLifeAreaRepository(db),
		[]byte(cfg.JWTSecret),
		configs.TokenValidity,
		redisClient,
	)

	app := fiber.New(fiber.Config{
		BodyLimit: cfg.MaxContentLength,
	})

	app.Use(middleware.ErrorHandler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	v1.RegisterRoutes(app, h)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	logger.SystemLogger.Info("Application ready", zap.String("addr", addr), zap.Bool("debug", cfg.Debug))
	if err := app.Listen(addr); err != nil {
		logger.ErrorLogger.Error("Application failed to start", zap.Error(err))
	}
}
