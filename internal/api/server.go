package api

import (
	"context"
	"fmt"

	"backend/internal/app/config"
	"backend/internal/app/dsn"
	"backend/internal/app/handler"
	"backend/internal/app/middleware"
	"backend/internal/app/redis"
	"backend/internal/app/repository"
	"backend/internal/app/service"
	"backend/internal/app/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StartServer собирает все зависимости и запускает HTTP сервер
func StartServer() error {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		return fmt.Errorf("repository error: %w", err)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis error: %w", err)
	}

	minioClient, err := storage.NewMinIOClient(
		cfg.Minio.Endpoint,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.Bucket,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		return fmt.Errorf("minio error: %w", err)
	}

	environments := service.NewEnvironmentService(repo, minioClient)
	reservations := service.NewReservationService(repo)
	users := service.NewUserService(repo, handler.GenerateHashString, minioClient)

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(environments, reservations, users, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	apiHandler.RegisterAPIRoutes(r, authMiddleware)

	serverAddress := fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)
	logrus.Infof("Starting server on %s", serverAddress)

	if err := r.Run(serverAddress); err != nil {
		return err
	}

	logrus.Info("Server down")
	return nil
}
