package handler

import (
	"backend/internal/app/middleware"
	"backend/internal/app/role"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	// ============ Помещения (Environments) ============
	environments := api.Group("/environments")
	{
		// Для всех авторизованных пользователей (видимость disabled решает сервис)
		environments.GET("", authMiddleware.WithAuthCheck(role.User, role.Admin), h.GetEnvironments)
		environments.GET("/:id", authMiddleware.WithAuthCheck(role.User, role.Admin), h.GetEnvironment)

		// Только для администраторов
		environments.GET("/count", authMiddleware.WithAuthCheck(role.Admin), h.GetEnvironmentsCount)
		environments.GET("/:id/env-reservations", authMiddleware.WithAuthCheck(role.Admin), h.GetEnvironmentReservations)
		environments.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateEnvironment)
		environments.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateEnvironment)
		environments.POST("/:id/image", authMiddleware.WithAuthCheck(role.Admin), h.UploadEnvironmentImage)
		environments.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteEnvironment)
	}

	// ============ Брони (Env Reservations) ============
	reservations := api.Group("/env-reservations")
	{
		reservations.POST("", authMiddleware.WithAuthCheck(role.User, role.Admin), h.CreateReservation)
		reservations.GET("/my", authMiddleware.WithAuthCheck(role.User, role.Admin), h.GetMyReservations)
		reservations.GET("/:id", authMiddleware.WithAuthCheck(role.User, role.Admin), h.GetReservation)
		reservations.PUT("/:id", authMiddleware.WithAuthCheck(role.User, role.Admin), h.UpdateReservation)
		reservations.DELETE("/:id", authMiddleware.WithAuthCheck(role.User, role.Admin), h.DeleteReservation)

		// Только для администраторов
		reservations.GET("", authMiddleware.WithAuthCheck(role.Admin), h.GetReservations)
		reservations.GET("/count", authMiddleware.WithAuthCheck(role.Admin), h.GetReservationsCount)
	}

	// ============ Пользователи (Users) ============
	users := api.Group("/users")
	{
		users.GET("", authMiddleware.WithAuthCheck(role.Admin), h.GetUsers)
		users.GET("/count", authMiddleware.WithAuthCheck(role.Admin), h.GetUsersCount)
		users.GET("/:id", authMiddleware.WithAuthCheck(role.Admin), h.GetUser)
		users.GET("/:id/env-reservations", authMiddleware.WithAuthCheck(role.Admin), h.GetUserReservations)
		users.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteUser)

		// Свой профиль может менять сам пользователь
		users.PUT("/:id", authMiddleware.WithAuthCheck(role.User, role.Admin), h.UpdateUser)
	}

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser)
		auth.POST("/login", h.AuthHandler.LoginUser)

		// Защищенные эндпоинты
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.User, role.Admin), h.AuthHandler.LogoutUser)
		auth.GET("/profile", authMiddleware.WithAuthCheck(role.User, role.Admin), h.AuthHandler.GetUserProfile)
	}

	// Swagger документация
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
