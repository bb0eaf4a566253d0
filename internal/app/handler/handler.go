package handler

import (
	"errors"
	"fmt"
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/role"
	"backend/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Environments *service.EnvironmentService
	Reservations *service.ReservationService
	Users        *service.UserService
	AuthHandler  *AuthHandler
}

func NewAPIHandler(environments *service.EnvironmentService, reservations *service.ReservationService, users *service.UserService, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Environments: environments,
		Reservations: reservations,
		Users:        users,
		AuthHandler:  authHandler,
	}
}

// Получение текущего пользователя из контекста
func (h *APIHandler) getActorFromContext(c *gin.Context) (service.Actor, error) {
	userID, exists := c.Get("userID")
	if !exists {
		logrus.Warn("userID not found in context")
		return service.Actor{}, fmt.Errorf("user not authenticated")
	}

	id, ok := userID.(uuid.UUID)
	if !ok {
		logrus.Errorf("getActorFromContext: invalid userID type: %T", userID)
		return service.Actor{}, fmt.Errorf("invalid user ID")
	}

	userRole, _ := c.Get("userRole")
	r, _ := userRole.(role.Role)

	return service.Actor{ID: id, Role: r}, nil
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// serviceError транслирует ошибку сервисного слоя в HTTP статус
func (h *APIHandler) serviceError(c *gin.Context, err error) {
	var transitionErr *ds.StatusTransitionError

	switch {
	case errors.Is(err, ds.ErrNotFound):
		h.errorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ds.ErrForbidden):
		h.errorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ds.ErrEnvironmentUnavailable):
		h.errorResponse(c, http.StatusConflict, err.Error())
	case errors.As(err, &transitionErr),
		errors.Is(err, ds.ErrInvalidEnvironmentStatus),
		errors.Is(err, ds.ErrInvalidReservationStatus):
		h.errorResponse(c, http.StatusBadRequest, err.Error())
	default:
		logrus.Error(err)
		h.errorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}

// ============ Преобразование в DTO ============

func toEnvironmentResponse(env ds.Environment) dto.EnvironmentResponse {
	imageURL := ""
	if env.ImageURL != nil {
		imageURL = *env.ImageURL
	}
	return dto.EnvironmentResponse{
		ID:          env.ID,
		Name:        env.Name,
		Description: env.Description,
		Capacity:    env.Capacity,
		Status:      string(env.Status),
		ImageURL:    imageURL,
		CreatedAt:   env.CreatedAt,
		UpdatedAt:   env.UpdatedAt,
	}
}

func toUserResponse(user ds.User) dto.UserResponse {
	avatar := ""
	if user.Avatar != nil {
		avatar = *user.Avatar
	}
	return dto.UserResponse{
		ID:       user.ID,
		Login:    user.Login,
		FullName: user.FullName,
		Avatar:   avatar,
		IsAdmin:  user.Role == role.Admin,
	}
}

func toReservationResponse(res ds.EnvReservation) dto.ReservationResponse {
	response := dto.ReservationResponse{
		ID:            res.ID,
		Status:        string(res.Status),
		UserID:        res.UserID,
		EnvironmentID: res.EnvironmentID,
		DateIn:        res.DateIn,
		DateOut:       res.DateOut,
		CreatedAt:     res.CreatedAt,
		UpdatedAt:     res.UpdatedAt,
	}
	if res.User != nil {
		user := toUserResponse(*res.User)
		response.User = &user
	}
	if res.Environment != nil {
		env := toEnvironmentResponse(*res.Environment)
		response.Environment = &env
	}
	return response
}
