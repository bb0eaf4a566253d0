package handler

import (
	"net/http"

	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUsers получает список пользователей
// @Summary Список пользователей
// @Description Возвращает всех пользователей (только для администраторов)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/users [get]
func (h *APIHandler) GetUsers(c *gin.Context) {
	users, err := h.Users.FindAll()
	if err != nil {
		h.serviceError(c, err)
		return
	}

	response := dto.UserListResponse{
		Users: make([]dto.UserResponse, len(users)),
		Total: len(users),
	}
	for i, user := range users {
		response.Users[i] = toUserResponse(user)
	}

	c.JSON(http.StatusOK, response)
}

// GetUsersCount количество пользователей
// @Summary Количество пользователей
// @Description Возвращает количество пользователей (для панели администратора)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CountResponse
// @Router /api/users/count [get]
func (h *APIHandler) GetUsersCount(c *gin.Context) {
	count, err := h.Users.Count()
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Total: count})
}

// GetUser получает одного пользователя
// @Summary Пользователь по ID
// @Description Возвращает данные пользователя
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID пользователя (uuid)"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id} [get]
func (h *APIHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пользователя")
		return
	}

	user, err := h.Users.FindOne(id)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(*user))
}

// GetUserReservations брони одного пользователя
// @Summary Брони пользователя
// @Description Возвращает все брони указанного пользователя
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID пользователя (uuid)"
// @Success 200 {object} dto.ReservationListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id}/env-reservations [get]
func (h *APIHandler) GetUserReservations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пользователя")
		return
	}

	reservations, err := h.Users.FindEnvReservationsByID(id)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationListResponse(reservations))
}

// UpdateUser обновляет профиль пользователя
// @Summary Обновление профиля
// @Description Обновляет имя, пароль и аватар. Чужой профиль может менять только администратор
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID пользователя (uuid)"
// @Param full_name formData string false "Полное имя"
// @Param password formData string false "Новый пароль"
// @Param image formData file false "Аватар (png, jpg, jpeg, до 5 МБ)"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id} [put]
func (h *APIHandler) UpdateUser(c *gin.Context) {
	actor, err := h.getActorFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пользователя")
		return
	}

	var request dto.UpdateUserRequest
	if err := c.ShouldBind(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	imageData, imageName, err := readImageFile(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Users.Update(id, request, actor, imageData, imageName)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(*user))
}

// DeleteUser удаляет пользователя
// @Summary Удаление пользователя
// @Description Помечает пользователя удалённым (soft delete, только для администраторов)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID пользователя (uuid)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id} [delete]
func (h *APIHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID пользователя")
		return
	}

	if err := h.Users.Remove(id); err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "User deleted successfully", nil)
}
