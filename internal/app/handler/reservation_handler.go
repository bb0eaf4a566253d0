package handler

import (
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func toReservationListResponse(reservations []ds.EnvReservation) dto.ReservationListResponse {
	response := dto.ReservationListResponse{
		Reservations: make([]dto.ReservationResponse, len(reservations)),
		Total:        len(reservations),
	}
	for i, res := range reservations {
		response.Reservations[i] = toReservationResponse(res)
	}
	return response
}

// CreateReservation создает бронь помещения
// @Summary Создание брони
// @Description Создает бронь текущего пользователя в статусе pending, если сутки date_in свободны
// @Tags Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateReservationRequest true "Данные брони"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Помещение занято на эти сутки"
// @Router /api/env-reservations [post]
func (h *APIHandler) CreateReservation(c *gin.Context) {
	actor, err := h.getActorFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	var request dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Reservations.Create(request, actor.ID); err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusCreated, "Reservation created successfully", nil)
}

// GetReservations получает список всех броней
// @Summary Список броней
// @Description Возвращает все брони с фильтром по статусу (только для администраторов)
// @Tags Reservations
// @Produce json
// @Security BearerAuth
// @Param status query string false "Фильтр по статусу (pending, approved, not_approved, cancelled)"
// @Success 200 {object} dto.ReservationListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/env-reservations [get]
func (h *APIHandler) GetReservations(c *gin.Context) {
	reservations, err := h.Reservations.FindAll(c.Query("status"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReservationListResponse(reservations))
}

// GetMyReservations получает брони текущего пользователя
// @Summary Мои брони
// @Description Возвращает брони текущего пользователя с фильтром по статусу
// @Tags Reservations
// @Produce json
// @Security BearerAuth
// @Param status query string false "Фильтр по статусу"
// @Success 200 {object} dto.ReservationListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/env-reservations/my [get]
func (h *APIHandler) GetMyReservations(c *gin.Context) {
	actor, err := h.getActorFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	reservations, err := h.Reservations.FindAllByUser(actor.ID, c.Query("status"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReservationListResponse(reservations))
}

// GetReservationsCount количество броней
// @Summary Количество броней
// @Description Возвращает количество броней с фильтром по статусу (для панели администратора)
// @Tags Reservations
// @Produce json
// @Security BearerAuth
// @Param status query string false "Фильтр по статусу"
// @Success 200 {object} dto.CountResponse
// @Router /api/env-reservations/count [get]
func (h *APIHandler) GetReservationsCount(c *gin.Context) {
	count, err := h.Reservations.Count(c.Query("status"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Total: count})
}

// GetReservation получает одну бронь
// @Summary Бронь по ID
// @Description Возвращает бронь со связанными пользователем и помещением
// @Tags Reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID брони (uuid)"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/env-reservations/{id} [get]
func (h *APIHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID брони")
		return
	}

	res, err := h.Reservations.FindOne(id)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponse(*res))
}

// UpdateReservation изменяет статус брони
// @Summary Изменение брони
// @Description Меняет статус брони. Чужую бронь может менять только администратор
// @Tags Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID брони (uuid)"
// @Param request body dto.UpdateReservationRequest true "Новый статус"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/env-reservations/{id} [put]
func (h *APIHandler) UpdateReservation(c *gin.Context) {
	actor, err := h.getActorFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID брони")
		return
	}

	var request dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.Reservations.Update(id, request, actor)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponse(*res))
}

// DeleteReservation удаляет бронь
// @Summary Удаление брони
// @Description Помечает бронь удалённой (soft delete). Чужую бронь может удалить только администратор
// @Tags Reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID брони (uuid)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/env-reservations/{id} [delete]
func (h *APIHandler) DeleteReservation(c *gin.Context) {
	actor, err := h.getActorFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID брони")
		return
	}

	if err := h.Reservations.Remove(id, actor); err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "Reservation deleted successfully", nil)
}
