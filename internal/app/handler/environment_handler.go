package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 5 МБ, как в требованиях к изображениям помещений
const maxImageSize = 5 << 20

var (
	errTooLarge     = errors.New("файл изображения больше 5 МБ")
	errBadImageType = errors.New("допустимые форматы изображения: png, jpg, jpeg")
)

func allowedImageExt(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// readImageFile читает multipart-файл "image" из запроса (если он есть)
func readImageFile(c *gin.Context) ([]byte, string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// файл не передан
		return nil, "", nil
	}
	if fileHeader.Size > maxImageSize {
		return nil, "", errTooLarge
	}
	if !allowedImageExt(fileHeader.Filename) {
		return nil, "", errBadImageType
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, fileHeader.Filename, nil
}

// GetEnvironments получает список помещений
// @Summary Список помещений
// @Description Возвращает помещения с фильтром по статусу. Отключённые помещения видят только администраторы
// @Tags Environments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Фильтр по статусу (available, locked, pending, disabled)"
// @Success 200 {object} dto.EnvironmentListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/environments [get]
func (h *APIHandler) GetEnvironments(c *gin.Context) {
	actor, err := h.getActorFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	environments, err := h.Environments.FindAll(actor, c.Query("status"))
	if err != nil {
		h.serviceError(c, err)
		return
	}

	response := dto.EnvironmentListResponse{
		Environments: make([]dto.EnvironmentResponse, len(environments)),
		Total:        len(environments),
	}
	for i, env := range environments {
		response.Environments[i] = toEnvironmentResponse(env)
	}

	c.JSON(http.StatusOK, response)
}

// GetEnvironmentsCount количество помещений
// @Summary Количество помещений
// @Description Возвращает количество помещений с фильтром по статусу (для панели администратора)
// @Tags Environments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Фильтр по статусу"
// @Success 200 {object} dto.CountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/environments/count [get]
func (h *APIHandler) GetEnvironmentsCount(c *gin.Context) {
	count, err := h.Environments.Count(c.Query("status"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Total: count})
}

// GetEnvironment получает одно помещение
// @Summary Помещение по ID
// @Description Возвращает детальную информацию о помещении
// @Tags Environments
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID помещения (uuid)"
// @Success 200 {object} dto.EnvironmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/environments/{id} [get]
func (h *APIHandler) GetEnvironment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID помещения")
		return
	}

	env, err := h.Environments.FindOne(id)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEnvironmentResponse(*env))
}

// GetEnvironmentReservations брони одного помещения
// @Summary Брони помещения
// @Description Возвращает все брони указанного помещения
// @Tags Environments
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID помещения (uuid)"
// @Success 200 {object} dto.ReservationListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/environments/{id}/env-reservations [get]
func (h *APIHandler) GetEnvironmentReservations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID помещения")
		return
	}

	reservations, err := h.Environments.FindEnvReservationsByID(id)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	response := dto.ReservationListResponse{
		Reservations: make([]dto.ReservationResponse, len(reservations)),
		Total:        len(reservations),
	}
	for i, res := range reservations {
		response.Reservations[i] = toReservationResponse(res)
	}

	c.JSON(http.StatusOK, response)
}

// CreateEnvironment создает новое помещение
// @Summary Создание помещения
// @Description Создает помещение в статусе available, опционально с изображением (multipart/form-data)
// @Tags Environments
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Название"
// @Param description formData string false "Описание"
// @Param capacity formData int true "Вместимость"
// @Param image formData file false "Изображение (png, jpg, jpeg, до 5 МБ)"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/environments [post]
func (h *APIHandler) CreateEnvironment(c *gin.Context) {
	var request dto.CreateEnvironmentRequest
	if err := c.ShouldBind(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	imageData, imageName, err := readImageFile(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Environments.Create(request, imageData, imageName); err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusCreated, "Environment created successfully", nil)
}

// UpdateEnvironment изменяет помещение
// @Summary Изменение помещения
// @Description Изменяет поля помещения. Смена статуса проверяется по workflow: available -> pending -> locked -> available
// @Tags Environments
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID помещения (uuid)"
// @Param name formData string false "Название"
// @Param description formData string false "Описание"
// @Param capacity formData int false "Вместимость"
// @Param status formData string false "Новый статус"
// @Param image formData file false "Изображение"
// @Success 200 {object} dto.EnvironmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/environments/{id} [put]
func (h *APIHandler) UpdateEnvironment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID помещения")
		return
	}

	var request dto.UpdateEnvironmentRequest
	if err := c.ShouldBind(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	imageData, imageName, err := readImageFile(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	env, err := h.Environments.Update(id, request, imageData, imageName)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEnvironmentResponse(*env))
}

// UploadEnvironmentImage загружает изображение помещения
// @Summary Загрузка изображения помещения
// @Description Загружает изображение в MinIO и привязывает его к помещению
// @Tags Environments
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID помещения (uuid)"
// @Param image formData file true "Изображение (png, jpg, jpeg, до 5 МБ)"
// @Success 200 {object} dto.EnvironmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/environments/{id}/image [post]
func (h *APIHandler) UploadEnvironmentImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID помещения")
		return
	}

	imageData, imageName, err := readImageFile(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if len(imageData) == 0 {
		h.errorResponse(c, http.StatusBadRequest, "файл изображения не передан")
		return
	}

	env, err := h.Environments.Update(id, dto.UpdateEnvironmentRequest{}, imageData, imageName)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEnvironmentResponse(*env))
}

// DeleteEnvironment удаляет помещение
// @Summary Удаление помещения
// @Description Помечает помещение удалённым (soft delete)
// @Tags Environments
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID помещения (uuid)"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/environments/{id} [delete]
func (h *APIHandler) DeleteEnvironment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID помещения")
		return
	}

	if err := h.Environments.Remove(id); err != nil {
		h.serviceError(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "Environment deleted successfully", nil)
}
