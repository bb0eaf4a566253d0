package service

import (
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/role"

	"github.com/google/uuid"
)

// EnvironmentRepository — операции хранилища, нужные сервису помещений
type EnvironmentRepository interface {
	CreateEnvironment(env *ds.Environment) error
	GetEnvironments(status string, includeDisabled bool) ([]ds.Environment, error)
	GetEnvironmentByID(id uuid.UUID) (*ds.Environment, error)
	GetEnvironmentReservations(id uuid.UUID) ([]ds.EnvReservation, error)
	UpdateEnvironment(id uuid.UUID, updates map[string]interface{}) (*ds.Environment, error)
	DeleteEnvironment(id uuid.UUID) error
	CountEnvironments(status string) (int64, error)
}

// ImageStorage — хранилище изображений помещений
type ImageStorage interface {
	UploadFile(fileData []byte, originalFilename string) (string, error)
	DeleteFile(filename string) error
}

// EnvironmentService — жизненный цикл помещения и его статусов
type EnvironmentService struct {
	repo    EnvironmentRepository
	storage ImageStorage
}

func NewEnvironmentService(repo EnvironmentRepository, storage ImageStorage) *EnvironmentService {
	return &EnvironmentService{
		repo:    repo,
		storage: storage,
	}
}

// Create создаёт помещение в статусе available, опционально с изображением
func (s *EnvironmentService) Create(req dto.CreateEnvironmentRequest, imageData []byte, imageName string) error {
	env := ds.Environment{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		Status:      ds.EnvironmentAvailable,
	}

	if len(imageData) > 0 {
		filename, err := s.storage.UploadFile(imageData, imageName)
		if err != nil {
			return err
		}
		env.ImageURL = &filename
	}

	return s.repo.CreateEnvironment(&env)
}

// FindAll возвращает помещения с фильтром по статусу. Отключённые помещения
// видят только администраторы, для остальных фильтр disabled игнорируется.
func (s *EnvironmentService) FindAll(actor Actor, status string) ([]ds.Environment, error) {
	if !ds.ValidEnvironmentStatus(status) {
		return nil, ds.ErrInvalidEnvironmentStatus
	}

	includeDisabled := actor.Role == role.Admin
	return s.repo.GetEnvironments(status, includeDisabled)
}

func (s *EnvironmentService) FindOne(id uuid.UUID) (*ds.Environment, error) {
	return s.repo.GetEnvironmentByID(id)
}

// FindEnvReservationsByID возвращает брони одного помещения
func (s *EnvironmentService) FindEnvReservationsByID(id uuid.UUID) ([]ds.EnvReservation, error) {
	return s.repo.GetEnvironmentReservations(id)
}

// Update применяет изменения к помещению. Смена статуса проходит проверку
// соответствия workflow: available -> pending -> locked -> available,
// disabled выставляется из любого состояния.
func (s *EnvironmentService) Update(id uuid.UUID, req dto.UpdateEnvironmentRequest, imageData []byte, imageName string) (*ds.Environment, error) {
	env, err := s.repo.GetEnvironmentByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.Status != "" {
		newStatus := ds.EnvironmentStatus(req.Status)
		if reason := ds.IsComplianceStatus(newStatus, env.Status); reason != "" {
			return nil, &ds.StatusTransitionError{Reason: reason}
		}
		updates["status"] = newStatus
	}

	if len(imageData) > 0 {
		filename, err := s.storage.UploadFile(imageData, imageName)
		if err != nil {
			return nil, err
		}
		if env.ImageURL != nil && *env.ImageURL != "" {
			// старое изображение больше не нужно
			_ = s.storage.DeleteFile(*env.ImageURL)
		}
		updates["image_url"] = filename
	}

	if len(updates) == 0 {
		return env, nil
	}
	return s.repo.UpdateEnvironment(id, updates)
}

// Remove помечает помещение удалённым
func (s *EnvironmentService) Remove(id uuid.UUID) error {
	if _, err := s.repo.GetEnvironmentByID(id); err != nil {
		return err
	}
	return s.repo.DeleteEnvironment(id)
}

func (s *EnvironmentService) Count(status string) (int64, error) {
	if !ds.ValidEnvironmentStatus(status) {
		return 0, ds.ErrInvalidEnvironmentStatus
	}
	return s.repo.CountEnvironments(status)
}
