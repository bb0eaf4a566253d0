package service

import (
	"backend/internal/app/ds"
	"backend/internal/app/dto"

	"github.com/google/uuid"
)

// UserRepository — операции хранилища, нужные сервису пользователей
type UserRepository interface {
	GetUsers() ([]ds.User, error)
	GetUserByID(id uuid.UUID) (*ds.User, error)
	GetReservationsByUser(userID uuid.UUID, status string) ([]ds.EnvReservation, error)
	UpdateUser(id uuid.UUID, updates map[string]interface{}) (*ds.User, error)
	DeleteUser(id uuid.UUID) error
	CountUsers() (int64, error)
}

// PasswordHasher — хеширование пароля при обновлении профиля
type PasswordHasher func(password string) string

// UserService — управление учётными записями жителей
type UserService struct {
	repo   UserRepository
	hash   PasswordHasher
	avatar ImageStorage
}

func NewUserService(repo UserRepository, hash PasswordHasher, avatar ImageStorage) *UserService {
	return &UserService{
		repo:   repo,
		hash:   hash,
		avatar: avatar,
	}
}

func (s *UserService) FindAll() ([]ds.User, error) {
	return s.repo.GetUsers()
}

func (s *UserService) FindOne(id uuid.UUID) (*ds.User, error) {
	return s.repo.GetUserByID(id)
}

// FindEnvReservationsByID возвращает брони одного пользователя
func (s *UserService) FindEnvReservationsByID(id uuid.UUID) ([]ds.EnvReservation, error) {
	if _, err := s.repo.GetUserByID(id); err != nil {
		return nil, err
	}
	return s.repo.GetReservationsByUser(id, "")
}

// Update обновляет профиль. Чужой профиль может менять только администратор.
func (s *UserService) Update(id uuid.UUID, req dto.UpdateUserRequest, actor Actor, imageData []byte, imageName string) (*ds.User, error) {
	user, err := s.repo.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if err := CanMutate(actor, user.ID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.FullName != "" {
		updates["full_name"] = req.FullName
	}
	if req.Password != "" {
		updates["password"] = s.hash(req.Password)
	}

	if len(imageData) > 0 {
		filename, err := s.avatar.UploadFile(imageData, imageName)
		if err != nil {
			return nil, err
		}
		if user.Avatar != nil && *user.Avatar != "" {
			_ = s.avatar.DeleteFile(*user.Avatar)
		}
		updates["avatar"] = filename
	}

	if len(updates) == 0 {
		return user, nil
	}
	return s.repo.UpdateUser(id, updates)
}

// Remove помечает пользователя удалённым
func (s *UserService) Remove(id uuid.UUID) error {
	if _, err := s.repo.GetUserByID(id); err != nil {
		return err
	}
	return s.repo.DeleteUser(id)
}

func (s *UserService) Count() (int64, error) {
	return s.repo.CountUsers()
}
