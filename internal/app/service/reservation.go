package service

import (
	"backend/internal/app/ds"
	"backend/internal/app/dto"

	"github.com/google/uuid"
)

// ReservationRepository — операции хранилища, нужные сервису броней
type ReservationRepository interface {
	ReservationCounter
	CreateReservation(res *ds.EnvReservation) error
	GetReservations(status string) ([]ds.EnvReservation, error)
	GetReservationsByUser(userID uuid.UUID, status string) ([]ds.EnvReservation, error)
	GetReservationByID(id uuid.UUID) (*ds.EnvReservation, error)
	UpdateReservation(id uuid.UUID, updates map[string]interface{}) (*ds.EnvReservation, error)
	DeleteReservation(id uuid.UUID) error
	CountReservations(status string) (int64, error)
}

// ReservationService — жизненный цикл брони помещения
type ReservationService struct {
	repo    ReservationRepository
	checker *AvailabilityChecker
}

func NewReservationService(repo ReservationRepository) *ReservationService {
	return &ReservationService{
		repo:    repo,
		checker: NewAvailabilityChecker(repo),
	}
}

// Create создаёт бронь от имени пользователя. Бронь получает статус pending.
// Перед записью проверяется, что сутки date_in свободны; хранилище повторяет
// проверку в транзакции, так что двойной записи не будет и при гонке.
func (s *ReservationService) Create(req dto.CreateReservationRequest, userID uuid.UUID) error {
	err := s.checker.CheckEnvironmentAvailability(req.EnvironmentID, req.DateIn)
	if err != nil {
		return err
	}

	res := ds.EnvReservation{
		Status:        ds.ReservationPending,
		UserID:        userID,
		EnvironmentID: req.EnvironmentID,
		DateIn:        req.DateIn,
		DateOut:       req.DateOut,
	}
	return s.repo.CreateReservation(&res)
}

// FindAll возвращает все брони, опционально отфильтрованные по статусу
func (s *ReservationService) FindAll(status string) ([]ds.EnvReservation, error) {
	if !ds.ValidReservationStatus(status) {
		return nil, ds.ErrInvalidReservationStatus
	}
	return s.repo.GetReservations(status)
}

// FindAllByUser возвращает брони одного пользователя
func (s *ReservationService) FindAllByUser(userID uuid.UUID, status string) ([]ds.EnvReservation, error) {
	if !ds.ValidReservationStatus(status) {
		return nil, ds.ErrInvalidReservationStatus
	}
	return s.repo.GetReservationsByUser(userID, status)
}

func (s *ReservationService) FindOne(id uuid.UUID) (*ds.EnvReservation, error) {
	return s.repo.GetReservationByID(id)
}

// Update меняет статус брони. Чужую бронь может менять только администратор.
func (s *ReservationService) Update(id uuid.UUID, req dto.UpdateReservationRequest, actor Actor) (*ds.EnvReservation, error) {
	res, err := s.repo.GetReservationByID(id)
	if err != nil {
		return nil, err
	}

	if err := CanMutate(actor, res.UserID); err != nil {
		return nil, err
	}

	return s.repo.UpdateReservation(id, map[string]interface{}{
		"status": ds.ReservationStatus(req.Status),
	})
}

// Remove помечает бронь удалённой. Чужую бронь может удалить только администратор.
func (s *ReservationService) Remove(id uuid.UUID, actor Actor) error {
	res, err := s.repo.GetReservationByID(id)
	if err != nil {
		return err
	}

	if err := CanMutate(actor, res.UserID); err != nil {
		return err
	}

	return s.repo.DeleteReservation(id)
}

func (s *ReservationService) Count(status string) (int64, error) {
	if !ds.ValidReservationStatus(status) {
		return 0, ds.ErrInvalidReservationStatus
	}
	return s.repo.CountReservations(status)
}
