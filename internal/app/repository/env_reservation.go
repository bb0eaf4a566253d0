package repository

import (
	"errors"
	"time"

	"backend/internal/app/ds"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Методы для работы с бронями

// CountBlockingReservations считает активные брони помещения, у которых date_in
// попадает в окно [from, to].
func (r *Repository) CountBlockingReservations(environmentID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&ds.EnvReservation{}).
		Where("environment_id = ? AND status IN ? AND date_in BETWEEN ? AND ?",
			environmentID, ds.BlockingReservationStatuses, from, to).
		Count(&count).Error
	return count, err
}

// CreateReservation вставляет бронь в транзакции: строка помещения блокируется
// (SELECT ... FOR UPDATE), занятость суток перепроверяется под блокировкой.
// Без этого два конкурентных запроса могли бы оба пройти проверку доступности
// и оба записаться на один день.
func (r *Repository) CreateReservation(res *ds.EnvReservation) error {
	from, to := ds.DayWindow(res.DateIn)

	return r.db.Transaction(func(tx *gorm.DB) error {
		var env ds.Environment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", res.EnvironmentID).
			First(&env).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ds.ErrNotFound
			}
			return err
		}

		var count int64
		err = tx.Model(&ds.EnvReservation{}).
			Where("environment_id = ? AND status IN ? AND date_in BETWEEN ? AND ?",
				res.EnvironmentID, ds.BlockingReservationStatuses, from, to).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ds.ErrEnvironmentUnavailable
		}

		return tx.Create(res).Error
	})
}

func (r *Repository) GetReservations(status string) ([]ds.EnvReservation, error) {
	return r.findReservations(r.db, status)
}

func (r *Repository) GetReservationsByUser(userID uuid.UUID, status string) ([]ds.EnvReservation, error) {
	return r.findReservations(r.db.Where("user_id = ?", userID), status)
}

func (r *Repository) findReservations(query *gorm.DB, status string) ([]ds.EnvReservation, error) {
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var reservations []ds.EnvReservation
	err := query.
		Preload("User").
		Preload("Environment").
		Order("created_at ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *Repository) GetReservationByID(id uuid.UUID) (*ds.EnvReservation, error) {
	var res ds.EnvReservation
	err := r.db.Where("id = ?", id).
		Preload("User").
		Preload("Environment").
		First(&res).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ds.ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *Repository) UpdateReservation(id uuid.UUID, updates map[string]interface{}) (*ds.EnvReservation, error) {
	result := r.db.Model(&ds.EnvReservation{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ds.ErrNotFound
	}
	return r.GetReservationByID(id)
}

// DeleteReservation помечает бронь удалённой (soft delete)
func (r *Repository) DeleteReservation(id uuid.UUID) error {
	result := r.db.Delete(&ds.EnvReservation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ds.ErrNotFound
	}
	return nil
}

func (r *Repository) CountReservations(status string) (int64, error) {
	query := r.db.Model(&ds.EnvReservation{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}
