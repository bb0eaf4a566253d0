package repository

import (
	"errors"

	"backend/internal/app/ds"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Методы для работы с помещениями

func (r *Repository) CreateEnvironment(env *ds.Environment) error {
	return r.db.Create(env).Error
}

// GetEnvironments возвращает помещения с фильтром по статусу.
// Для обычных пользователей (includeDisabled=false) отключённые помещения
// исключаются независимо от запрошенного фильтра.
func (r *Repository) GetEnvironments(status string, includeDisabled bool) ([]ds.Environment, error) {
	query := r.db.Model(&ds.Environment{}).Order("created_at ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if !includeDisabled {
		query = query.Where("status != ?", ds.EnvironmentDisabled)
	}

	var environments []ds.Environment
	err := query.Find(&environments).Error
	if err != nil {
		return nil, err
	}
	return environments, nil
}

func (r *Repository) GetEnvironmentByID(id uuid.UUID) (*ds.Environment, error) {
	var env ds.Environment
	err := r.db.Where("id = ?", id).First(&env).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ds.ErrNotFound
		}
		return nil, err
	}
	return &env, nil
}

// GetEnvironmentReservations возвращает все брони одного помещения
func (r *Repository) GetEnvironmentReservations(id uuid.UUID) ([]ds.EnvReservation, error) {
	if _, err := r.GetEnvironmentByID(id); err != nil {
		return nil, err
	}

	var reservations []ds.EnvReservation
	err := r.db.Where("environment_id = ?", id).
		Preload("User").
		Order("created_at ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *Repository) UpdateEnvironment(id uuid.UUID, updates map[string]interface{}) (*ds.Environment, error) {
	result := r.db.Model(&ds.Environment{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ds.ErrNotFound
	}
	return r.GetEnvironmentByID(id)
}

// DeleteEnvironment помечает помещение удалённым (soft delete)
func (r *Repository) DeleteEnvironment(id uuid.UUID) error {
	result := r.db.Delete(&ds.Environment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ds.ErrNotFound
	}
	return nil
}

func (r *Repository) CountEnvironments(status string) (int64, error) {
	query := r.db.Model(&ds.Environment{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}
