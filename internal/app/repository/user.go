package repository

import (
	"errors"

	"backend/internal/app/ds"
	"backend/internal/app/role"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Методы для работы с пользователями

func (r *Repository) CreateUser(login, hashedPassword, fullName string, userRole role.Role) (*ds.User, error) {
	user := ds.User{
		Login:    login,
		Password: hashedPassword,
		FullName: fullName,
		Role:     userRole,
	}

	err := r.db.Create(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UserExistsByLogin(login string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Where("login = ?", login).Count(&count).Error
	return count > 0, err
}

func (r *Repository) GetUserByLogin(login string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("login = ?", login).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ds.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByID(id uuid.UUID) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ds.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUsers() ([]ds.User, error) {
	var users []ds.User
	err := r.db.Order("created_at ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *Repository) UpdateUser(id uuid.UUID, updates map[string]interface{}) (*ds.User, error) {
	result := r.db.Model(&ds.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ds.ErrNotFound
	}
	return r.GetUserByID(id)
}

// DeleteUser помечает пользователя удалённым (soft delete)
func (r *Repository) DeleteUser(id uuid.UUID) error {
	result := r.db.Delete(&ds.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ds.ErrNotFound
	}
	return nil
}

func (r *Repository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Count(&count).Error
	return count, err
}
