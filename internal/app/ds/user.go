package ds

import (
	"time"

	"backend/internal/app/role"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 1. Таблица пользователей (жители и администраторы кондоминиума)
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Login     string         `gorm:"type:varchar(100);unique;not null"`
	Password  string         `gorm:"type:varchar(255);not null"`
	FullName  string         `gorm:"type:varchar(100)"`
	Avatar    *string        `gorm:"type:varchar(255)"` // Nullable, имя файла в MinIO
	Role      role.Role      `gorm:"type:int;default:0;not null"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
