package ds

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Статусы помещений (общих зон кондоминиума)
type EnvironmentStatus string

const (
	EnvironmentAvailable EnvironmentStatus = "available"
	EnvironmentLocked    EnvironmentStatus = "locked"
	EnvironmentPending   EnvironmentStatus = "pending"
	EnvironmentDisabled  EnvironmentStatus = "disabled"
)

// 2. Таблица помещений (залы, спортзал, бассейн и т.д.)
type Environment struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Name        string            `gorm:"type:varchar(100);not null"`
	Description string            `gorm:"type:text"`
	Capacity    uint              `gorm:"type:int;default:0;not null"`
	Status      EnvironmentStatus `gorm:"type:varchar(20);default:'available';not null"`
	ImageURL    *string           `gorm:"type:varchar(255)"` // Nullable, имя файла в MinIO
	CreatedAt   time.Time         `gorm:"not null"`
	UpdatedAt   time.Time         `gorm:"not null"`
	DeletedAt   gorm.DeletedAt    `gorm:"index"`
}

func (e *Environment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// ValidEnvironmentStatus проверяет, что строка является известным статусом помещения.
// Пустая строка допустима (фильтр не задан).
func ValidEnvironmentStatus(status string) bool {
	switch EnvironmentStatus(status) {
	case "", EnvironmentAvailable, EnvironmentLocked, EnvironmentPending, EnvironmentDisabled:
		return true
	}
	return false
}

// IsComplianceStatus валидирует переход статуса помещения.
// Возвращает пустую строку, если переход допустим, иначе текст причины отказа.
// Тексты причин являются частью контракта API и не должны меняться.
func IsComplianceStatus(newStatus, currentStatus EnvironmentStatus) string {
	switch newStatus {
	case EnvironmentPending:
		if currentStatus == EnvironmentLocked || currentStatus == EnvironmentPending {
			return "environment is not available to request"
		}
	case EnvironmentLocked:
		if currentStatus != EnvironmentPending {
			return "environment is not ready to approve"
		}
	case EnvironmentAvailable:
		if currentStatus != EnvironmentLocked && currentStatus != EnvironmentPending {
			return "environment is not ready to release"
		}
	}
	// disabled администратор может выставить из любого состояния
	return ""
}
