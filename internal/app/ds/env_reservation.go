package ds

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Статусы брони
type ReservationStatus string

const (
	ReservationPending     ReservationStatus = "pending"
	ReservationApproved    ReservationStatus = "approved"
	ReservationNotApproved ReservationStatus = "not_approved"
	ReservationCancelled   ReservationStatus = "cancelled"
)

// BlockingReservationStatuses — статусы, при которых бронь занимает помещение
// и учитывается при проверке доступности.
var BlockingReservationStatuses = []ReservationStatus{
	ReservationPending,
	ReservationApproved,
}

// 3. Таблица броней помещений
type EnvReservation struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Status        ReservationStatus `gorm:"type:varchar(20);default:'pending';not null"`
	UserID        uuid.UUID         `gorm:"type:uuid;not null;index"`
	EnvironmentID uuid.UUID         `gorm:"type:uuid;not null;index"`
	DateIn        time.Time         `gorm:"not null"`
	DateOut       time.Time         `gorm:"not null"`
	CreatedAt     time.Time         `gorm:"not null"`
	UpdatedAt     time.Time         `gorm:"not null"`
	DeletedAt     gorm.DeletedAt    `gorm:"index"`

	User        *User        `gorm:"foreignKey:UserID"`
	Environment *Environment `gorm:"foreignKey:EnvironmentID"`
}

func (r *EnvReservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ValidReservationStatus проверяет, что строка является известным статусом брони.
// Пустая строка допустима (фильтр не задан).
func ValidReservationStatus(status string) bool {
	switch ReservationStatus(status) {
	case "", ReservationPending, ReservationApproved, ReservationNotApproved, ReservationCancelled:
		return true
	}
	return false
}

// DayWindow возвращает границы календарных суток (UTC), в которые попадает t:
// [00:00:00, 23:59:59]. Занятость помещения проверяется в пределах этих суток,
// а не по пересечению интервалов.
func DayWindow(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	from := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
	return from, to
}
