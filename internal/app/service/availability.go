package service

import (
	"time"

	"backend/internal/app/ds"

	"github.com/google/uuid"
)

// ReservationCounter — часть хранилища, нужная для проверки доступности
type ReservationCounter interface {
	CountBlockingReservations(environmentID uuid.UUID, from, to time.Time) (int64, error)
}

// AvailabilityChecker проверяет, свободно ли помещение на календарные сутки.
// Занятыми считаются сутки, в которые попадает date_in хотя бы одной брони
// со статусом pending или approved. Пересечение интервалов [date_in, date_out]
// не анализируется: бронь действует на весь день.
type AvailabilityChecker struct {
	reservations ReservationCounter
}

func NewAvailabilityChecker(reservations ReservationCounter) *AvailabilityChecker {
	return &AvailabilityChecker{reservations: reservations}
}

// CheckEnvironmentAvailability возвращает ds.ErrEnvironmentUnavailable, если
// на сутки dateIn уже есть блокирующая бронь этого помещения.
func (c *AvailabilityChecker) CheckEnvironmentAvailability(environmentID uuid.UUID, dateIn time.Time) error {
	from, to := ds.DayWindow(dateIn)

	count, err := c.reservations.CountBlockingReservations(environmentID, from, to)
	if err != nil {
		return err
	}
	if count > 0 {
		return ds.ErrEnvironmentUnavailable
	}
	return nil
}
