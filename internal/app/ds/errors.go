package ds

import "errors"

// Ошибки доменного слоя. Обработчики транслируют их в HTTP статусы:
// ErrNotFound -> 404, ErrForbidden -> 403, ErrEnvironmentUnavailable -> 409,
// остальные -> 400.
var (
	ErrNotFound                 = errors.New("record not found")
	ErrForbidden                = errors.New("forbidden")
	ErrEnvironmentUnavailable   = errors.New("Environment unavailable")
	ErrInvalidEnvironmentStatus = errors.New("invalid environments status")
	ErrInvalidReservationStatus = errors.New("invalid reservations status")
)

// StatusTransitionError — недопустимый переход статуса помещения.
// Reason уходит клиенту как есть.
type StatusTransitionError struct {
	Reason string
}

func (e *StatusTransitionError) Error() string {
	return e.Reason
}
