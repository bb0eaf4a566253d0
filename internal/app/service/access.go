package service

import (
	"backend/internal/app/ds"
	"backend/internal/app/role"

	"github.com/google/uuid"
)

// Actor — пользователь, от имени которого выполняется операция
type Actor struct {
	ID   uuid.UUID
	Role role.Role
}

// CanMutate разрешает изменение записи её владельцу и администратору.
// Общая проверка для броней и профилей пользователей.
func CanMutate(actor Actor, ownerID uuid.UUID) error {
	if actor.Role == role.User && actor.ID != ownerID {
		return ds.ErrForbidden
	}
	return nil
}
