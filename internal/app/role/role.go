package role

// Role — роль пользователя в системе
type Role int

const (
	User  Role = iota // обычный житель
	Admin             // администратор кондоминиума
)

func (r Role) String() string {
	switch r {
	case Admin:
		return "admin"
	default:
		return "user"
	}
}
