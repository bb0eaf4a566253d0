package dto

import (
	"time"

	"github.com/google/uuid"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type CountResponse struct {
	Total int64 `json:"total"`
}

// ============ Помещения (Environments) ============

type EnvironmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Capacity    uint      `json:"capacity"`
	Status      string    `json:"status"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EnvironmentListResponse struct {
	Environments []EnvironmentResponse `json:"environments"`
	Total        int                   `json:"total"`
}

type CreateEnvironmentRequest struct {
	Name        string `form:"name" json:"name" binding:"required,max=100"`
	Description string `form:"description" json:"description"`
	Capacity    uint   `form:"capacity" json:"capacity" binding:"required,gt=0"`
}

type UpdateEnvironmentRequest struct {
	Name        string `form:"name" json:"name" binding:"omitempty,max=100"`
	Description string `form:"description" json:"description"`
	Capacity    *uint  `form:"capacity" json:"capacity" binding:"omitempty,gt=0"`
	Status      string `form:"status" json:"status" binding:"omitempty,oneof=available locked pending disabled"`
}

// ============ Брони (Env Reservations) ============

type ReservationResponse struct {
	ID            uuid.UUID            `json:"id"`
	Status        string               `json:"status"`
	UserID        uuid.UUID            `json:"user_id"`
	EnvironmentID uuid.UUID            `json:"environment_id"`
	DateIn        time.Time            `json:"date_in"`
	DateOut       time.Time            `json:"date_out"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	User          *UserResponse        `json:"user,omitempty"`
	Environment   *EnvironmentResponse `json:"environment,omitempty"`
}

type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

type CreateReservationRequest struct {
	EnvironmentID uuid.UUID `json:"environment_id" binding:"required"`
	DateIn        time.Time `json:"date_in" binding:"required"`
	DateOut       time.Time `json:"date_out" binding:"required,gtfield=DateIn"`
}

type UpdateReservationRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved not_approved cancelled"`
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Login    string    `json:"login"`
	FullName string    `json:"full_name"`
	Avatar   string    `json:"avatar,omitempty"`
	IsAdmin  bool      `json:"is_admin"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	IsAdmin  bool   `json:"is_admin"`
}

type UpdateUserRequest struct {
	FullName string `form:"full_name" json:"full_name"`
	Password string `form:"password" json:"password" binding:"omitempty,min=6"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
