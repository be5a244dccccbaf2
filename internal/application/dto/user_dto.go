package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterRequest entrada para registro (auth): email + password.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de una cuenta (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileResponse salida de un perfil.
type ProfileResponse struct {
	UserID     string          `json:"user_id"`
	Username   string          `json:"username"`
	IsAdmin    bool            `json:"is_admin"`
	Deductions decimal.Decimal `json:"deductions"`
	CreatedAt  time.Time       `json:"created_at"`
}

// LoginResponse salida con token JWT; Profile es null hasta que el usuario lo cree.
type LoginResponse struct {
	Token   string           `json:"token"`
	User    UserResponse     `json:"user"`
	Profile *ProfileResponse `json:"profile"`
}

// MeResponse cuenta autenticada + perfil (null si aún no existe).
type MeResponse struct {
	User    UserResponse     `json:"user"`
	Profile *ProfileResponse `json:"profile"`
}

// CreateProfileRequest alta del perfil propio (una sola vez).
type CreateProfileRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
}

// CreateProfileResponse perfil creado + token reemitido con el rol definitivo.
type CreateProfileResponse struct {
	Profile ProfileResponse `json:"profile"`
	Token   string          `json:"token"`
}
