package entity

import "time"

// Estados válidos para User.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User representa una cuenta de acceso (credenciales). El nombre visible,
// el flag de admin y las deducciones viven en UserProfile.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
