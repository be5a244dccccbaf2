package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserProfile perfil visible de un usuario: uno por cuenta, creado por el propio
// usuario en su primer ingreso. El primer perfil del sistema queda como admin;
// la unicidad del admin la garantiza un índice parcial en la base.
type UserProfile struct {
	UserID     string
	Username   string          // nombre visible, único en el sistema
	IsAdmin    bool
	Deductions decimal.Decimal // deducción fija mensual, solo editable por admin
	CreatedAt  time.Time
}
