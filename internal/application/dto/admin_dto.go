package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdminUserResponse fila del panel de administración: perfil + email de la cuenta.
type AdminUserResponse struct {
	UserID     string          `json:"user_id"`
	Email      string          `json:"email"`
	Username   string          `json:"username"`
	IsAdmin    bool            `json:"is_admin"`
	Deductions decimal.Decimal `json:"deductions"`
	CreatedAt  time.Time       `json:"created_at"`
}

// UpdateUsernameRequest renombrar un usuario (solo admin).
type UpdateUsernameRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
}

// UpdateDeductionsRequest fijar las deducciones de un usuario (solo admin).
type UpdateDeductionsRequest struct {
	Deductions decimal.Decimal `json:"deductions"`
}

// ResetRequest frase tecleada para confirmar un reset irreversible.
type ResetRequest struct {
	Confirmation string `json:"confirmation" validate:"required"`
}

// ResetResponse conteos eliminados por la operación de reset.
type ResetResponse struct {
	EntriesDeleted int64 `json:"entries_deleted"`
	UsersDeleted   int64 `json:"users_deleted,omitempty"`
}

// AdminSummaryResponse resumen mensual por usuario (panel del admin).
type AdminSummaryResponse struct {
	Year       int                   `json:"year"`
	Month      int                   `json:"month"`
	UserTotals []UserMonthTotalEntry `json:"user_totals"`
}

// UserMonthTotalEntry totales de un usuario dentro del resumen mensual.
type UserMonthTotalEntry struct {
	UserID        string          `json:"user_id"`
	Username      string          `json:"username"`
	DaysWithEntry int             `json:"days_with_entry"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Advances      decimal.Decimal `json:"advances"`
}
