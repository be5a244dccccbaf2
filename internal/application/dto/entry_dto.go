package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpsertEntryRequest alta o edición del movimiento de (usuario, fecha).
// TargetUserID vacío = el propio usuario; otro valor requiere admin.
type UpsertEntryRequest struct {
	TargetUserID    string          `json:"target_user_id"`
	Date            string          `json:"date" validate:"required"`
	CashAmount      decimal.Decimal `json:"cash_amount"`
	NetworkAmount   decimal.Decimal `json:"network_amount"`
	PurchasesAmount decimal.Decimal `json:"purchases_amount"`
	AdvanceAmount   decimal.Decimal `json:"advance_amount"`
	Notes           string          `json:"notes" validate:"max=2000"`
}

// EntryResponse salida de un movimiento, con los campos derivados calculados.
type EntryResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Date            string          `json:"date"`
	CashAmount      decimal.Decimal `json:"cash_amount"`
	NetworkAmount   decimal.Decimal `json:"network_amount"`
	PurchasesAmount decimal.Decimal `json:"purchases_amount"`
	AdvanceAmount   decimal.Decimal `json:"advance_amount"`
	Notes           string          `json:"notes"`
	Total           decimal.Decimal `json:"total"`     // cash + network
	Remaining       decimal.Decimal `json:"remaining"` // total - purchases
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// MonthlyAdvancesResponse suma de anticipos de un usuario en un año-mes.
type MonthlyAdvancesResponse struct {
	UserID    string          `json:"user_id"`
	YearMonth string          `json:"year_month"` // AAAA-MM
	Advances  decimal.Decimal `json:"advances"`
}

// MonthSummaryResponse cabecera del mes: días registrados, totales y deducciones.
type MonthSummaryResponse struct {
	UserID        string          `json:"user_id"`
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	DaysWithEntry int             `json:"days_with_entry"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Advances      decimal.Decimal `json:"advances"`
	Deductions    decimal.Decimal `json:"deductions"`
}
