package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de fecha de los movimientos diarios (clave por usuario y día).
const DateLayout = "2006-01-02"

// DailyEntry movimiento de caja de un usuario en un día calendario.
// Total y Remaining son derivados: se calculan en lectura, nunca se persisten.
type DailyEntry struct {
	ID              string
	UserID          string
	Date            string // AAAA-MM-DD, única por usuario
	CashAmount      decimal.Decimal
	NetworkAmount   decimal.Decimal // pagos con datáfono / tarjeta
	PurchasesAmount decimal.Decimal
	AdvanceAmount   decimal.Decimal // anticipo del día, se acumula por mes
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Total suma efectivo + datáfono.
func (e DailyEntry) Total() decimal.Decimal {
	return e.CashAmount.Add(e.NetworkAmount)
}

// Remaining devuelve Total menos las compras del día. Puede ser negativo.
func (e DailyEntry) Remaining() decimal.Decimal {
	return e.Total().Sub(e.PurchasesAmount)
}

// ParseDate valida que s sea una fecha calendario real en formato AAAA-MM-DD.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// MonthRange devuelve [primer día, primer día del mes siguiente) para un año y mes.
func MonthRange(year, month int) (from, to time.Time) {
	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 1, 0)
	return from, to
}
