package repository

import (
	"context"
	"time"

	"github.com/jhoicas/CajaDiaria-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// UserMonthTotal total de un usuario en un mes (resumen del panel admin).
type UserMonthTotal struct {
	UserID        string
	Username      string
	DaysWithEntry int
	TotalAmount   decimal.Decimal // suma de cash + network del mes
	Advances      decimal.Decimal // suma de anticipos del mes
}

// EntryRepository define el puerto de persistencia para DailyEntry (DIP).
type EntryRepository interface {
	// Upsert inserta o actualiza el movimiento de (user, date) en una sola
	// sentencia; devuelve la fila resultante.
	Upsert(ctx context.Context, entry *entity.DailyEntry) (*entity.DailyEntry, error)
	GetByID(ctx context.Context, id string) (*entity.DailyEntry, error)
	// ListByUserAndRange lista movimientos con from <= fecha < to, orden ascendente.
	ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*entity.DailyEntry, error)
	// SumAdvances suma advance_amount del usuario en [from, to).
	SumAdvances(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error)
	// TotalsByUser agrupa totales por usuario en [from, to) para el resumen admin.
	TotalsByUser(ctx context.Context, from, to time.Time) ([]*UserMonthTotal, error)
	Delete(ctx context.Context, id string) error
	// DeleteAll vacía la tabla completa (reset de datos). Devuelve filas eliminadas.
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}
