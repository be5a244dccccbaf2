package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/entity"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.EntryRepository = (*EntryRepo)(nil)

// EntryRepo implementación del puerto EntryRepository sobre PostgreSQL.
type EntryRepo struct {
	db Querier
}

// NewEntryRepository construye el adaptador de persistencia para movimientos diarios.
func NewEntryRepository(db Querier) *EntryRepo {
	return &EntryRepo{db: db}
}

const entryColumns = `
	id, user_id, to_char(entry_date, 'YYYY-MM-DD'),
	cash_amount, network_amount, purchases_amount, advance_amount,
	notes, created_at, updated_at`

// Upsert inserta o actualiza el movimiento de (user_id, entry_date) en una sola
// sentencia ON CONFLICT: atómico por documento, idempotente, último write gana.
// En actualización se conservan id y created_at originales.
func (r *EntryRepo) Upsert(ctx context.Context, e *entity.DailyEntry) (*entity.DailyEntry, error) {
	query := `
		INSERT INTO daily_entries
			(id, user_id, entry_date, cash_amount, network_amount, purchases_amount, advance_amount, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, entry_date) DO UPDATE SET
			cash_amount      = EXCLUDED.cash_amount,
			network_amount   = EXCLUDED.network_amount,
			purchases_amount = EXCLUDED.purchases_amount,
			advance_amount   = EXCLUDED.advance_amount,
			notes            = EXCLUDED.notes,
			updated_at       = EXCLUDED.updated_at
		RETURNING ` + entryColumns
	row := r.db.QueryRow(ctx, query,
		e.ID, e.UserID, e.Date,
		e.CashAmount, e.NetworkAmount, e.PurchasesAmount, e.AdvanceAmount,
		e.Notes, e.CreatedAt, e.UpdatedAt,
	)
	saved, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("upsert entry: %w", err)
	}
	return saved, nil
}

// GetByID obtiene un movimiento por ID.
func (r *EntryRepo) GetByID(ctx context.Context, id string) (*entity.DailyEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM daily_entries WHERE id = $1`
	e, err := scanEntry(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return e, nil
}

// ListByUserAndRange lista los movimientos de un usuario con from <= fecha < to.
func (r *EntryRepo) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*entity.DailyEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM daily_entries
		WHERE user_id = $1 AND entry_date >= $2 AND entry_date < $3
		ORDER BY entry_date ASC`
	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.DailyEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// SumAdvances suma advance_amount del usuario en [from, to).
func (r *EntryRepo) SumAdvances(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(advance_amount), 0)
		FROM daily_entries
		WHERE user_id = $1 AND entry_date >= $2 AND entry_date < $3`
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, userID, from, to).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum advances: %w", err)
	}
	return sum, nil
}

// TotalsByUser agrupa días registrados, total (cash+network) y anticipos por
// usuario en [from, to), para el resumen mensual del admin.
func (r *EntryRepo) TotalsByUser(ctx context.Context, from, to time.Time) ([]*repository.UserMonthTotal, error) {
	query := `
		SELECT e.user_id, p.username, COUNT(*),
		       COALESCE(SUM(e.cash_amount + e.network_amount), 0),
		       COALESCE(SUM(e.advance_amount), 0)
		FROM daily_entries e
		JOIN user_profiles p ON p.user_id = e.user_id
		WHERE e.entry_date >= $1 AND e.entry_date < $2
		GROUP BY e.user_id, p.username
		ORDER BY p.username ASC`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("totals by user: %w", err)
	}
	defer rows.Close()
	var list []*repository.UserMonthTotal
	for rows.Next() {
		var t repository.UserMonthTotal
		if err := rows.Scan(&t.UserID, &t.Username, &t.DaysWithEntry, &t.TotalAmount, &t.Advances); err != nil {
			return nil, fmt.Errorf("scan total: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina un movimiento por ID.
func (r *EntryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM daily_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// DeleteAll vacía la tabla completa (reset de datos). Devuelve filas eliminadas.
func (r *EntryRepo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM daily_entries`)
	if err != nil {
		return 0, fmt.Errorf("delete entries: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Count cantidad de movimientos existentes.
func (r *EntryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM daily_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

func scanEntry(row pgx.Row) (*entity.DailyEntry, error) {
	var e entity.DailyEntry
	err := row.Scan(
		&e.ID, &e.UserID, &e.Date,
		&e.CashAmount, &e.NetworkAmount, &e.PurchasesAmount, &e.AdvanceAmount,
		&e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
