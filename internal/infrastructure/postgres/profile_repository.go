package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/CajaDiaria-api/internal/domain"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/entity"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	db Querier
}

// NewProfileRepository construye el adaptador de persistencia para perfiles.
func NewProfileRepository(db Querier) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Create inserta el perfil decidiendo el flag de admin en la misma sentencia:
// is_admin = "no existe ningún perfil todavía". Si dos primeras altas llegan a
// la vez, una gana el índice parcial user_profiles_single_admin y la otra se
// reintenta como usuario normal. El entity queda con el IsAdmin definitivo.
func (r *ProfileRepo) Create(ctx context.Context, profile *entity.UserProfile) error {
	query := `
		INSERT INTO user_profiles (user_id, username, is_admin, deductions, created_at)
		VALUES ($1, $2, NOT EXISTS (SELECT 1 FROM user_profiles), $3, $4)
		RETURNING is_admin`
	err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.Username, profile.Deductions, profile.CreatedAt,
	).Scan(&profile.IsAdmin)
	if err == nil {
		return nil
	}
	pgErr := uniqueViolation(err)
	if pgErr == nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	switch pgErr.ConstraintName {
	case "user_profiles_single_admin":
		// Perdió la carrera del primer admin: entra como usuario normal.
		return r.createNonAdmin(ctx, profile)
	case "user_profiles_username_key":
		return domain.ErrUsernameTaken
	default:
		return domain.ErrProfileAlreadyExists
	}
}

func (r *ProfileRepo) createNonAdmin(ctx context.Context, profile *entity.UserProfile) error {
	query := `
		INSERT INTO user_profiles (user_id, username, is_admin, deductions, created_at)
		VALUES ($1, $2, FALSE, $3, $4)`
	_, err := r.db.Exec(ctx, query,
		profile.UserID, profile.Username, profile.Deductions, profile.CreatedAt,
	)
	if err != nil {
		if pgErr := uniqueViolation(err); pgErr != nil {
			if pgErr.ConstraintName == "user_profiles_username_key" {
				return domain.ErrUsernameTaken
			}
			return domain.ErrProfileAlreadyExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	profile.IsAdmin = false
	return nil
}

// GetByUserID obtiene el perfil de una cuenta.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	return r.getOne(ctx, `WHERE user_id = $1`, userID)
}

// GetByUsername obtiene el perfil dueño de un username (ya normalizado).
func (r *ProfileRepo) GetByUsername(ctx context.Context, username string) (*entity.UserProfile, error) {
	return r.getOne(ctx, `WHERE username = $1`, username)
}

func (r *ProfileRepo) getOne(ctx context.Context, where string, arg any) (*entity.UserProfile, error) {
	query := `
		SELECT user_id, username, is_admin, deductions, created_at
		FROM user_profiles ` + where
	var p entity.UserProfile
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&p.UserID, &p.Username, &p.IsAdmin, &p.Deductions, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// List devuelve todos los perfiles con el email de su cuenta, los más antiguos primero.
func (r *ProfileRepo) List(ctx context.Context) ([]*repository.ProfileWithEmail, error) {
	query := `
		SELECT p.user_id, p.username, p.is_admin, p.deductions, p.created_at, u.email
		FROM user_profiles p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	var list []*repository.ProfileWithEmail
	for rows.Next() {
		var row repository.ProfileWithEmail
		if err := rows.Scan(&row.UserID, &row.Username, &row.IsAdmin, &row.Deductions, &row.CreatedAt, &row.Email); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// UpdateUsername renombra un perfil.
func (r *ProfileRepo) UpdateUsername(ctx context.Context, userID, username string) error {
	tag, err := r.db.Exec(ctx, `UPDATE user_profiles SET username = $2 WHERE user_id = $1`, userID, username)
	if err != nil {
		if pgErr := uniqueViolation(err); pgErr != nil {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("update username: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdateDeductions fija la deducción mensual de un perfil.
func (r *ProfileRepo) UpdateDeductions(ctx context.Context, userID string, deductions decimal.Decimal) error {
	tag, err := r.db.Exec(ctx, `UPDATE user_profiles SET deductions = $2 WHERE user_id = $1`, userID, deductions)
	if err != nil {
		return fmt.Errorf("update deductions: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Count cantidad de perfiles existentes.
func (r *ProfileRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM user_profiles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}
	return n, nil
}
