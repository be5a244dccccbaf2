package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/CajaDiaria-api/internal/domain"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/entity"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para cuentas.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste una nueva cuenta.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Status, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if uniqueViolation(err) != nil {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

// GetByEmail obtiene una cuenta por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

func (r *UserRepo) getOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, status, created_at, updated_at
		FROM users ` + where
	var u entity.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Delete elimina una cuenta; perfil y movimientos caen por ON DELETE CASCADE.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// DeleteAllExcept elimina todas las cuentas salvo keepUserID (reset completo).
func (r *UserRepo) DeleteAllExcept(ctx context.Context, keepUserID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id <> $1`, keepUserID)
	if err != nil {
		return 0, fmt.Errorf("delete users: %w", err)
	}
	return tag.RowsAffected(), nil
}
