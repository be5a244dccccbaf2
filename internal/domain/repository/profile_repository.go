package repository

import (
	"context"

	"github.com/jhoicas/CajaDiaria-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProfileWithEmail fila del listado de administración: perfil + email de la cuenta.
type ProfileWithEmail struct {
	entity.UserProfile
	Email string
}

// ProfileRepository define el puerto de persistencia para UserProfile (DIP).
type ProfileRepository interface {
	// Create inserta el perfil. El flag IsAdmin lo decide el almacén: el primer
	// perfil del sistema gana el índice parcial de admin único; el resto queda
	// como usuario normal aunque dos altas lleguen a la vez. El entity recibe
	// el IsAdmin definitivo.
	Create(ctx context.Context, profile *entity.UserProfile) error
	GetByUserID(ctx context.Context, userID string) (*entity.UserProfile, error)
	GetByUsername(ctx context.Context, username string) (*entity.UserProfile, error)
	List(ctx context.Context) ([]*ProfileWithEmail, error)
	UpdateUsername(ctx context.Context, userID, username string) error
	UpdateDeductions(ctx context.Context, userID string, deductions decimal.Decimal) error
	Count(ctx context.Context) (int64, error)
}
