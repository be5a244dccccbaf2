package repository

import (
	"context"

	"github.com/jhoicas/CajaDiaria-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Delete elimina la cuenta; perfil y movimientos caen por cascade de FK.
	Delete(ctx context.Context, id string) error
	// DeleteAllExcept elimina todas las cuentas salvo la indicada (reset completo).
	// Devuelve la cantidad de cuentas eliminadas.
	DeleteAllExcept(ctx context.Context, keepUserID string) (int64, error)
}
