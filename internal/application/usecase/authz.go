package usecase

import (
	"context"

	"github.com/jhoicas/CajaDiaria-api/internal/domain"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/entity"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/repository"
)

// callerProfile carga el perfil del llamador desde la base. El flag de admin
// se deriva SIEMPRE aquí, en el momento de la llamada; nunca del token ni de
// un flag enviado por el cliente.
func callerProfile(ctx context.Context, profiles repository.ProfileRepository, callerID string) (*entity.UserProfile, error) {
	p, err := profiles.GetByUserID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		// Cuenta sin perfil todavía: puede crear el suyo, nada más.
		return nil, domain.ErrForbidden
	}
	return p, nil
}

// requireAdmin devuelve el perfil del llamador solo si es admin.
func requireAdmin(ctx context.Context, profiles repository.ProfileRepository, callerID string) (*entity.UserProfile, error) {
	p, err := callerProfile(ctx, profiles, callerID)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

// requireSelfOrAdmin autoriza operar sobre targetID: el propio usuario siempre,
// cualquier otro solo si el llamador es admin.
func requireSelfOrAdmin(ctx context.Context, profiles repository.ProfileRepository, callerID, targetID string) (*entity.UserProfile, error) {
	p, err := callerProfile(ctx, profiles, callerID)
	if err != nil {
		return nil, err
	}
	if callerID != targetID && !p.IsAdmin {
		return nil, domain.ErrForbidden
	}
	return p, nil
}
