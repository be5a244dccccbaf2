package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/CajaDiaria-api/internal/application/auth"
	"github.com/jhoicas/CajaDiaria-api/internal/application/dto"
	"github.com/jhoicas/CajaDiaria-api/internal/application/events"
	"github.com/jhoicas/CajaDiaria-api/internal/domain"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/entity"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// ProfileUseCase alta y consulta de perfiles de usuario.
type ProfileUseCase struct {
	profiles repository.ProfileRepository
	hub      *events.Hub
}

// NewProfileUseCase construye el caso de uso de perfiles.
func NewProfileUseCase(profiles repository.ProfileRepository, hub *events.Hub) *ProfileUseCase {
	return &ProfileUseCase{profiles: profiles, hub: hub}
}

// NormalizeUsername recorta espacios y normaliza a NFC: los nombres se capturan
// desde teclados árabes y latinos, y la misma palabra puede llegar compuesta o
// descompuesta; la unicidad debe comparar la forma canónica.
func NormalizeUsername(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Create crea el perfil del propio llamador, una sola vez. El primer perfil del
// sistema queda como admin; la carrera entre dos primeras altas la resuelve el
// índice parcial de admin único en la base (solo una gana el flag).
func (uc *ProfileUseCase) Create(ctx context.Context, callerID string, in dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	username := NormalizeUsername(in.Username)
	if username == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.profiles.GetByUserID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrProfileAlreadyExists
	}
	taken, err := uc.profiles.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken != nil {
		return nil, domain.ErrUsernameTaken
	}
	profile := &entity.UserProfile{
		UserID:     callerID,
		Username:   username,
		Deductions: decimal.Zero,
		CreatedAt:  time.Now(),
	}
	if err := uc.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	uc.hub.Publish(events.Event{
		Collection: events.CollectionProfiles,
		Action:     events.ActionUpserted,
		UserID:     callerID,
	})
	return auth.ToProfileResponse(profile), nil
}

// IsAdmin indica si la cuenta tiene perfil de admin; false si aún no hay perfil.
func (uc *ProfileUseCase) IsAdmin(ctx context.Context, userID string) (bool, error) {
	p, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	return p != nil && p.IsAdmin, nil
}

// Get devuelve el perfil de targetUserID: el propio siempre, otros solo admin.
func (uc *ProfileUseCase) Get(ctx context.Context, callerID, targetUserID string) (*dto.ProfileResponse, error) {
	if targetUserID == "" {
		targetUserID = callerID
	}
	if callerID != targetUserID {
		if _, err := requireAdmin(ctx, uc.profiles, callerID); err != nil {
			return nil, err
		}
	}
	profile, err := uc.profiles.GetByUserID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return auth.ToProfileResponse(profile), nil
}
