package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/CajaDiaria-api/internal/application/dto"
	"github.com/jhoicas/CajaDiaria-api/internal/domain"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/entity"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/repository"
	"github.com/jhoicas/CajaDiaria-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y sesión actual.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, profileRepo: profileRepo, jwtCfg: jwtCfg}
}

// Register crea una cuenta: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + cuenta + perfil.
// El perfil viaja como null hasta que el usuario lo cree.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.StatusActive {
		return nil, domain.ErrForbidden
	}
	profile, err := uc.profileRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	role := jwt.RoleUser
	if profile != nil && profile.IsAdmin {
		role = jwt.RoleAdmin
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		User:    *toUserResponse(user),
		Profile: ToProfileResponse(profile),
	}, nil
}

// TokenFor emite un JWT nuevo con el rol derivado del perfil actual.
// Se usa tras crear el perfil: si la cuenta acaba de quedar como admin,
// el token anterior todavía dice "user".
func (uc *AuthUseCase) TokenFor(ctx context.Context, userID string) (string, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	role := jwt.RoleUser
	if profile != nil && profile.IsAdmin {
		role = jwt.RoleAdmin
	}
	return jwt.Generate(uc.jwtCfg.Secret, userID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}

// Me devuelve la cuenta autenticada con su perfil (null si aún no lo creó).
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.MeResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.MeResponse{
		User:    *toUserResponse(user),
		Profile: ToProfileResponse(profile),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

// ToProfileResponse mapea el perfil a DTO; nil se mantiene nil (perfil pendiente).
func ToProfileResponse(p *entity.UserProfile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		UserID:     p.UserID,
		Username:   p.Username,
		IsAdmin:    p.IsAdmin,
		Deductions: p.Deductions,
		CreatedAt:  p.CreatedAt,
	}
}
