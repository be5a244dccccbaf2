package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CajaDiaria-api/internal/application/auth"
	"github.com/jhoicas/CajaDiaria-api/internal/application/dto"
	"github.com/jhoicas/CajaDiaria-api/internal/domain"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/entity"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/CajaDiaria-api/pkg/jwt"
)

var testJWT = auth.JWTConfig{
	Secret:     "test-secret",
	ExpMinutes: 60,
	Issuer:     "caja-diaria-test",
}

// Fakes mínimos de los puertos que usa auth.

type memUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.byID[id], nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if u, ok := r.byID[id]; ok {
		delete(r.byEmail, u.Email)
		delete(r.byID, id)
	}
	return nil
}

func (r *memUserRepo) DeleteAllExcept(_ context.Context, keepUserID string) (int64, error) {
	var n int64
	for id := range r.byID {
		if id != keepUserID {
			_ = r.Delete(context.Background(), id)
			n++
		}
	}
	return n, nil
}

type memProfileRepo struct {
	byUserID map[string]*entity.UserProfile
}

var _ repository.ProfileRepository = (*memProfileRepo)(nil)

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{byUserID: map[string]*entity.UserProfile{}}
}

func (r *memProfileRepo) Create(_ context.Context, p *entity.UserProfile) error {
	p.IsAdmin = len(r.byUserID) == 0
	r.byUserID[p.UserID] = p
	return nil
}

func (r *memProfileRepo) GetByUserID(_ context.Context, userID string) (*entity.UserProfile, error) {
	return r.byUserID[userID], nil
}

func (r *memProfileRepo) GetByUsername(_ context.Context, username string) (*entity.UserProfile, error) {
	for _, p := range r.byUserID {
		if p.Username == username {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProfileRepo) List(_ context.Context) ([]*repository.ProfileWithEmail, error) {
	return nil, nil
}

func (r *memProfileRepo) UpdateUsername(_ context.Context, userID, username string) error {
	p, ok := r.byUserID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	p.Username = username
	return nil
}

func (r *memProfileRepo) UpdateDeductions(_ context.Context, userID string, d decimal.Decimal) error {
	p, ok := r.byUserID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	p.Deductions = d
	return nil
}

func (r *memProfileRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byUserID)), nil
}

func newAuthUC() (*auth.AuthUseCase, *memUserRepo, *memProfileRepo) {
	users := newMemUserRepo()
	profiles := newMemProfileRepo()
	return auth.NewAuthUseCase(users, profiles, testJWT), users, profiles
}

func TestRegister_YLogin(t *testing.T) {
	uc, _, _ := newAuthUC()
	ctx := context.Background()

	created, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@test.local", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, "ana@test.local", created.Email)
	assert.Equal(t, entity.StatusActive, created.Status)

	// Email repetido → conflicto.
	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "ana@test.local", Password: "otra12345"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@test.local", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Nil(t, out.Profile, "sin perfil todavía, viaja como null")

	// El token de una cuenta sin perfil lleva rol user.
	userID, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, pkgjwt.RoleUser, role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _, _ := newAuthUC()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@test.local", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@test.local", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@test.local", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	uc, users, _ := newAuthUC()
	ctx := context.Background()

	created, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@test.local", Password: "secreta123"})
	require.NoError(t, err)
	users.byID[created.ID].Status = entity.StatusInactive

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@test.local", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Tras crear el perfil, TokenFor reemite el token con el rol definitivo.
func TestTokenFor_RefrescaRol(t *testing.T) {
	uc, _, profiles := newAuthUC()
	ctx := context.Background()

	created, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@test.local", Password: "secreta123"})
	require.NoError(t, err)

	// Primer perfil del sistema: admin.
	require.NoError(t, profiles.Create(ctx, &entity.UserProfile{
		UserID:     created.ID,
		Username:   "jefa",
		Deductions: decimal.Zero,
		CreatedAt:  time.Now(),
	}))

	tok, err := uc.TokenFor(ctx, created.ID)
	require.NoError(t, err)

	_, role, err := pkgjwt.Parse(testJWT.Secret, tok)
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.RoleAdmin, role)
}

func TestMe(t *testing.T) {
	uc, _, profiles := newAuthUC()
	ctx := context.Background()

	created, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@test.local", Password: "secreta123"})
	require.NoError(t, err)

	me, err := uc.Me(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, me.User.ID)
	assert.Nil(t, me.Profile)

	require.NoError(t, profiles.Create(ctx, &entity.UserProfile{
		UserID:   created.ID,
		Username: "ana",
	}))

	me, err = uc.Me(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, me.Profile)
	assert.Equal(t, "ana", me.Profile.Username)

	_, err = uc.Me(ctx, "inexistente")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
