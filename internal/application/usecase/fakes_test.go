package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/CajaDiaria-api/internal/application/usecase"
	"github.com/jhoicas/CajaDiaria-api/internal/domain"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/entity"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Replican el contrato de los
// repos de postgres: nil sin error cuando no hay fila, primer perfil admin,
// unicidad de username y cascade de perfil/movimientos al borrar la cuenta.

type fakeStore struct {
	users    map[string]*entity.User
	profiles map[string]*entity.UserProfile
	entries  map[string]*entity.DailyEntry // clave userID|fecha
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[string]*entity.User),
		profiles: make(map[string]*entity.UserProfile),
		entries:  make(map[string]*entity.DailyEntry),
	}
}

// seedAccount crea una cuenta sin perfil.
func seedAccount(s *fakeStore, id string) {
	now := time.Now()
	s.users[id] = &entity.User{
		ID:        id,
		Email:     id + "@test.local",
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// seedUser crea cuenta + perfil de una vez; el primero queda como admin.
func (s *fakeStore) seedUser(id, username string) *entity.UserProfile {
	now := time.Now()
	s.users[id] = &entity.User{
		ID:        id,
		Email:     username + "@test.local",
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p := &entity.UserProfile{
		UserID:     id,
		Username:   username,
		IsAdmin:    len(s.profiles) == 0,
		Deductions: decimal.Zero,
		CreatedAt:  now,
	}
	s.profiles[id] = p
	return p
}

// ─── UserRepository ───────────────────────────────────────────────────────────

type fakeUserRepo struct{ s *fakeStore }

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.s.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.s.users, id)
	delete(r.s.profiles, id)
	for k, e := range r.s.entries {
		if e.UserID == id {
			delete(r.s.entries, k)
		}
	}
	return nil
}

func (r *fakeUserRepo) DeleteAllExcept(_ context.Context, keepUserID string) (int64, error) {
	var n int64
	for id := range r.s.users {
		if id == keepUserID {
			continue
		}
		_ = r.Delete(context.Background(), id)
		n++
	}
	return n, nil
}

// ─── ProfileRepository ────────────────────────────────────────────────────────

type fakeProfileRepo struct{ s *fakeStore }

var _ repository.ProfileRepository = (*fakeProfileRepo)(nil)

func (r *fakeProfileRepo) Create(_ context.Context, p *entity.UserProfile) error {
	if _, ok := r.s.profiles[p.UserID]; ok {
		return domain.ErrProfileAlreadyExists
	}
	for _, existing := range r.s.profiles {
		if existing.Username == p.Username {
			return domain.ErrUsernameTaken
		}
	}
	p.IsAdmin = len(r.s.profiles) == 0
	r.s.profiles[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (*entity.UserProfile, error) {
	return r.s.profiles[userID], nil
}

func (r *fakeProfileRepo) GetByUsername(_ context.Context, username string) (*entity.UserProfile, error) {
	for _, p := range r.s.profiles {
		if p.Username == username {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) List(_ context.Context) ([]*repository.ProfileWithEmail, error) {
	out := make([]*repository.ProfileWithEmail, 0, len(r.s.profiles))
	for id, p := range r.s.profiles {
		row := &repository.ProfileWithEmail{UserProfile: *p}
		if u := r.s.users[id]; u != nil {
			row.Email = u.Email
		}
		out = append(out, row)
	}
	// Mismo orden que el repo real: los perfiles más antiguos primero.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Username < out[j].Username
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeProfileRepo) UpdateUsername(_ context.Context, userID, username string) error {
	p, ok := r.s.profiles[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	p.Username = username
	return nil
}

func (r *fakeProfileRepo) UpdateDeductions(_ context.Context, userID string, deductions decimal.Decimal) error {
	p, ok := r.s.profiles[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	p.Deductions = deductions
	return nil
}

func (r *fakeProfileRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.s.profiles)), nil
}

// ─── EntryRepository ──────────────────────────────────────────────────────────

type fakeEntryRepo struct{ s *fakeStore }

var _ repository.EntryRepository = (*fakeEntryRepo)(nil)

func (r *fakeEntryRepo) Upsert(_ context.Context, e *entity.DailyEntry) (*entity.DailyEntry, error) {
	key := e.UserID + "|" + e.Date
	if prev, ok := r.s.entries[key]; ok {
		// Misma semántica que ON CONFLICT DO UPDATE: conserva id y created_at.
		e.ID = prev.ID
		e.CreatedAt = prev.CreatedAt
	}
	cp := *e
	r.s.entries[key] = &cp
	return &cp, nil
}

func (r *fakeEntryRepo) GetByID(_ context.Context, id string) (*entity.DailyEntry, error) {
	for _, e := range r.s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEntryRepo) ListByUserAndRange(_ context.Context, userID string, from, to time.Time) ([]*entity.DailyEntry, error) {
	var out []*entity.DailyEntry
	for _, e := range r.s.entries {
		if e.UserID != userID {
			continue
		}
		d, err := entity.ParseDate(e.Date)
		if err != nil {
			return nil, err
		}
		if !d.Before(from) && d.Before(to) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *fakeEntryRepo) SumAdvances(ctx context.Context, userID string, from, to time.Time) (decimal.Decimal, error) {
	list, err := r.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, e := range list {
		sum = sum.Add(e.AdvanceAmount)
	}
	return sum, nil
}

func (r *fakeEntryRepo) TotalsByUser(_ context.Context, from, to time.Time) ([]*repository.UserMonthTotal, error) {
	byUser := make(map[string]*repository.UserMonthTotal)
	for _, e := range r.s.entries {
		d, err := entity.ParseDate(e.Date)
		if err != nil {
			return nil, err
		}
		if d.Before(from) || !d.Before(to) {
			continue
		}
		t, ok := byUser[e.UserID]
		if !ok {
			t = &repository.UserMonthTotal{
				UserID:      e.UserID,
				TotalAmount: decimal.Zero,
				Advances:    decimal.Zero,
			}
			if p := r.s.profiles[e.UserID]; p != nil {
				t.Username = p.Username
			}
			byUser[e.UserID] = t
		}
		t.DaysWithEntry++
		t.TotalAmount = t.TotalAmount.Add(e.Total())
		t.Advances = t.Advances.Add(e.AdvanceAmount)
	}
	out := make([]*repository.UserMonthTotal, 0, len(byUser))
	for _, t := range byUser {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *fakeEntryRepo) Delete(_ context.Context, id string) error {
	for k, e := range r.s.entries {
		if e.ID == id {
			delete(r.s.entries, k)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeEntryRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.s.entries))
	r.s.entries = make(map[string]*entity.DailyEntry)
	return n, nil
}

func (r *fakeEntryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.s.entries)), nil
}

// ─── AdminTxRunner ────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta fn sobre los mismos fakes, sin transacción real.
type fakeTxRunner struct{ s *fakeStore }

var _ usecase.AdminTxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	entries repository.EntryRepository,
) error) error {
	return fn(&fakeUserRepo{s: r.s}, &fakeProfileRepo{s: r.s}, &fakeEntryRepo{s: r.s})
}
