package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/CajaDiaria-api/internal/application/dto"
	"github.com/jhoicas/CajaDiaria-api/internal/application/events"
	"github.com/jhoicas/CajaDiaria-api/internal/domain"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/entity"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// EntryUseCase reglas de negocio de los movimientos diarios de caja.
type EntryUseCase struct {
	entries  repository.EntryRepository
	profiles repository.ProfileRepository
	hub      *events.Hub
}

// NewEntryUseCase construye el caso de uso de movimientos.
func NewEntryUseCase(entries repository.EntryRepository, profiles repository.ProfileRepository, hub *events.Hub) *EntryUseCase {
	return &EntryUseCase{entries: entries, profiles: profiles, hub: hub}
}

// Upsert inserta o actualiza el movimiento de (targetUser, fecha).
// Valida fecha calendario real y montos no negativos; autoriza self-o-admin
// releyendo el perfil del llamador. La escritura es una sola sentencia por
// documento: no hay escrituras parciales ni bloqueo (último write gana).
func (uc *EntryUseCase) Upsert(ctx context.Context, callerID string, in dto.UpsertEntryRequest) (*dto.EntryResponse, error) {
	targetID := in.TargetUserID
	if targetID == "" {
		targetID = callerID
	}
	if _, err := entity.ParseDate(in.Date); err != nil {
		return nil, domain.ErrInvalidDate
	}
	for _, amount := range []decimal.Decimal{in.CashAmount, in.NetworkAmount, in.PurchasesAmount, in.AdvanceAmount} {
		if amount.IsNegative() {
			return nil, domain.ErrNegativeAmount
		}
	}
	if _, err := requireSelfOrAdmin(ctx, uc.profiles, callerID, targetID); err != nil {
		return nil, err
	}
	target, err := uc.profiles.GetByUserID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}
	now := time.Now()
	entry := &entity.DailyEntry{
		ID:              uuid.New().String(),
		UserID:          targetID,
		Date:            in.Date,
		CashAmount:      in.CashAmount,
		NetworkAmount:   in.NetworkAmount,
		PurchasesAmount: in.PurchasesAmount,
		AdvanceAmount:   in.AdvanceAmount,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	saved, err := uc.entries.Upsert(ctx, entry)
	if err != nil {
		return nil, err
	}
	uc.hub.Publish(events.Event{
		Collection: events.CollectionEntries,
		Action:     events.ActionUpserted,
		UserID:     targetID,
		Date:       saved.Date,
	})
	return toEntryResponse(saved), nil
}

// List devuelve los movimientos de un usuario para un mes, o el año completo
// si month es cero. Lectura self-o-admin.
func (uc *EntryUseCase) List(ctx context.Context, callerID, targetUserID string, year, month int) ([]*dto.EntryResponse, error) {
	if targetUserID == "" {
		targetUserID = callerID
	}
	if _, err := requireSelfOrAdmin(ctx, uc.profiles, callerID, targetUserID); err != nil {
		return nil, err
	}
	from, to, err := rangeFor(year, month)
	if err != nil {
		return nil, err
	}
	list, err := uc.entries.ListByUserAndRange(ctx, targetUserID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEntryResponse(e))
	}
	return out, nil
}

// MonthlyAdvances suma advance_amount del usuario en el año-mes dado (AAAA-MM).
// Se recalcula en cada lectura: el mes acota la consulta a ≤31 filas.
func (uc *EntryUseCase) MonthlyAdvances(ctx context.Context, callerID, targetUserID, yearMonth string) (*dto.MonthlyAdvancesResponse, error) {
	if targetUserID == "" {
		targetUserID = callerID
	}
	if _, err := requireSelfOrAdmin(ctx, uc.profiles, callerID, targetUserID); err != nil {
		return nil, err
	}
	t, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	from, to := entity.MonthRange(t.Year(), int(t.Month()))
	sum, err := uc.entries.SumAdvances(ctx, targetUserID, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.MonthlyAdvancesResponse{
		UserID:    targetUserID,
		YearMonth: yearMonth,
		Advances:  sum,
	}, nil
}

// MonthSummary cabecera del mes para la vista de calendario: días registrados,
// total (cash+network), anticipos acumulados y deducciones fijas del usuario.
func (uc *EntryUseCase) MonthSummary(ctx context.Context, callerID, targetUserID string, year, month int) (*dto.MonthSummaryResponse, error) {
	if targetUserID == "" {
		targetUserID = callerID
	}
	if _, err := requireSelfOrAdmin(ctx, uc.profiles, callerID, targetUserID); err != nil {
		return nil, err
	}
	if month < 1 || month > 12 || year <= 0 {
		return nil, domain.ErrInvalidDate
	}
	target, err := uc.profiles.GetByUserID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}
	from, to := entity.MonthRange(year, month)
	list, err := uc.entries.ListByUserAndRange(ctx, targetUserID, from, to)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	advances := decimal.Zero
	for _, e := range list {
		total = total.Add(e.Total())
		advances = advances.Add(e.AdvanceAmount)
	}
	return &dto.MonthSummaryResponse{
		UserID:        targetUserID,
		Year:          year,
		Month:         month,
		DaysWithEntry: len(list),
		TotalAmount:   total,
		Advances:      advances,
		Deductions:    target.Deductions,
	}, nil
}

// Delete elimina un movimiento por ID. Solo admin: los usuarios normales
// pueden crear y editar sus movimientos pero nunca borrarlos.
func (uc *EntryUseCase) Delete(ctx context.Context, callerID, entryID string) error {
	if _, err := requireAdmin(ctx, uc.profiles, callerID); err != nil {
		return err
	}
	entry, err := uc.entries.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	if err := uc.entries.Delete(ctx, entryID); err != nil {
		return err
	}
	uc.hub.Publish(events.Event{
		Collection: events.CollectionEntries,
		Action:     events.ActionDeleted,
		UserID:     entry.UserID,
		Date:       entry.Date,
	})
	return nil
}

// rangeFor convierte (year, month) en un rango semiabierto; month 0 = año entero.
func rangeFor(year, month int) (time.Time, time.Time, error) {
	if year <= 0 {
		return time.Time{}, time.Time{}, domain.ErrInvalidDate
	}
	if month == 0 {
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(1, 0, 0), nil
	}
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, domain.ErrInvalidDate
	}
	from, to := entity.MonthRange(year, month)
	return from, to, nil
}

func toEntryResponse(e *entity.DailyEntry) *dto.EntryResponse {
	if e == nil {
		return nil
	}
	return &dto.EntryResponse{
		ID:              e.ID,
		UserID:          e.UserID,
		Date:            e.Date,
		CashAmount:      e.CashAmount,
		NetworkAmount:   e.NetworkAmount,
		PurchasesAmount: e.PurchasesAmount,
		AdvanceAmount:   e.AdvanceAmount,
		Notes:           e.Notes,
		Total:           e.Total(),
		Remaining:       e.Remaining(),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
