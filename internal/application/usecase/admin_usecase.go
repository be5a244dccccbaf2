package usecase

import (
	"context"

	"github.com/jhoicas/CajaDiaria-api/internal/application/dto"
	"github.com/jhoicas/CajaDiaria-api/internal/application/events"
	"github.com/jhoicas/CajaDiaria-api/internal/domain"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/repository"
	"github.com/jhoicas/CajaDiaria-api/pkg/logger"
)

// AdminTxRunner ejecuta fn con los repos atados a una transacción.
// Lo implementa postgres.TxRunner.
type AdminTxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		profiles repository.ProfileRepository,
		entries repository.EntryRepository,
	) error) error
}

// ResetPhrases frases exactas que confirman cada variante de reset.
type ResetPhrases struct {
	DataOnly string
	Complete string
}

// AdminUseCase operaciones exclusivas del administrador: gestión de usuarios,
// resumen mensual y resets irreversibles. Toda operación rederiva el flag de
// admin del llamador desde la base en el momento de la llamada.
type AdminUseCase struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	entries  repository.EntryRepository
	tx       AdminTxRunner
	hub      *events.Hub
	phrases  ResetPhrases
	log      *logger.Logger
}

// NewAdminUseCase construye el caso de uso de administración.
func NewAdminUseCase(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	entries repository.EntryRepository,
	tx AdminTxRunner,
	hub *events.Hub,
	phrases ResetPhrases,
	log *logger.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		users:    users,
		profiles: profiles,
		entries:  entries,
		tx:       tx,
		hub:      hub,
		phrases:  phrases,
		log:      log.Module("admin"),
	}
}

// ListUsers devuelve todos los perfiles con el email de su cuenta.
func (uc *AdminUseCase) ListUsers(ctx context.Context, callerID string) ([]*dto.AdminUserResponse, error) {
	if _, err := requireAdmin(ctx, uc.profiles, callerID); err != nil {
		return nil, err
	}
	rows, err := uc.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AdminUserResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, &dto.AdminUserResponse{
			UserID:     r.UserID,
			Email:      r.Email,
			Username:   r.Username,
			IsAdmin:    r.IsAdmin,
			Deductions: r.Deductions,
			CreatedAt:  r.CreatedAt,
		})
	}
	return out, nil
}

// UpdateUsername renombra a cualquier usuario. Falla con ErrUsernameTaken si
// el nombre normalizado ya pertenece a otra cuenta.
func (uc *AdminUseCase) UpdateUsername(ctx context.Context, callerID, targetUserID string, in dto.UpdateUsernameRequest) error {
	if _, err := requireAdmin(ctx, uc.profiles, callerID); err != nil {
		return err
	}
	username := NormalizeUsername(in.Username)
	if username == "" {
		return domain.ErrInvalidInput
	}
	target, err := uc.profiles.GetByUserID(ctx, targetUserID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrUserNotFound
	}
	holder, err := uc.profiles.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if holder != nil && holder.UserID != targetUserID {
		return domain.ErrUsernameTaken
	}
	if err := uc.profiles.UpdateUsername(ctx, targetUserID, username); err != nil {
		return err
	}
	uc.hub.Publish(events.Event{
		Collection: events.CollectionProfiles,
		Action:     events.ActionUpserted,
		UserID:     targetUserID,
	})
	return nil
}

// UpdateDeductions fija la deducción mensual de cualquier usuario, incluido el
// propio admin. Falla con ErrNegativeAmount si el monto es negativo.
func (uc *AdminUseCase) UpdateDeductions(ctx context.Context, callerID, targetUserID string, in dto.UpdateDeductionsRequest) error {
	if _, err := requireAdmin(ctx, uc.profiles, callerID); err != nil {
		return err
	}
	if in.Deductions.IsNegative() {
		return domain.ErrNegativeAmount
	}
	target, err := uc.profiles.GetByUserID(ctx, targetUserID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.profiles.UpdateDeductions(ctx, targetUserID, in.Deductions); err != nil {
		return err
	}
	uc.hub.Publish(events.Event{
		Collection: events.CollectionProfiles,
		Action:     events.ActionUpserted,
		UserID:     targetUserID,
	})
	return nil
}

// DeleteUser elimina la cuenta de un usuario no admin; el perfil y todos sus
// movimientos caen en cascada. Un admin no puede borrar a otro admin.
func (uc *AdminUseCase) DeleteUser(ctx context.Context, callerID, targetUserID string) error {
	if _, err := requireAdmin(ctx, uc.profiles, callerID); err != nil {
		return err
	}
	target, err := uc.users.GetByID(ctx, targetUserID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrUserNotFound
	}
	profile, err := uc.profiles.GetByUserID(ctx, targetUserID)
	if err != nil {
		return err
	}
	if profile != nil && profile.IsAdmin {
		return domain.ErrAdminProtected
	}
	if err := uc.users.Delete(ctx, targetUserID); err != nil {
		return err
	}
	uc.log.Info().Str("user_id", targetUserID).Msg("usuario eliminado con sus movimientos")
	uc.hub.Publish(events.Event{
		Collection: events.CollectionUsers,
		Action:     events.ActionDeleted,
		UserID:     targetUserID,
	})
	return nil
}

// Summary totales del mes agrupados por usuario (panel del admin).
func (uc *AdminUseCase) Summary(ctx context.Context, callerID string, year, month int) (*dto.AdminSummaryResponse, error) {
	if _, err := requireAdmin(ctx, uc.profiles, callerID); err != nil {
		return nil, err
	}
	from, to, err := rangeFor(year, month)
	if err != nil {
		return nil, err
	}
	totals, err := uc.entries.TotalsByUser(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := &dto.AdminSummaryResponse{Year: year, Month: month}
	for _, t := range totals {
		out.UserTotals = append(out.UserTotals, dto.UserMonthTotalEntry{
			UserID:        t.UserID,
			Username:      t.Username,
			DaysWithEntry: t.DaysWithEntry,
			TotalAmount:   t.TotalAmount,
			Advances:      t.Advances,
		})
	}
	return out, nil
}

// ResetDataOnly borra todos los movimientos del sistema y conserva cuentas y
// perfiles. La frase de confirmación debe coincidir byte a byte; si no, la
// operación se rechaza sin tocar ninguna fila.
func (uc *AdminUseCase) ResetDataOnly(ctx context.Context, callerID, confirmation string) (*dto.ResetResponse, error) {
	if _, err := requireAdmin(ctx, uc.profiles, callerID); err != nil {
		return nil, err
	}
	if confirmation != uc.phrases.DataOnly {
		return nil, domain.ErrConfirmationMismatch
	}
	deleted, err := uc.entries.DeleteAll(ctx)
	if err != nil {
		return nil, err
	}
	uc.log.Warn().Int64("entries_deleted", deleted).Str("by", callerID).Msg("reset de datos ejecutado")
	uc.hub.Publish(events.Event{Collection: events.CollectionEntries, Action: events.ActionReset})
	return &dto.ResetResponse{EntriesDeleted: deleted}, nil
}

// ResetComplete borra todos los movimientos y todas las cuentas salvo la del
// admin que ejecuta. Corre en una transacción: los conteos reportados son
// exactos y un fallo a mitad no deja el sistema a medias.
func (uc *AdminUseCase) ResetComplete(ctx context.Context, callerID, confirmation string) (*dto.ResetResponse, error) {
	if _, err := requireAdmin(ctx, uc.profiles, callerID); err != nil {
		return nil, err
	}
	if confirmation != uc.phrases.Complete {
		return nil, domain.ErrConfirmationMismatch
	}
	var out dto.ResetResponse
	err := uc.tx.Run(ctx, func(
		users repository.UserRepository,
		profiles repository.ProfileRepository,
		entries repository.EntryRepository,
	) error {
		deleted, err := entries.DeleteAll(ctx)
		if err != nil {
			return err
		}
		out.EntriesDeleted = deleted
		removed, err := users.DeleteAllExcept(ctx, callerID)
		if err != nil {
			return err
		}
		out.UsersDeleted = removed
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Warn().
		Int64("entries_deleted", out.EntriesDeleted).
		Int64("users_deleted", out.UsersDeleted).
		Str("by", callerID).
		Msg("reset completo ejecutado")
	uc.hub.Publish(events.Event{Collection: events.CollectionUsers, Action: events.ActionReset})
	return &out, nil
}
