package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/CajaDiaria-api/internal/domain"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/entity"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// StatementUseCase genera el estado mensual de caja de un usuario en PDF.
type StatementUseCase struct {
	entries  repository.EntryRepository
	profiles repository.ProfileRepository
	pdf      StatementPDFGenerator
}

// NewStatementUseCase construye el caso de uso de reportes.
func NewStatementUseCase(entries repository.EntryRepository, profiles repository.ProfileRepository, pdf StatementPDFGenerator) *StatementUseCase {
	return &StatementUseCase{entries: entries, profiles: profiles, pdf: pdf}
}

// Monthly genera el PDF del mes para targetUserID. El propio usuario siempre
// puede descargar el suyo; el de otros solo un admin. Devuelve los bytes del
// documento y un nombre de archivo sugerido.
func (uc *StatementUseCase) Monthly(ctx context.Context, callerID, targetUserID string, year, month int) ([]byte, string, error) {
	if targetUserID == "" {
		targetUserID = callerID
	}
	if month < 1 || month > 12 || year <= 0 {
		return nil, "", domain.ErrInvalidDate
	}
	caller, err := uc.profiles.GetByUserID(ctx, callerID)
	if err != nil {
		return nil, "", err
	}
	if caller == nil || (callerID != targetUserID && !caller.IsAdmin) {
		return nil, "", domain.ErrForbidden
	}
	target, err := uc.profiles.GetByUserID(ctx, targetUserID)
	if err != nil {
		return nil, "", err
	}
	if target == nil {
		return nil, "", domain.ErrUserNotFound
	}
	from, to := entity.MonthRange(year, month)
	list, err := uc.entries.ListByUserAndRange(ctx, targetUserID, from, to)
	if err != nil {
		return nil, "", err
	}
	total := decimal.Zero
	advances := decimal.Zero
	for _, e := range list {
		total = total.Add(e.Total())
		advances = advances.Add(e.AdvanceAmount)
	}
	doc, err := uc.pdf.GenerateStatementPDF(ctx, StatementData{
		Profile:  target,
		Year:     year,
		Month:    month,
		Entries:  list,
		Total:    total,
		Advances: advances,
	})
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("caja-%s-%04d-%02d.pdf", target.Username, year, month)
	return doc, filename, nil
}
