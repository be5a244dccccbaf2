package report

import (
	"context"

	"github.com/jhoicas/CajaDiaria-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StatementData todo lo que necesita el generador para armar el estado mensual.
type StatementData struct {
	Profile  *entity.UserProfile
	Year     int
	Month    int
	Entries  []*entity.DailyEntry
	Total    decimal.Decimal // suma cash + network del mes
	Advances decimal.Decimal // anticipos acumulados del mes
}

// StatementPDFGenerator puerto del generador de PDF (lo implementa infrastructure/pdf).
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, data StatementData) ([]byte, error)
}
