// Package pdf implementa el estado mensual de caja en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Usuario + Mes/Año                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Efectivo | Datáfono | Compras | Anticipo |  │
//	│         Total | Restante                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total del mes / Anticipos / Deducciones fijas     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/CajaDiaria-api/internal/application/report"
	"github.com/jhoicas/CajaDiaria-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var monthNames = [...]string{
	"", "Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var _ report.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// MarotoStatementGenerator implementa report.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatementPDF genera el PDF del mes y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(_ context.Context, data report.StatementData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado mensual de caja", true).
		WithAuthor(data.Profile.Username, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, e := range data.Entries {
		m.AddRows(entryRow(e))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(data)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: usuario (izq) y mes/año (der).
func headerRow(data report.StatementData) core.Row {
	period := fmt.Sprintf("%s %d", monthNames[data.Month], data.Year)
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Caja diaria - "+data.Profile.Username, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(period, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New(fmt.Sprintf("%d días registrados", len(data.Entries)), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1}
	left := header
	left.Align = align.Left
	return row.New(7).Add(
		col.New(2).Add(text.New("Fecha", left)),
		col.New(2).Add(text.New("Efectivo", header)),
		col.New(2).Add(text.New("Datáfono", header)),
		col.New(2).Add(text.New("Compras", header)),
		col.New(2).Add(text.New("Anticipo", header)),
		col.New(1).Add(text.New("Total", header)),
		col.New(1).Add(text.New("Restante", header)),
	)
}

func entryRow(e *entity.DailyEntry) core.Row {
	cell := props.Text{Size: 8, Align: align.Right, Top: 1}
	left := cell
	left.Align = align.Left
	return row.New(6).Add(
		col.New(2).Add(text.New(e.Date, left)),
		col.New(2).Add(text.New(e.CashAmount.StringFixed(2), cell)),
		col.New(2).Add(text.New(e.NetworkAmount.StringFixed(2), cell)),
		col.New(2).Add(text.New(e.PurchasesAmount.StringFixed(2), cell)),
		col.New(2).Add(text.New(e.AdvanceAmount.StringFixed(2), cell)),
		col.New(1).Add(text.New(e.Total().StringFixed(2), cell)),
		col.New(1).Add(text.New(e.Remaining().StringFixed(2), cell)),
	)
}

func totalsRows(data report.StatementData) []core.Row {
	label := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1}
	value := props.Text{Size: 9, Align: align.Right, Top: 1}
	rowOf := func(name, amount string) core.Row {
		return row.New(6).Add(
			col.New(9).Add(text.New(name, label)),
			col.New(3).Add(text.New(amount, value)),
		)
	}
	return []core.Row{
		rowOf("Total del mes (efectivo + datáfono)", data.Total.StringFixed(2)),
		rowOf("Anticipos acumulados", data.Advances.StringFixed(2)),
		rowOf("Deducciones fijas", data.Profile.Deductions.StringFixed(2)),
	}
}
