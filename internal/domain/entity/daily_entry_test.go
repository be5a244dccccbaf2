package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CajaDiaria-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Total = efectivo + datáfono; Remaining = Total - compras.
func TestDailyEntry_Derivados(t *testing.T) {
	e := entity.DailyEntry{
		CashAmount:      dec("100"),
		NetworkAmount:   dec("50"),
		PurchasesAmount: dec("30"),
	}

	assert.True(t, e.Total().Equal(dec("150")), "total = 100 + 50")
	assert.True(t, e.Remaining().Equal(dec("120")), "remaining = 150 - 30")
}

// Remaining puede quedar negativo si las compras superan lo recaudado.
func TestDailyEntry_RemainingNegativo(t *testing.T) {
	e := entity.DailyEntry{
		CashAmount:      dec("10.50"),
		NetworkAmount:   dec("0"),
		PurchasesAmount: dec("25.75"),
	}

	assert.True(t, e.Remaining().Equal(dec("-15.25")))
}

// Los derivados con centavos no deben perder precisión.
func TestDailyEntry_PrecisionDecimal(t *testing.T) {
	e := entity.DailyEntry{
		CashAmount:    dec("0.10"),
		NetworkAmount: dec("0.20"),
	}

	assert.Equal(t, "0.30", e.Total().StringFixed(2))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"fecha válida", "2025-03-14", false},
		{"29 de febrero en bisiesto", "2024-02-29", false},
		{"29 de febrero en no bisiesto", "2025-02-29", true},
		{"mes 13", "2025-13-01", true},
		{"formato con slash", "2025/03/14", true},
		{"vacío", "", true},
		{"sin ceros a la izquierda", "2025-3-4", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := entity.ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// MonthRange devuelve un rango semiabierto [inicio, inicio del mes siguiente).
func TestMonthRange(t *testing.T) {
	from, to := entity.MonthRange(2025, 12)

	require.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), from)
	require.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), to,
		"diciembre debe desbordar al enero siguiente")

	// El último día del mes queda dentro del rango; el primero del siguiente no.
	last, err := entity.ParseDate("2025-12-31")
	require.NoError(t, err)
	assert.True(t, !last.Before(from) && last.Before(to))

	next, err := entity.ParseDate("2026-01-01")
	require.NoError(t, err)
	assert.False(t, next.Before(to))
}
