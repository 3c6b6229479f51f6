package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
)

func TestSalesReportPDF_Generate(t *testing.T) {
	partnerID := int64(2)
	report := &dto.SalesReportResponse{
		TotalSales:  2,
		TotalValue:  decimal.RequireFromString("1799.90"),
		TotalPages:  1,
		CurrentPage: 1,
		Limit:       10,
		Filters:     dto.ReportFilters{StartDate: "2024-01-01", PartnerID: &partnerID},
		Sales: []dto.SalesReportRow{
			{
				ID: 2, Value: decimal.RequireFromString("1500.00"), Quantity: 1,
				CreatedAt: time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
				Product:   dto.RefResponse{ID: 4, Name: "Mentoria Individual"},
				Customer:  dto.RefResponse{ID: 4, Name: "Carlos Oliveira"},
				Partner:   dto.RefResponse{ID: 2, Name: "João Silva"},
			},
			{
				ID: 1, Value: decimal.RequireFromString("299.90"), Quantity: 1,
				CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			},
		},
	}

	out, err := NewSalesReportPDF("marketplace").Generate(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestSalesReportPDF_EmptyReport(t *testing.T) {
	out, err := NewSalesReportPDF("marketplace").Generate(context.Background(), &dto.SalesReportResponse{
		TotalValue: decimal.Zero,
		Sales:      []dto.SalesReportRow{},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1.500,00", formatMoney(decimal.NewFromInt(1500)))
	assert.Equal(t, "299,90", formatMoney(decimal.RequireFromString("299.9")))
	assert.Equal(t, "1.234.567,89", formatMoney(decimal.RequireFromString("1234567.891")))
	assert.Equal(t, "0,00", formatMoney(decimal.Zero))
}
