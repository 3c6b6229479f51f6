package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SalesReportFilters filtros ya interpretados del reporte de ventas.
// StartDate y EndDate son cotas inclusivas sobre la fecha de creación de la venta.
type SalesReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	PartnerID *int64
	Page      int
	Limit     int
}

// SalesReportResult resultado crudo: la página de ventas (con relaciones), el total de
// coincidencias y la suma de value sobre todas ellas, no solo sobre la página.
type SalesReportResult struct {
	Sales       []*entity.Sale
	TotalSales  int
	TotalValue  decimal.Decimal
	TotalPages  int
	CurrentPage int
}

// ReportRepository define las consultas de lectura del reporte de ventas.
type ReportRepository interface {
	GetSalesReport(ctx context.Context, filters SalesReportFilters) (*SalesReportResult, error)
}

// PageOffset calcula skip = (page-1) × limit.
func PageOffset(page, limit int) int {
	return (page - 1) * limit
}

// TotalPages calcula ceil(total/limit); 0 cuando limit no es positivo.
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
