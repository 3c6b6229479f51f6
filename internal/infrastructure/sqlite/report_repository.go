package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo reporte de ventas sobre SQLite. Las dos lecturas son secuenciales:
// la base admite una sola conexión.
type ReportRepo struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

func (r *ReportRepo) GetSalesReport(ctx context.Context, f repository.SalesReportFilters) (*repository.SalesReportResult, error) {
	where, args := reportWhere(f)

	// SUM sobre NUMERIC es REAL en SQLite; se suma en centavos enteros.
	var (
		totalSales int
		totalCents int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(CAST(ROUND(s.value * 100) AS INTEGER)), 0) FROM sales s`+where, args...,
	).Scan(&totalSales, &totalCents)
	if err != nil {
		return nil, fmt.Errorf("report.totals: %w", err)
	}

	pageArgs := append(append([]any{}, args...), f.Limit, repository.PageOffset(f.Page, f.Limit))
	sales, err := querySales(ctx, r.db, persistence.SaleSelect+where+persistence.SaleOrder+` LIMIT ? OFFSET ?`, pageArgs...)
	if err != nil {
		return nil, fmt.Errorf("report.sales: %w", err)
	}
	if sales == nil {
		sales = []*entity.Sale{}
	}

	return &repository.SalesReportResult{
		Sales:       sales,
		TotalSales:  totalSales,
		TotalValue:  decimal.New(totalCents, -2),
		TotalPages:  repository.TotalPages(totalSales, f.Limit),
		CurrentPage: f.Page,
	}, nil
}

func reportWhere(f repository.SalesReportFilters) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.StartDate != nil {
		conds = append(conds, "s.created_at >= ?")
		args = append(args, f.StartDate.UTC())
	}
	if f.EndDate != nil {
		conds = append(conds, "s.created_at <= ?")
		args = append(args, f.EndDate.UTC())
	}
	if f.PartnerID != nil {
		conds = append(conds, "s.partner_id = ?")
		args = append(args, *f.PartnerID)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
