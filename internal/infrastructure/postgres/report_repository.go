package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura del reporte de ventas.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador del reporte.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetSalesReport ejecuta en paralelo la página de ventas y el agregado (conteo + suma de
// value) sobre todas las coincidencias. Sin consistencia entre ambas lecturas.
func (r *ReportRepo) GetSalesReport(ctx context.Context, f repository.SalesReportFilters) (*repository.SalesReportResult, error) {
	where, args := reportWhere(f)
	page, limit := f.Page, f.Limit
	skip := repository.PageOffset(page, limit)

	var (
		sales      []*entity.Sale
		totalSales int
		totalValue decimal.Decimal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n := len(args)
		query := persistence.SaleSelect + where + persistence.SaleOrder +
			fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2)
		var err error
		sales, err = querySales(gctx, r.pool, query, append(append([]any{}, args...), limit, skip)...)
		if err != nil {
			return fmt.Errorf("report.sales: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		query := `SELECT COUNT(*), COALESCE(SUM(s.value), 0) FROM sales s` + where
		if err := r.pool.QueryRow(gctx, query, args...).Scan(&totalSales, &totalValue); err != nil {
			return fmt.Errorf("report.totals: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if sales == nil {
		sales = []*entity.Sale{}
	}

	return &repository.SalesReportResult{
		Sales:       sales,
		TotalSales:  totalSales,
		TotalValue:  totalValue,
		TotalPages:  repository.TotalPages(totalSales, limit),
		CurrentPage: page,
	}, nil
}

// reportWhere compone el WHERE con placeholders posicionales.
func reportWhere(f repository.SalesReportFilters) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		conds = append(conds, fmt.Sprintf("s.created_at >= $%d", len(args)))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		conds = append(conds, fmt.Sprintf("s.created_at <= $%d", len(args)))
	}
	if f.PartnerID != nil {
		args = append(args, *f.PartnerID)
		conds = append(conds, fmt.Sprintf("s.partner_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
