package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

const reportDateLayout = "2006-01-02"

// ReportUseCase arma el reporte de ventas: interpreta filtros, delega la consulta y
// proyecta cada venta a una fila con relaciones nunca nulas.
type ReportUseCase struct {
	repo         repository.ReportRepository
	defaultLimit int
}

// NewReportUseCase construye el caso de uso. defaultLimit ≤ 0 usa dto.DefaultLimit.
func NewReportUseCase(repo repository.ReportRepository, defaultLimit int) *ReportUseCase {
	if defaultLimit <= 0 {
		defaultLimit = dto.DefaultLimit
	}
	return &ReportUseCase{repo: repo, defaultLimit: defaultLimit}
}

// GetSalesReport genera el reporte para los filtros dados.
func (uc *ReportUseCase) GetSalesReport(ctx context.Context, q dto.SalesReportQuery) (*dto.SalesReportResponse, error) {
	filters, err := uc.buildFilters(q)
	if err != nil {
		return nil, err
	}

	result, err := uc.repo.GetSalesReport(ctx, filters)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.SalesReportRow, 0, len(result.Sales))
	for _, s := range result.Sales {
		rows = append(rows, toReportRow(s))
	}

	return &dto.SalesReportResponse{
		TotalSales:  result.TotalSales,
		TotalValue:  result.TotalValue,
		TotalPages:  result.TotalPages,
		CurrentPage: result.CurrentPage,
		Limit:       filters.Limit,
		Filters: dto.ReportFilters{
			StartDate: q.StartDate,
			EndDate:   q.EndDate,
			PartnerID: q.PartnerID,
		},
		Sales: rows,
	}, nil
}

func (uc *ReportUseCase) buildFilters(q dto.SalesReportQuery) (repository.SalesReportFilters, error) {
	var f repository.SalesReportFilters

	if q.StartDate != "" {
		start, err := time.ParseInLocation(reportDateLayout, q.StartDate, time.UTC)
		if err != nil {
			return f, domain.NewValidationError("startDate inválido (YYYY-MM-DD): %q", q.StartDate)
		}
		f.StartDate = &start
	}
	if q.EndDate != "" {
		end, err := time.ParseInLocation(reportDateLayout, q.EndDate, time.UTC)
		if err != nil {
			return f, domain.NewValidationError("endDate inválido (YYYY-MM-DD): %q", q.EndDate)
		}
		// inclusivo hasta el final del día
		end = end.Add(24*time.Hour - time.Nanosecond)
		f.EndDate = &end
	}
	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		return f, domain.NewValidationError("startDate no puede ser posterior a endDate")
	}

	if q.PartnerID != nil {
		if *q.PartnerID <= 0 {
			return f, domain.NewValidationError("partnerId inválido: %d", *q.PartnerID)
		}
		id := *q.PartnerID
		f.PartnerID = &id
	}

	if q.Page < 0 || q.Limit < 0 {
		return f, domain.NewValidationError("page y limit no pueden ser negativos")
	}
	pr := dto.PageRequest{Page: q.Page, Limit: q.Limit}
	if pr.Limit == 0 {
		pr.Limit = uc.defaultLimit
	}
	pr = pr.WithDefaults()
	if err := pr.Validate(); err != nil {
		return f, err
	}
	f.Page, f.Limit = pr.Page, pr.Limit
	return f, nil
}

func toReportRow(s *entity.Sale) dto.SalesReportRow {
	row := dto.SalesReportRow{
		ID:        s.ID(),
		Value:     s.Value(),
		Quantity:  1, // cada venta es una unidad
		CreatedAt: s.CreatedAt(),
	}
	if p := s.Product(); p != nil {
		row.Product = dto.RefResponse{ID: p.ID(), Name: p.Name()}
	}
	if c := s.Customer(); c != nil {
		row.Customer = dto.RefResponse{ID: c.ID(), Name: c.Name()}
	}
	if p := s.Partner(); p != nil {
		row.Partner = dto.RefResponse{ID: p.ID(), Name: p.Name()}
	}
	return row
}
