package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesReportQuery filtros del reporte tal como los envía el llamador.
// Fechas en formato YYYY-MM-DD; page y limit en cero usan los valores por defecto.
type SalesReportQuery struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	PartnerID *int64 `json:"partnerId,omitempty"`
	Page      int    `json:"page,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

// ReportFilters eco de los filtros recibidos (strings, no fechas interpretadas).
type ReportFilters struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	PartnerID *int64 `json:"partnerId,omitempty"`
}

// SalesReportRow fila del reporte. Las relaciones nunca son nulas: si faltan se
// proyectan como {id: 0, name: ""}.
type SalesReportRow struct {
	ID        int64           `json:"id"`
	Value     decimal.Decimal `json:"value"`
	Quantity  int             `json:"quantity"`
	CreatedAt time.Time       `json:"createdAt"`
	Product   RefResponse     `json:"product"`
	Customer  RefResponse     `json:"customer"`
	Partner   RefResponse     `json:"partner"`
}

// SalesReportResponse reporte paginado con totales sobre todas las coincidencias.
type SalesReportResponse struct {
	TotalSales  int              `json:"totalSales"`
	TotalValue  decimal.Decimal  `json:"totalValue"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	Limit       int              `json:"limit"`
	Filters     ReportFilters    `json:"filters"`
	Sales       []SalesReportRow `json:"sales"`
}
