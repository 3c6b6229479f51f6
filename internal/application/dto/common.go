package dto

import (
	"math"

	"github.com/jhoicas/Marketplace-api/internal/domain"
)

// Valores por defecto de paginación.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageRequest paginación basada en página (page ≥ 1, limit ≥ 1).
type PageRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// WithDefaults aplica page=1 y limit=10 cuando vienen en cero.
func (p PageRequest) WithDefaults() PageRequest {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	return p
}

// Validate exige page ≥ 1, limit ≥ 1 y que el desplazamiento (page-1)×limit quepa en int.
func (p PageRequest) Validate() error {
	if p.Page < 1 {
		return domain.NewValidationError("page debe ser mayor o igual a 1")
	}
	if p.Limit < 1 {
		return domain.NewValidationError("limit debe ser mayor o igual a 1")
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return domain.NewValidationError("page %d fuera de rango para limit %d", p.Page, p.Limit)
	}
	return nil
}

// Paginated respuesta paginada genérica.
type Paginated[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// MapPaginated convierte los elementos de una página conservando los metadatos.
func MapPaginated[T, U any](in *Paginated[T], fn func(T) U) *Paginated[U] {
	out := &Paginated[U]{
		Data:       make([]U, 0, len(in.Data)),
		Total:      in.Total,
		Page:       in.Page,
		Limit:      in.Limit,
		TotalPages: in.TotalPages,
	}
	for _, v := range in.Data {
		out.Data = append(out.Data, fn(v))
	}
	return out
}

// ErrorResponse cuerpo de error.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
