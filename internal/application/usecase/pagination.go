package usecase

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

func validatePage(page, limit int) error {
	return dto.PageRequest{Page: page, Limit: limit}.Validate()
}

// paginate ejecuta la lectura de la página y el conteo en paralelo. No hay consistencia
// entre ambas consultas: una escritura concurrente puede desalinear total y página.
func paginate[T any](
	ctx context.Context,
	page, limit int,
	fetch func(ctx context.Context, skip, take int) ([]T, error),
	count func(ctx context.Context) (int, error),
) (*dto.Paginated[T], error) {
	if err := validatePage(page, limit); err != nil {
		return nil, err
	}
	skip := repository.PageOffset(page, limit)

	var (
		items []T
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = fetch(gctx, skip, limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return &dto.Paginated[T]{
		Data:       items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: repository.TotalPages(total, limit),
	}, nil
}
