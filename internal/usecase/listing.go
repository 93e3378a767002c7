package usecase

import (
	"context"
	"time"

	"github.com/priyansh911911/Furniture-B/pkg/e"
	"github.com/priyansh911911/Furniture-B/pkg/paging"
)

// listTimeout — бюджет времени на одну постраничную выборку из хранилища.
const listTimeout = 8 * time.Second

// ListResult — страница выборки с метаданными пагинации.
type ListResult[T any] struct {
	Items       []T
	CurrentPage int
	TotalPages  int
	Total       int
}

// listPage выполняет постраничную выборку: элементы страницы и общее число
// записей по фильтру. Страница за пределами выборки — успех с пустым списком.
// По истечении бюджета времени возвращается ошибка недоступности хранилища.
func listPage[T any](
	ctx context.Context,
	pg paging.Page,
	fetch func(ctx context.Context, limit, offset int) ([]T, error),
	count func(ctx context.Context) (int64, error),
) (*ListResult[T], error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	items, err := fetch(ctx, pg.Limit, pg.Offset())
	if err != nil {
		return nil, e.ClassifyStore(err)
	}

	total, err := count(ctx)
	if err != nil {
		return nil, e.ClassifyStore(err)
	}

	if items == nil {
		items = make([]T, 0)
	}

	return &ListResult[T]{
		Items:       items,
		CurrentPage: pg.Page,
		TotalPages:  pg.TotalPages(int(total)),
		Total:       int(total),
	}, nil
}
