// Package paging содержит арифметику постраничных выборок.
package paging

import "math"

// Page описывает параметры одной страницы выборки.
type Page struct {
	Page  int
	Limit int
}

// Normalize приводит номер страницы и размер к допустимым значениям.
// Неположительные значения заменяются на 1 и defaultLimit соответственно.
func Normalize(page, limit, defaultLimit int) Page {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	return Page{Page: page, Limit: limit}
}

// Offset возвращает смещение выборки: (page-1) * limit.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages возвращает ceil(total / limit).
func (p Page) TotalPages(total int) int {
	return int(math.Ceil(float64(total) / float64(p.Limit)))
}
