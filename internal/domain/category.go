package domain

import "time"

// Category описывает категорию товаров.
// Count — денормализованное число товаров категории; поддерживается
// мутациями товаров и пересчитывается на чтении.
type Category struct {
	ID        string
	Name      string
	Image     *string
	Count     int64
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewCategory(name string, image *string) *Category {
	return &Category{
		Name:  name,
		Image: image,
	}
}
