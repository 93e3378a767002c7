package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/priyansh911911/Furniture-B/internal/domain"
	"github.com/priyansh911911/Furniture-B/internal/repository/pgdb/converter"
	"github.com/priyansh911911/Furniture-B/pkg/e"
)

const categoryColumns = `id, name, image, count, created_at, updated_at`

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

func scanCategory(row pgx.Row) (*converter.CategoryModel, error) {
	var model converter.CategoryModel
	err := row.Scan(
		&model.ID, &model.Name, &model.Image, &model.Count,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &model, nil
}

func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories (name, image)
		VALUES ($1, $2)
		RETURNING ` + categoryColumns

	model, err := scanCategory(c.pool.QueryRow(ctx, query, category.Name, category.Image))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryExists)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

func (c *CategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	if !isValidUUID(id) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
	}

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	model, err := scanCategory(c.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

func (c *CategoryRepo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name = $1`

	model, err := scanCategory(c.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

func (c *CategoryRepo) UpdateImage(ctx context.Context, id string, image string) (*domain.Category, error) {
	if !isValidUUID(id) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
	}

	query := `
		UPDATE categories
		SET image = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + categoryColumns

	model, err := scanCategory(c.pool.QueryRow(ctx, query, id, image))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

// Delete удаляет категорию. Вызывается внутри транзакции после проверки,
// что категория не используется товарами.
func (c *CategoryRepo) Delete(ctx context.Context, id string) (*domain.Category, error) {
	if !isValidUUID(id) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
	}

	query := `
		DELETE FROM categories
		WHERE id = $1
		RETURNING ` + categoryColumns

	model, err := scanCategory(q(ctx, c.pool).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

func (c *CategoryRepo) List(ctx context.Context, limit, offset int) ([]domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := c.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Category, 0)
	for rows.Next() {
		model, err := scanCategory(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *c.conv.ToEntity(model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (c *CategoryRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := c.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}

// AdjustCount смещает денормализованный счётчик товаров категории.
// Счётчик не уходит ниже нуля, отсутствие категории не является ошибкой.
func (c *CategoryRepo) AdjustCount(ctx context.Context, name string, delta int64) error {
	query := `
		UPDATE categories
		SET count = GREATEST(count + $2, 0), updated_at = NOW()
		WHERE name = $1`

	if _, err := q(ctx, c.pool).Exec(ctx, query, name, delta); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
