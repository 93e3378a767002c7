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

const productColumns = `
	id, product_id, name, description, price_cents, original_price_cents,
	category, images, main_image_index, discount, is_new, in_stock,
	created_at, updated_at`

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

func scanProduct(row pgx.Row) (*converter.ProductModel, error) {
	var model converter.ProductModel
	err := row.Scan(
		&model.ID, &model.Code, &model.Name, &model.Description,
		&model.PriceCents, &model.OriginalPriceCents,
		&model.Category, &model.Images, &model.MainImageIndex,
		&model.Discount, &model.IsNew, &model.InStock,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &model, nil
}

// Insert создаёт товар. Вызывается внутри транзакции вместе с
// корректировкой счётчика категории.
func (p *ProductRepo) Insert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (
			product_id, name, description, price_cents, original_price_cents,
			category, images, main_image_index, discount, is_new, in_stock
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + productColumns

	m := p.conv.ToModel(product)
	model, err := scanProduct(q(ctx, p.pool).QueryRow(ctx, query,
		m.Code, m.Name, m.Description, m.PriceCents, m.OriginalPriceCents,
		m.Category, m.Images, m.MainImageIndex, m.Discount, m.IsNew, m.InStock,
	))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Update перезаписывает все изменяемые поля товара.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if !isValidUUID(product.ID) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	query := `
		UPDATE products SET
			name = $2,
			description = $3,
			price_cents = $4,
			original_price_cents = $5,
			category = $6,
			images = $7,
			main_image_index = $8,
			discount = $9,
			is_new = $10,
			in_stock = $11,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns

	m := p.conv.ToModel(product)
	model, err := scanProduct(q(ctx, p.pool).QueryRow(ctx, query,
		m.ID, m.Name, m.Description, m.PriceCents, m.OriginalPriceCents,
		m.Category, m.Images, m.MainImageIndex, m.Discount, m.IsNew, m.InStock,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Delete удаляет товар и возвращает удалённую запись, чтобы вызывающий
// знал категорию для корректировки счётчика.
func (p *ProductRepo) Delete(ctx context.Context, id string) (*domain.Product, error) {
	if !isValidUUID(id) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	query := `
		DELETE FROM products
		WHERE id = $1
		RETURNING ` + productColumns

	model, err := scanProduct(q(ctx, p.pool).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

func (p *ProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if !isValidUUID(id) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	model, err := scanProduct(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// List возвращает страницу товаров, отсортированную от новых к старым.
// Пустая категория означает выборку по всем категориям.
func (p *ProductRepo) List(ctx context.Context, category string, limit, offset int) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1 = '' OR category = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := p.pool.Query(ctx, query, category, limit, offset)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		model, err := scanProduct(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *p.conv.ToEntity(model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// CountByCategory считает товары категории, пустая категория — все товары.
// Работает и внутри транзакции удаления категории.
func (p *ProductRepo) CountByCategory(ctx context.Context, category string) (int64, error) {
	query := `SELECT COUNT(*) FROM products WHERE ($1 = '' OR category = $1)`

	var count int64
	if err := q(ctx, p.pool).QueryRow(ctx, query, category).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}
