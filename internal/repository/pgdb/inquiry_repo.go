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

const inquiryColumns = `
	id, product_db_id, product_code, product_name,
	customer_email, customer_phone, status, created_at, updated_at`

// InquiryRepo реализует репозиторий заявок на товары поверх PostgreSQL.
type InquiryRepo struct {
	pool *pgxpool.Pool
	conv converter.InquiryConverter
}

func NewInquiryRepo(pool *pgxpool.Pool, conv converter.InquiryConverter) *InquiryRepo {
	return &InquiryRepo{pool: pool, conv: conv}
}

func scanInquiry(row pgx.Row) (*converter.InquiryModel, error) {
	var model converter.InquiryModel
	err := row.Scan(
		&model.ID, &model.ProductDbID, &model.ProductCode, &model.ProductName,
		&model.CustomerEmail, &model.CustomerPhone, &model.Status,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &model, nil
}

func (i *InquiryRepo) Create(ctx context.Context, inquiry *domain.Inquiry) (*domain.Inquiry, error) {
	query := `
		INSERT INTO inquiries (
			product_db_id, product_code, product_name,
			customer_email, customer_phone, status
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + inquiryColumns

	m := i.conv.ToModel(inquiry)
	model, err := scanInquiry(i.pool.QueryRow(ctx, query,
		m.ProductDbID, m.ProductCode, m.ProductName,
		m.CustomerEmail, m.CustomerPhone, m.Status,
	))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return i.conv.ToEntity(model), nil
}

func (i *InquiryRepo) UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	if !isValidUUID(id) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrInquiryNotFound)
	}

	query := `
		UPDATE inquiries
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + inquiryColumns

	model, err := scanInquiry(i.pool.QueryRow(ctx, query, id, string(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrInquiryNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return i.conv.ToEntity(model), nil
}

func (i *InquiryRepo) List(ctx context.Context, limit, offset int) ([]domain.Inquiry, error) {
	query := `
		SELECT ` + inquiryColumns + `
		FROM inquiries
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := i.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Inquiry, 0)
	for rows.Next() {
		model, err := scanInquiry(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *i.conv.ToEntity(model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (i *InquiryRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := i.pool.QueryRow(ctx, `SELECT COUNT(*) FROM inquiries`).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}
