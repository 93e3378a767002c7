package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/priyansh911911/Furniture-B/internal/domain"
	"github.com/priyansh911911/Furniture-B/internal/repository/pgdb/converter"
	"github.com/priyansh911911/Furniture-B/pkg/e"
)

const contactColumns = `id, name, email, phone, message, created_at`

// ContactRepo реализует журнал сообщений обратной связи поверх PostgreSQL.
type ContactRepo struct {
	pool *pgxpool.Pool
	conv converter.ContactConverter
}

func NewContactRepo(pool *pgxpool.Pool, conv converter.ContactConverter) *ContactRepo {
	return &ContactRepo{pool: pool, conv: conv}
}

func scanContact(row pgx.Row) (*converter.ContactModel, error) {
	var model converter.ContactModel
	err := row.Scan(
		&model.ID, &model.Name, &model.Email, &model.Phone,
		&model.Message, &model.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &model, nil
}

func (c *ContactRepo) Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	query := `
		INSERT INTO contacts (name, email, phone, message)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + contactColumns

	m := c.conv.ToModel(contact)
	model, err := scanContact(c.pool.QueryRow(ctx, query, m.Name, m.Email, m.Phone, m.Message))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

func (c *ContactRepo) List(ctx context.Context, limit, offset int) ([]domain.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := c.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Contact, 0)
	for rows.Next() {
		model, err := scanContact(rows)
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

func (c *ContactRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := c.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}
