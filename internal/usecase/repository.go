package usecase

import (
	"context"
	"time"

	"github.com/priyansh911911/Furniture-B/internal/domain"
)

type ProductRepository interface {
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, category string, limit, offset int) ([]domain.Product, error)
	// CountByCategory считает товары категории; пустая категория — все товары.
	CountByCategory(ctx context.Context, category string) (int64, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	UpdateImage(ctx context.Context, id string, image string) (*domain.Category, error)
	Delete(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context, limit, offset int) ([]domain.Category, error)
	Count(ctx context.Context) (int64, error)
	// AdjustCount смещает денормализованный счётчик товаров категории.
	// Отсутствие категории с таким именем не является ошибкой.
	AdjustCount(ctx context.Context, name string, delta int64) error
}

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *domain.Inquiry) (*domain.Inquiry, error)
	UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error)
	List(ctx context.Context, limit, offset int) ([]domain.Inquiry, error)
	Count(ctx context.Context) (int64, error)
}

type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	List(ctx context.Context, limit, offset int) ([]domain.Contact, error)
	Count(ctx context.Context) (int64, error)
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

type SessionRepository interface {
	Set(ctx context.Context, sid string, adminID string, ttl time.Duration) error
	Get(ctx context.Context, sid string) (string, error)
	Delete(ctx context.Context, sid string) error
}
