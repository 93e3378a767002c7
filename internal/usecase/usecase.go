package usecase

import (
	"context"

	"github.com/priyansh911911/Furniture-B/internal/domain"
)

type ProductUC interface {
	ListProducts(ctx context.Context, req *ListProductsReq) (*ListResult[domain.Product], error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, req *SaveProductReq) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, req *SaveProductReq) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type CategoryUC interface {
	ListCategories(ctx context.Context, req *ListReq) (*ListResult[domain.Category], error)
	CreateCategory(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error)
	UpdateCategoryImage(ctx context.Context, id string, image ProductImage) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type InquiryUC interface {
	SubmitInquiry(ctx context.Context, req *SubmitInquiryReq) (*domain.Inquiry, error)
	ListInquiries(ctx context.Context, req *ListReq) (*ListResult[domain.Inquiry], error)
	UpdateInquiryStatus(ctx context.Context, id string, status string) (*domain.Inquiry, error)
}

type ContactUC interface {
	SubmitContact(ctx context.Context, req *SubmitContactReq) (*domain.Contact, error)
	ListContacts(ctx context.Context, req *ListReq) (*ListResult[domain.Contact], error)
}

type AuthUC interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, sid string) error
	ValidateSession(ctx context.Context, sid string) bool
	CreateInitialAdmin(ctx context.Context) error
}
