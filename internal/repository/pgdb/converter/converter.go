//go:generate goverter gen github.com/priyansh911911/Furniture-B/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/priyansh911911/Furniture-B/internal/domain"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
}

// InquiryConverter преобразует сущности Inquiry между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertInquiryStatus
// goverter:extend ConvertInquiryStatusString
type InquiryConverter interface {
	ToModel(entity *domain.Inquiry) *InquiryModel
	ToEntity(model *InquiryModel) *domain.Inquiry
}

// ContactConverter преобразует сущности Contact между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
type ContactConverter interface {
	ToModel(entity *domain.Contact) *ContactModel
	ToEntity(model *ContactModel) *domain.Contact
}

// AdminConverter преобразует сущности Admin между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
type AdminConverter interface {
	ToModel(entity *domain.Admin) *AdminModel
	ToEntity(model *AdminModel) *domain.Admin
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertInquiryStatus(s string) domain.InquiryStatus {
	return domain.InquiryStatus(s)
}

func ConvertInquiryStatusString(s domain.InquiryStatus) string {
	return string(s)
}
