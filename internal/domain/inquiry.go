package domain

import (
	"fmt"
	"time"
)

// InquiryStatus — статус обработки заявки.
type InquiryStatus string

const (
	InquiryStatusPending   InquiryStatus = "pending"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// ParseInquiryStatus проверяет строковое значение статуса.
func ParseInquiryStatus(s string) (InquiryStatus, error) {
	switch InquiryStatus(s) {
	case InquiryStatusPending, InquiryStatusContacted, InquiryStatusClosed:
		return InquiryStatus(s), nil
	default:
		return "", fmt.Errorf("unknown inquiry status %q", s)
	}
}

// Inquiry — заявка покупателя по товару.
// ProductCode и ProductName — снимок данных товара на момент подачи заявки;
// последующие изменения товара на заявку не влияют.
type Inquiry struct {
	ID            string
	ProductDbID   string
	ProductCode   string
	ProductName   string
	CustomerEmail string
	CustomerPhone string
	Status        InquiryStatus
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// NewInquiry снимает текущие артикул и название товара в новую заявку.
func NewInquiry(product *Product, customerEmail, customerPhone string) *Inquiry {
	return &Inquiry{
		ProductDbID:   product.ID,
		ProductCode:   product.Code,
		ProductName:   product.Name,
		CustomerEmail: customerEmail,
		CustomerPhone: customerPhone,
		Status:        InquiryStatusPending,
	}
}
