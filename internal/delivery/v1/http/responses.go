package http

import (
	"time"

	"github.com/priyansh911911/Furniture-B/internal/domain"
	"github.com/priyansh911911/Furniture-B/internal/usecase"
)

// ProductResponse — представление товара в JSON-ответах. Цены отдаются
// в денежных единицах, во внутреннем представлении они хранятся в центах.
type ProductResponse struct {
	ID             string     `json:"id"`
	ProductID      string     `json:"productId"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Price          float64    `json:"price"`
	OriginalPrice  *float64   `json:"originalPrice,omitempty"`
	Category       string     `json:"category"`
	Images         []string   `json:"images"`
	MainImageIndex int        `json:"mainImageIndex"`
	Discount       int        `json:"discount"`
	IsNew          bool       `json:"isNew"`
	InStock        bool       `json:"inStock"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

type CategoryResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Image     *string    `json:"image,omitempty"`
	Count     int64      `json:"count"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type InquiryResponse struct {
	ID            string     `json:"id"`
	ProductDbID   string     `json:"productDbId"`
	ProductID     string     `json:"productId"`
	ProductName   string     `json:"productName"`
	CustomerEmail string     `json:"customerEmail"`
	CustomerPhone string     `json:"customerPhone"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Имя поля со списком различается по сущностям, остальная форма одинаковая.

type ProductListResponse struct {
	Products    []ProductResponse `json:"products"`
	CurrentPage int               `json:"currentPage"`
	TotalPages  int               `json:"totalPages"`
	Total       int               `json:"total"`
}

type CategoryListResponse struct {
	Categories  []CategoryResponse `json:"categories"`
	CurrentPage int                `json:"currentPage"`
	TotalPages  int                `json:"totalPages"`
	Total       int                `json:"total"`
}

type InquiryListResponse struct {
	Inquiries   []InquiryResponse `json:"inquiries"`
	CurrentPage int               `json:"currentPage"`
	TotalPages  int               `json:"totalPages"`
	Total       int               `json:"total"`
}

type ContactListResponse struct {
	Contacts    []ContactResponse `json:"contacts"`
	CurrentPage int               `json:"currentPage"`
	TotalPages  int               `json:"totalPages"`
	Total       int               `json:"total"`
}

func toProductResponse(p *domain.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = make([]string, 0)
	}

	return ProductResponse{
		ID:             p.ID,
		ProductID:      p.Code,
		Name:           p.Name,
		Description:    p.Description,
		Price:          centsToPrice(p.PriceCents),
		OriginalPrice:  centsToPricePtr(p.OriginalPriceCents),
		Category:       p.Category,
		Images:         images,
		MainImageIndex: p.MainImageIndex,
		Discount:       p.Discount,
		IsNew:          p.IsNew,
		InStock:        p.InStock,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Image:     c.Image,
		Count:     c.Count,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toInquiryResponse(i *domain.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:            i.ID,
		ProductDbID:   i.ProductDbID,
		ProductID:     i.ProductCode,
		ProductName:   i.ProductName,
		CustomerEmail: i.CustomerEmail,
		CustomerPhone: i.CustomerPhone,
		Status:        string(i.Status),
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func toContactResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func toProductListResponse(res *usecase.ListResult[domain.Product]) *ProductListResponse {
	items := make([]ProductResponse, 0, len(res.Items))
	for i := range res.Items {
		items = append(items, toProductResponse(&res.Items[i]))
	}

	return &ProductListResponse{
		Products:    items,
		CurrentPage: res.CurrentPage,
		TotalPages:  res.TotalPages,
		Total:       res.Total,
	}
}

func toCategoryListResponse(res *usecase.ListResult[domain.Category]) *CategoryListResponse {
	items := make([]CategoryResponse, 0, len(res.Items))
	for i := range res.Items {
		items = append(items, toCategoryResponse(&res.Items[i]))
	}

	return &CategoryListResponse{
		Categories:  items,
		CurrentPage: res.CurrentPage,
		TotalPages:  res.TotalPages,
		Total:       res.Total,
	}
}

func toInquiryListResponse(res *usecase.ListResult[domain.Inquiry]) *InquiryListResponse {
	items := make([]InquiryResponse, 0, len(res.Items))
	for i := range res.Items {
		items = append(items, toInquiryResponse(&res.Items[i]))
	}

	return &InquiryListResponse{
		Inquiries:   items,
		CurrentPage: res.CurrentPage,
		TotalPages:  res.TotalPages,
		Total:       res.Total,
	}
}

func toContactListResponse(res *usecase.ListResult[domain.Contact]) *ContactListResponse {
	items := make([]ContactResponse, 0, len(res.Items))
	for i := range res.Items {
		items = append(items, toContactResponse(&res.Items[i]))
	}

	return &ContactListResponse{
		Contacts:    items,
		CurrentPage: res.CurrentPage,
		TotalPages:  res.TotalPages,
		Total:       res.Total,
	}
}
