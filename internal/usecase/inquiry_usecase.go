package usecase

import (
	"context"

	"github.com/priyansh911911/Furniture-B/internal/domain"
	"github.com/priyansh911911/Furniture-B/pkg/e"
	"github.com/priyansh911911/Furniture-B/pkg/logger"
	"github.com/priyansh911911/Furniture-B/pkg/paging"
)

// InquiryUseCase обрабатывает заявки покупателей по товарам.
type InquiryUseCase struct {
	inquiryRepo InquiryRepository
	productRepo ProductRepository
	logger      logger.Logger
}

func NewInquiryUC(inquiryRepo InquiryRepository, productRepo ProductRepository, logger logger.Logger) *InquiryUseCase {
	return &InquiryUseCase{
		inquiryRepo: inquiryRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// SubmitInquiry создаёт заявку по существующему товару, снимая его текущие
// артикул и название. Снимок не обновляется при последующих изменениях товара.
func (i *InquiryUseCase) SubmitInquiry(ctx context.Context, req *SubmitInquiryReq) (*domain.Inquiry, error) {
	const op = "InquiryUseCase.SubmitInquiry"

	product, err := i.productRepo.GetByID(ctx, req.ProductDbID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	inquiry, err := i.inquiryRepo.Create(ctx, domain.NewInquiry(product, req.CustomerEmail, req.CustomerPhone))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return inquiry, nil
}

// ListInquiries возвращает страницу заявок, самые свежие первыми.
func (i *InquiryUseCase) ListInquiries(ctx context.Context, req *ListReq) (*ListResult[domain.Inquiry], error) {
	const op = "InquiryUseCase.ListInquiries"

	pg := paging.Normalize(req.Page, req.Limit, DefaultInquiryPageSize)

	res, err := listPage(ctx, pg, i.inquiryRepo.List, i.inquiryRepo.Count)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}

// UpdateInquiryStatus устанавливает статус заявки. Переходы между статусами
// не ограничены: любой допустимый статус можно установить из любого.
func (i *InquiryUseCase) UpdateInquiryStatus(ctx context.Context, id string, status string) (*domain.Inquiry, error) {
	const op = "InquiryUseCase.UpdateInquiryStatus"

	parsed, err := domain.ParseInquiryStatus(status)
	if err != nil {
		return nil, e.Wrap(op, e.ErrInvalidStatus)
	}

	inquiry, err := i.inquiryRepo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return inquiry, nil
}
