package usecase

import (
	"context"

	"github.com/priyansh911911/Furniture-B/internal/domain"
	"github.com/priyansh911911/Furniture-B/pkg/e"
	"github.com/priyansh911911/Furniture-B/pkg/logger"
	"github.com/priyansh911911/Furniture-B/pkg/paging"
)

// ContactUseCase ведёт журнал сообщений формы обратной связи.
type ContactUseCase struct {
	contactRepo ContactRepository
	logger      logger.Logger
}

func NewContactUC(contactRepo ContactRepository, logger logger.Logger) *ContactUseCase {
	return &ContactUseCase{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

func (c *ContactUseCase) SubmitContact(ctx context.Context, req *SubmitContactReq) (*domain.Contact, error) {
	const op = "ContactUseCase.SubmitContact"

	contact, err := c.contactRepo.Create(ctx, domain.NewContact(req.Name, req.Email, req.Phone, req.Message))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return contact, nil
}

func (c *ContactUseCase) ListContacts(ctx context.Context, req *ListReq) (*ListResult[domain.Contact], error) {
	const op = "ContactUseCase.ListContacts"

	pg := paging.Normalize(req.Page, req.Limit, DefaultContactPageSize)

	res, err := listPage(ctx, pg, c.contactRepo.List, c.contactRepo.Count)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}
