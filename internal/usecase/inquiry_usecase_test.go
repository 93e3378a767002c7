package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyansh911911/Furniture-B/internal/domain"
	"github.com/priyansh911911/Furniture-B/pkg/e"
)

func newInquiryUCForTest() (*InquiryUseCase, *fakeInquiryRepo, *fakeProductRepo) {
	inquiryRepo := newFakeInquiryRepo()
	productRepo := newFakeProductRepo()
	uc := NewInquiryUC(inquiryRepo, productRepo, nopLogger{})
	return uc, inquiryRepo, productRepo
}

func TestSubmitInquiry(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots product code and name at submission time", func(t *testing.T) {
		uc, _, productRepo := newInquiryUCForTest()

		product, err := productRepo.Insert(ctx, domain.NewProduct(
			"Диван Осло", "описание", 59999, nil, "Sofas", nil, 0, 0, false))
		require.NoError(t, err)

		inquiry, err := uc.SubmitInquiry(ctx, &SubmitInquiryReq{
			ProductDbID:   product.ID,
			CustomerEmail: "buyer@example.com",
			CustomerPhone: "+79990001122",
		})
		require.NoError(t, err)

		assert.Equal(t, product.ID, inquiry.ProductDbID)
		assert.Equal(t, product.Code, inquiry.ProductCode)
		assert.Equal(t, "Диван Осло", inquiry.ProductName)
		assert.Equal(t, domain.InquiryStatusPending, inquiry.Status)

		// переименование товара не меняет снимок в заявке
		product.Name = "Диван Берген"
		_, err = productRepo.Update(ctx, product)
		require.NoError(t, err)

		res, err := uc.ListInquiries(ctx, &ListReq{})
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "Диван Осло", res.Items[0].ProductName)
	})

	t.Run("unknown product returns not found", func(t *testing.T) {
		uc, inquiryRepo, _ := newInquiryUCForTest()

		_, err := uc.SubmitInquiry(ctx, &SubmitInquiryReq{ProductDbID: "missing"})
		require.ErrorIs(t, err, e.ErrProductNotFound)

		count, err := inquiryRepo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestUpdateInquiryStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("any valid status can be set from any other", func(t *testing.T) {
		uc, _, productRepo := newInquiryUCForTest()

		product, err := productRepo.Insert(ctx, domain.NewProduct(
			"Диван", "описание", 100, nil, "Sofas", nil, 0, 0, false))
		require.NoError(t, err)

		inquiry, err := uc.SubmitInquiry(ctx, &SubmitInquiryReq{ProductDbID: product.ID})
		require.NoError(t, err)

		updated, err := uc.UpdateInquiryStatus(ctx, inquiry.ID, "closed")
		require.NoError(t, err)
		assert.Equal(t, domain.InquiryStatusClosed, updated.Status)

		// переход назад тоже допустим
		updated, err = uc.UpdateInquiryStatus(ctx, inquiry.ID, "pending")
		require.NoError(t, err)
		assert.Equal(t, domain.InquiryStatusPending, updated.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		uc, _, _ := newInquiryUCForTest()

		_, err := uc.UpdateInquiryStatus(ctx, "inq-1", "archived")
		require.ErrorIs(t, err, e.ErrInvalidStatus)
	})

	t.Run("unknown inquiry returns not found", func(t *testing.T) {
		uc, _, _ := newInquiryUCForTest()

		_, err := uc.UpdateInquiryStatus(ctx, "missing", "contacted")
		require.ErrorIs(t, err, e.ErrInquiryNotFound)
	})
}
