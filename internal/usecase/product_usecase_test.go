package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyansh911911/Furniture-B/pkg/e"
)

func newProductUCForTest() (*ProductUseCase, *fakeProductRepo, *fakeCategoryRepo, *fakeTxManager, *fakeImagesInfra) {
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo()
	tx := &fakeTxManager{}
	images := newFakeImagesInfra()
	uc := NewProductUC(productRepo, categoryRepo, tx, images, nopLogger{})
	return uc, productRepo, categoryRepo, tx, images
}

func saveReq(name, category string) *SaveProductReq {
	return &SaveProductReq{
		Name:        name,
		Description: "описание для теста",
		Category:    category,
		PriceCents:  59999,
	}
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("creates product with generated code and in stock by default", func(t *testing.T) {
		uc, _, categoryRepo, tx, _ := newProductUCForTest()

		created, err := uc.CreateProduct(ctx, saveReq("Диван Осло", "Sofas"))
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.Regexp(t, `^FUR-[0-9A-Z]+-[0-9A-Z]{4}$`, created.Code)
		assert.True(t, created.InStock)
		assert.Equal(t, 1, tx.calls)
		assert.Equal(t, int64(1), categoryRepo.adjustments["Sofas"])
	})

	t.Run("explicit inStock false is preserved", func(t *testing.T) {
		uc, _, _, _, _ := newProductUCForTest()

		req := saveReq("Кресло", "Chairs")
		inStock := false
		req.InStock = &inStock

		created, err := uc.CreateProduct(ctx, req)
		require.NoError(t, err)
		assert.False(t, created.InStock)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		uc, _, _, tx, _ := newProductUCForTest()

		_, err := uc.CreateProduct(ctx, saveReq("  ", "Sofas"))
		require.ErrorIs(t, err, e.ErrMissingFields)
		assert.Zero(t, tx.calls)
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		uc, _, _, _, _ := newProductUCForTest()

		req := saveReq("Диван", "Sofas")
		req.PriceCents = 0
		_, err := uc.CreateProduct(ctx, req)
		require.ErrorIs(t, err, e.ErrInvalidPrice)
	})

	t.Run("uploaded images are cleaned up when transaction fails", func(t *testing.T) {
		uc, _, _, tx, images := newProductUCForTest()
		tx.txError = errors.New("insert failed")

		req := saveReq("Диван", "Sofas")
		req.Images = []ProductImage{{Name: "a.jpg"}, {Name: "b.jpg"}}

		_, err := uc.CreateProduct(ctx, req)
		require.Error(t, err)
		assert.ElementsMatch(t, images.uploaded, images.cleaned)
		assert.Len(t, images.cleaned, 2)
	})

	t.Run("failed uploads are dropped without failing the request", func(t *testing.T) {
		uc, _, _, _, images := newProductUCForTest()
		images.dropAll = true

		req := saveReq("Диван", "Sofas")
		req.Images = []ProductImage{{Name: "broken.jpg"}}

		created, err := uc.CreateProduct(ctx, req)
		require.NoError(t, err)
		assert.Empty(t, created.Images)
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps images and code when no new files uploaded", func(t *testing.T) {
		uc, _, _, _, _ := newProductUCForTest()

		req := saveReq("Диван", "Sofas")
		req.Images = []ProductImage{{Name: "a.jpg"}}
		created, err := uc.CreateProduct(ctx, req)
		require.NoError(t, err)
		require.Len(t, created.Images, 1)

		updated, err := uc.UpdateProduct(ctx, created.ID, saveReq("Диван XL", "Sofas"))
		require.NoError(t, err)

		assert.Equal(t, created.Code, updated.Code)
		assert.Equal(t, created.Images, updated.Images)
		assert.Equal(t, "Диван XL", updated.Name)
	})

	t.Run("replaces images when new files uploaded", func(t *testing.T) {
		uc, _, _, _, _ := newProductUCForTest()

		req := saveReq("Диван", "Sofas")
		req.Images = []ProductImage{{Name: "old.jpg"}}
		created, err := uc.CreateProduct(ctx, req)
		require.NoError(t, err)

		upd := saveReq("Диван", "Sofas")
		upd.Images = []ProductImage{{Name: "new1.jpg"}, {Name: "new2.jpg"}}

		updated, err := uc.UpdateProduct(ctx, created.ID, upd)
		require.NoError(t, err)
		assert.Len(t, updated.Images, 2)
		assert.NotEqual(t, created.Images, updated.Images)
	})

	t.Run("category change adjusts both counters", func(t *testing.T) {
		uc, _, categoryRepo, _, _ := newProductUCForTest()

		created, err := uc.CreateProduct(ctx, saveReq("Диван", "Sofas"))
		require.NoError(t, err)
		require.Equal(t, int64(1), categoryRepo.adjustments["Sofas"])

		_, err = uc.UpdateProduct(ctx, created.ID, saveReq("Диван", "Beds"))
		require.NoError(t, err)

		assert.Equal(t, int64(0), categoryRepo.adjustments["Sofas"])
		assert.Equal(t, int64(1), categoryRepo.adjustments["Beds"])
	})

	t.Run("unknown product returns not found", func(t *testing.T) {
		uc, _, _, _, _ := newProductUCForTest()

		_, err := uc.UpdateProduct(ctx, "missing", saveReq("Диван", "Sofas"))
		require.ErrorIs(t, err, e.ErrProductNotFound)
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes product and decrements category counter", func(t *testing.T) {
		uc, productRepo, categoryRepo, _, _ := newProductUCForTest()

		created, err := uc.CreateProduct(ctx, saveReq("Диван", "Sofas"))
		require.NoError(t, err)

		require.NoError(t, uc.DeleteProduct(ctx, created.ID))

		_, err = productRepo.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, e.ErrProductNotFound)
		assert.Equal(t, int64(0), categoryRepo.adjustments["Sofas"])
	})

	t.Run("unknown product returns not found", func(t *testing.T) {
		uc, _, _, _, _ := newProductUCForTest()

		err := uc.DeleteProduct(ctx, "missing")
		require.ErrorIs(t, err, e.ErrProductNotFound)
	})
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by exact category and paginates", func(t *testing.T) {
		uc, _, _, _, _ := newProductUCForTest()

		for i := 0; i < 10; i++ {
			_, err := uc.CreateProduct(ctx, saveReq("Диван", "Sofas"))
			require.NoError(t, err)
		}
		_, err := uc.CreateProduct(ctx, saveReq("Кровать", "Beds"))
		require.NoError(t, err)

		res, err := uc.ListProducts(ctx, &ListProductsReq{Category: "Sofas"})
		require.NoError(t, err)

		assert.Len(t, res.Items, DefaultProductPageSize)
		assert.Equal(t, 10, res.Total)
		assert.Equal(t, 2, res.TotalPages)
		assert.Equal(t, 1, res.CurrentPage)

		page2, err := uc.ListProducts(ctx, &ListProductsReq{Category: "Sofas", Page: 2})
		require.NoError(t, err)
		assert.Len(t, page2.Items, 2)
	})

	t.Run("page beyond range is an empty success", func(t *testing.T) {
		uc, _, _, _, _ := newProductUCForTest()

		_, err := uc.CreateProduct(ctx, saveReq("Диван", "Sofas"))
		require.NoError(t, err)

		res, err := uc.ListProducts(ctx, &ListProductsReq{Page: 99})
		require.NoError(t, err)

		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
		assert.Equal(t, 99, res.CurrentPage)
		assert.Equal(t, 1, res.Total)
	})

	t.Run("store deadline maps to unavailable", func(t *testing.T) {
		uc, productRepo, _, _, _ := newProductUCForTest()
		productRepo.listError = context.DeadlineExceeded

		_, err := uc.ListProducts(ctx, &ListProductsReq{})
		require.ErrorIs(t, err, e.ErrStoreUnavailable)
	})
}
