package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyansh911911/Furniture-B/pkg/e"
)

func newCategoryUCForTest() (*CategoryUseCase, *fakeCategoryRepo, *fakeProductRepo, *fakeImagesInfra) {
	categoryRepo := newFakeCategoryRepo()
	productRepo := newFakeProductRepo()
	images := newFakeImagesInfra()
	uc := NewCategoryUC(categoryRepo, productRepo, &fakeTxManager{}, images, nopLogger{})
	return uc, categoryRepo, productRepo, images
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("creates category without image", func(t *testing.T) {
		uc, _, _, _ := newCategoryUCForTest()

		created, err := uc.CreateCategory(ctx, &CreateCategoryReq{Name: "Sofas"})
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Sofas", created.Name)
		assert.Nil(t, created.Image)
		assert.Zero(t, created.Count)
	})

	t.Run("uploads image when provided", func(t *testing.T) {
		uc, _, _, images := newCategoryUCForTest()

		created, err := uc.CreateCategory(ctx, &CreateCategoryReq{
			Name:  "Beds",
			Image: &ProductImage{Name: "beds.jpg"},
		})
		require.NoError(t, err)

		require.NotNil(t, created.Image)
		assert.Contains(t, *created.Image, "categories/")
		assert.Len(t, images.uploaded, 1)
	})

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		uc, _, _, _ := newCategoryUCForTest()

		_, err := uc.CreateCategory(ctx, &CreateCategoryReq{Name: "Sofas"})
		require.NoError(t, err)

		_, err = uc.CreateCategory(ctx, &CreateCategoryReq{Name: "Sofas"})
		require.ErrorIs(t, err, e.ErrCategoryExists)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		uc, _, _, _ := newCategoryUCForTest()

		_, err := uc.CreateCategory(ctx, &CreateCategoryReq{Name: "   "})
		require.ErrorIs(t, err, e.ErrCategoryNameRequired)
	})
}

func TestUpdateCategoryImage(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces image of existing category", func(t *testing.T) {
		uc, _, _, _ := newCategoryUCForTest()

		created, err := uc.CreateCategory(ctx, &CreateCategoryReq{Name: "Sofas"})
		require.NoError(t, err)

		updated, err := uc.UpdateCategoryImage(ctx, created.ID, ProductImage{Name: "new.jpg"})
		require.NoError(t, err)
		require.NotNil(t, updated.Image)
		assert.Contains(t, *updated.Image, "categories/")
	})

	t.Run("unknown category is not created implicitly", func(t *testing.T) {
		uc, _, _, images := newCategoryUCForTest()

		_, err := uc.UpdateCategoryImage(ctx, "missing", ProductImage{Name: "new.jpg"})
		require.ErrorIs(t, err, e.ErrCategoryNotFound)
		assert.Empty(t, images.uploaded)
	})
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes unused category", func(t *testing.T) {
		uc, categoryRepo, _, _ := newCategoryUCForTest()

		created, err := uc.CreateCategory(ctx, &CreateCategoryReq{Name: "Sofas"})
		require.NoError(t, err)

		require.NoError(t, uc.DeleteCategory(ctx, created.ID))

		_, err = categoryRepo.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, e.ErrCategoryNotFound)
	})

	t.Run("category in use is rejected with product count", func(t *testing.T) {
		uc, categoryRepo, productRepo, _ := newCategoryUCForTest()

		created, err := uc.CreateCategory(ctx, &CreateCategoryReq{Name: "Sofas"})
		require.NoError(t, err)

		productUC := NewProductUC(productRepo, categoryRepo, &fakeTxManager{}, newFakeImagesInfra(), nopLogger{})
		_, err = productUC.CreateProduct(ctx, saveReq("Диван", "Sofas"))
		require.NoError(t, err)

		err = uc.DeleteCategory(ctx, created.ID)
		require.Error(t, err)

		var inUse *e.CategoryInUseError
		require.ErrorAs(t, err, &inUse)
		assert.Equal(t, int64(1), inUse.Count)
		assert.Contains(t, err.Error(), "Cannot delete category. 1 products are using this category.")

		_, err = categoryRepo.GetByID(ctx, created.ID)
		assert.NoError(t, err)
	})

	t.Run("unknown category returns not found", func(t *testing.T) {
		uc, _, _, _ := newCategoryUCForTest()

		err := uc.DeleteCategory(ctx, "missing")
		require.ErrorIs(t, err, e.ErrCategoryNotFound)
	})
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("counts are reconciled from products on read", func(t *testing.T) {
		uc, categoryRepo, productRepo, _ := newCategoryUCForTest()

		_, err := uc.CreateCategory(ctx, &CreateCategoryReq{Name: "Sofas"})
		require.NoError(t, err)

		// товары создаются мимо счётчика, хранимое значение устаревает
		productUC := NewProductUC(productRepo, newFakeCategoryRepo(), &fakeTxManager{}, newFakeImagesInfra(), nopLogger{})
		for i := 0; i < 3; i++ {
			_, err := productUC.CreateProduct(ctx, saveReq("Диван", "Sofas"))
			require.NoError(t, err)
		}

		res, err := uc.ListCategories(ctx, &ListReq{})
		require.NoError(t, err)

		require.Len(t, res.Items, 1)
		assert.Equal(t, int64(3), res.Items[0].Count)
		// хранимое значение не трогаем, пересчёт живёт только в ответе
		stored, err := categoryRepo.GetByID(ctx, res.Items[0].ID)
		require.NoError(t, err)
		assert.Zero(t, stored.Count)
	})

	t.Run("failed recount keeps stored value", func(t *testing.T) {
		uc, categoryRepo, productRepo, _ := newCategoryUCForTest()

		created, err := uc.CreateCategory(ctx, &CreateCategoryReq{Name: "Sofas"})
		require.NoError(t, err)
		require.NoError(t, categoryRepo.AdjustCount(ctx, created.Name, 7))

		productRepo.countError = context.DeadlineExceeded

		res, err := uc.ListCategories(ctx, &ListReq{})
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, int64(7), res.Items[0].Count)
	})
}
