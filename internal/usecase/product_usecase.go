package usecase

import (
	"context"
	"strings"

	"github.com/priyansh911911/Furniture-B/internal/domain"
	"github.com/priyansh911911/Furniture-B/pkg/e"
	"github.com/priyansh911911/Furniture-B/pkg/logger"
	"github.com/priyansh911911/Furniture-B/pkg/paging"
)

const productImagesFolder = "products"

// ProductUseCase реализует бизнес-логику каталога товаров.
type ProductUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	txManager    Transactor
	imagesInfra  ImagesInfra
	logger       logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	txManager Transactor,
	imagesInfra ImagesInfra,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		txManager:    txManager,
		imagesInfra:  imagesInfra,
		logger:       logger,
	}
}

// ListProducts возвращает страницу товаров, отсортированных от новых к старым,
// с необязательным фильтром по точному имени категории.
func (p *ProductUseCase) ListProducts(ctx context.Context, req *ListProductsReq) (*ListResult[domain.Product], error) {
	const op = "ProductUseCase.ListProducts"

	pg := paging.Normalize(req.Page, req.Limit, DefaultProductPageSize)

	res, err := listPage(ctx, pg,
		func(ctx context.Context, limit, offset int) ([]domain.Product, error) {
			return p.productRepo.List(ctx, req.Category, limit, offset)
		},
		func(ctx context.Context) (int64, error) {
			return p.productRepo.CountByCategory(ctx, req.Category)
		},
	)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}

func (p *ProductUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	const op = "ProductUseCase.GetProduct"

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// CreateProduct загружает изображения и создаёт товар.
// Вставка строки и увеличение счётчика категории выполняются в одной транзакции;
// при откате загруженные объекты удаляются из S3 в фоне.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *SaveProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.CreateProduct"

	if err := validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	keys, err := p.uploadImages(ctx, req.Images)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(
		req.Name,
		req.Description,
		req.PriceCents,
		req.OriginalPriceCents,
		req.Category,
		keys,
		req.MainImageIndex,
		req.Discount,
		req.IsNew,
	)
	if req.InStock != nil {
		product.InStock = *req.InStock
	}

	var created *domain.Product
	err = p.txManager.WithinTx(ctx, func(ctx context.Context) error {
		inserted, err := p.productRepo.Insert(ctx, product)
		if err != nil {
			return err
		}

		if err := p.categoryRepo.AdjustCount(ctx, inserted.Category, 1); err != nil {
			return err
		}

		created = inserted
		return nil
	})
	if err != nil {
		if len(keys) > 0 {
			p.logger.Warnf("Cleaning up orphaned images after transaction failure. product_name: %s, error: %v",
				req.Name, e.Wrap(op, err))
			p.imagesInfra.CleanupImages(keys)
		}
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

// UpdateProduct обновляет товар. Изображения заменяются только если загружены
// новые файлы; пустая загрузка оставляет прежний список. Артикул неизменяем.
// При смене категории счётчики обеих категорий корректируются в транзакции.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, id string, req *SaveProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.UpdateProduct"

	if err := validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	current, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	images := current.Images
	var newKeys []string
	if len(req.Images) > 0 {
		newKeys, err = p.uploadImages(ctx, req.Images)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		if len(newKeys) > 0 {
			images = newKeys
		}
	}

	product := &domain.Product{
		ID:                 current.ID,
		Code:               current.Code,
		Name:               strings.TrimSpace(req.Name),
		Description:        req.Description,
		PriceCents:         req.PriceCents,
		OriginalPriceCents: req.OriginalPriceCents,
		Category:           req.Category,
		Images:             images,
		MainImageIndex:     req.MainImageIndex,
		Discount:           req.Discount,
		IsNew:              req.IsNew,
		InStock:            current.InStock,
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}

	var updated *domain.Product
	err = p.txManager.WithinTx(ctx, func(ctx context.Context) error {
		saved, err := p.productRepo.Update(ctx, product)
		if err != nil {
			return err
		}

		if current.Category != saved.Category {
			if err := p.categoryRepo.AdjustCount(ctx, current.Category, -1); err != nil {
				return err
			}
			if err := p.categoryRepo.AdjustCount(ctx, saved.Category, 1); err != nil {
				return err
			}
		}

		updated = saved
		return nil
	})
	if err != nil {
		if len(newKeys) > 0 {
			p.imagesInfra.CleanupImages(newKeys)
		}
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// DeleteProduct удаляет товар и уменьшает счётчик его категории в одной транзакции.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	const op = "ProductUseCase.DeleteProduct"

	// TODO: удалять объекты товара из MinIO после удаления строки
	err := p.txManager.WithinTx(ctx, func(ctx context.Context) error {
		deleted, err := p.productRepo.Delete(ctx, id)
		if err != nil {
			return err
		}

		return p.categoryRepo.AdjustCount(ctx, deleted.Category, -1)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// uploadImages сохраняет изображения в S3; неудачные файлы пропускаются.
func (p *ProductUseCase) uploadImages(ctx context.Context, images []ProductImage) ([]string, error) {
	if len(images) == 0 {
		return nil, nil
	}

	res, err := p.imagesInfra.UploadImages(ctx, NewUploadImagesReq(productImagesFolder, images))
	if err != nil {
		return nil, err
	}

	if len(res.Dropped) > 0 {
		p.logger.Warnf("dropped %d of %d images during upload: %v", len(res.Dropped), len(images), res.Dropped)
	}

	return res.ImagesKeys, nil
}

// validateProduct проверяет обязательные поля товара.
func validateProduct(req *SaveProductReq) error {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Description) == "" ||
		strings.TrimSpace(req.Category) == "" {
		return e.ErrMissingFields
	}

	if req.PriceCents <= 0 {
		return e.ErrInvalidPrice
	}

	return nil
}
