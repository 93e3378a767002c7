package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/priyansh911911/Furniture-B/internal/domain"
	"github.com/priyansh911911/Furniture-B/pkg/e"
	"github.com/priyansh911911/Furniture-B/pkg/logger"
	"github.com/priyansh911911/Furniture-B/pkg/paging"
)

const (
	categoryImagesFolder = "categories"

	// countTimeout — бюджет времени на пересчёт товаров одной категории.
	countTimeout = 5 * time.Second
)

// CategoryUseCase реализует управление категориями и сверку счётчиков товаров.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	productRepo  ProductRepository
	txManager    Transactor
	imagesInfra  ImagesInfra
	logger       logger.Logger
}

func NewCategoryUC(
	categoryRepo CategoryRepository,
	productRepo ProductRepository,
	txManager Transactor,
	imagesInfra ImagesInfra,
	logger logger.Logger,
) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		txManager:    txManager,
		imagesInfra:  imagesInfra,
		logger:       logger,
	}
}

// ListCategories возвращает страницу категорий с актуальными счётчиками товаров.
// Счётчики пересчитываются на чтении; неудачный пересчёт отдельной категории
// оставляет сохранённое значение и не прерывает выборку.
func (c *CategoryUseCase) ListCategories(ctx context.Context, req *ListReq) (*ListResult[domain.Category], error) {
	const op = "CategoryUseCase.ListCategories"

	pg := paging.Normalize(req.Page, req.Limit, DefaultCategoryPageSize)

	res, err := listPage(ctx, pg, c.categoryRepo.List, c.categoryRepo.Count)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.reconcileCounts(ctx, res.Items)

	return res, nil
}

// reconcileCounts независимо пересчитывает счётчик каждой категории.
func (c *CategoryUseCase) reconcileCounts(ctx context.Context, categories []domain.Category) {
	var wg sync.WaitGroup
	for i := range categories {
		wg.Add(1)
		go func() {
			defer wg.Done()

			countCtx, cancel := context.WithTimeout(ctx, countTimeout)
			defer cancel()

			count, err := c.productRepo.CountByCategory(countCtx, categories[i].Name)
			if err != nil {
				c.logger.Warnf("count for category %q failed, keeping stored value %d: %v",
					categories[i].Name, categories[i].Count, err)
				return
			}

			categories[i].Count = count
		}()
	}
	wg.Wait()
}

// CreateCategory создаёт категорию с уникальным именем. Изображение необязательно.
func (c *CategoryUseCase) CreateCategory(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error) {
	const op = "CategoryUseCase.CreateCategory"

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, e.Wrap(op, e.ErrCategoryNameRequired)
	}

	if _, err := c.categoryRepo.GetByName(ctx, name); err == nil {
		return nil, e.Wrap(op, e.ErrCategoryExists)
	} else if !errors.Is(err, e.ErrCategoryNotFound) {
		return nil, e.Wrap(op, err)
	}

	var image *string
	if req.Image != nil {
		key, err := c.imagesInfra.UploadImage(ctx, categoryImagesFolder, *req.Image)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		image = &key
	}

	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(name, image))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

// UpdateCategoryImage заменяет изображение существующей категории.
// Отсутствующая категория — NotFound, неявного создания нет.
func (c *CategoryUseCase) UpdateCategoryImage(ctx context.Context, id string, image ProductImage) (*domain.Category, error) {
	const op = "CategoryUseCase.UpdateCategoryImage"

	if _, err := c.categoryRepo.GetByID(ctx, id); err != nil {
		return nil, e.Wrap(op, err)
	}

	key, err := c.imagesInfra.UploadImage(ctx, categoryImagesFolder, image)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	category, err := c.categoryRepo.UpdateImage(ctx, id, key)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

// DeleteCategory удаляет категорию, если на неё не ссылается ни один товар.
// Число зависимых товаров перепроверяется в той же транзакции, что и удаление,
// чтобы конкурентное создание товара не оставило висячую ссылку.
func (c *CategoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	const op = "CategoryUseCase.DeleteCategory"

	category, err := c.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	err = c.txManager.WithinTx(ctx, func(ctx context.Context) error {
		count, err := c.productRepo.CountByCategory(ctx, category.Name)
		if err != nil {
			return err
		}

		if count > 0 {
			return &e.CategoryInUseError{Count: count}
		}

		_, err = c.categoryRepo.Delete(ctx, category.ID)
		return err
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
