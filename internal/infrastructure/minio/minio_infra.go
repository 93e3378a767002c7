package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/priyansh911911/Furniture-B/internal/cfg"
	"github.com/priyansh911911/Furniture-B/internal/domain"
	"github.com/priyansh911911/Furniture-B/internal/infrastructure"
	"github.com/priyansh911911/Furniture-B/internal/usecase"
	"github.com/priyansh911911/Furniture-B/pkg/e"
	"github.com/priyansh911911/Furniture-B/pkg/jitter"
	"github.com/priyansh911911/Furniture-B/pkg/logger"
)

// MinioInfrastructure управляет загрузкой и очисткой изображений в MinIO.
type MinioInfrastructure struct {
	minioRepo         usecase.ImageRepository
	cfg               *cfg.MinIOCfg
	logger            logger.Logger
	shutdownCtx       context.Context
	wg                sync.WaitGroup
	uploadImagesLimit int
}

func NewMinioInfrastructure(minioRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	return &MinioInfrastructure{
		minioRepo:         minioRepo,
		cfg:               cfg,
		logger:            logger,
		shutdownCtx:       shutdownCtx,
		wg:                sync.WaitGroup{},
		uploadImagesLimit: cfg.UploadImagesLimit,
	}
}

type uploadResult struct {
	key  string
	name string
	err  error
}

// UploadImages загружает изображения в MinIO параллельно с ограничением одновременных операций.
// Файлы, которые не удалось загрузить, пропускаются и попадают в Dropped;
// ошибка возвращается только при отмене контекста.
func (m *MinioInfrastructure) UploadImages(ctx context.Context, req *usecase.UploadImagesReq) (*usecase.UploadImagesRes, error) {
	const op = "MinioInfrastructure.UploadImages"

	resCh := make(chan uploadResult, len(req.Images))
	sem := make(chan struct{}, m.uploadImagesLimit)

	var uploadWg sync.WaitGroup
	for _, image := range req.Images {
		uploadWg.Add(1)
		go func() {
			defer uploadWg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			key, err := m.uploadOne(ctx, req.Folder, image)
			resCh <- uploadResult{key: key, name: image.Name, err: err}
		}()
	}

	go func() {
		uploadWg.Wait()
		close(resCh)
	}()

	keys := make([]string, 0, len(req.Images))
	dropped := make([]string, 0)
	for res := range resCh {
		if res.err != nil {
			m.logger.Warnf("%s: upload %s failed, skipping: %v", op, res.name, res.err)
			dropped = append(dropped, res.name)
			continue
		}
		keys = append(keys, res.key)
	}

	if err := ctx.Err(); err != nil {
		m.CleanupImages(keys)
		return nil, e.Wrap(op, err)
	}

	return usecase.NewUploadImagesRes(keys, dropped), nil
}

// UploadImage загружает одно изображение. В отличие от UploadImages
// ошибка загрузки здесь фатальна для вызывающего.
func (m *MinioInfrastructure) UploadImage(ctx context.Context, folder string, image usecase.ProductImage) (string, error) {
	const op = "MinioInfrastructure.UploadImage"

	key, err := m.uploadOne(ctx, folder, image)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	return key, nil
}

func (m *MinioInfrastructure) uploadOne(ctx context.Context, folder string, image usecase.ProductImage) (string, error) {
	imageID := uuid.NewString()
	ext, err := infrastructure.GetExtensionFromMIME(image.MimeType)
	if err != nil {
		return "", fmt.Errorf("invalid mime type %s for %s: %w", image.MimeType, image.Name, err)
	}

	objKey := fmt.Sprintf("%s/%s.%s", folder, imageID, ext)
	newImage := domain.NewImage(imageID, m.cfg.BucketName, objKey, image.Data, &image.Size, &image.MimeType)

	return m.minioRepo.Upload(ctx, newImage)
}

// CleanupImages запускает фоновую очистку указанных ключей MinIO.
func (m *MinioInfrastructure) CleanupImages(keys []string) {
	if len(keys) == 0 {
		return
	}
	m.wg.Add(1)
	go m.cleanupUploadedKeys(keys)
}

// cleanupUploadedKeys удаляет указанные объекты из MinIO с экспоненциальной задержкой и jitter.
func (m *MinioInfrastructure) cleanupUploadedKeys(keys []string) {
	defer m.wg.Done() // сигнализируем завершение компенсации
	const op = "MinioInfrastructure.cleanupUploadedKeys"
	m.logger.Infof("%s: Cleaning up uploaded keys", op)

	// Создаём контекст с таймаутом на основе shutdownCtx
	ctx, cancel := context.WithTimeout(m.shutdownCtx, 30*time.Second)
	defer cancel()

	const (
		baseBackoff = time.Second
		maxBackoff  = 8 * time.Second
		maxAttempts = 3
	)

	for _, key := range keys {
		for attempt := 0; attempt < maxAttempts; attempt++ {
			if err := m.minioRepo.Delete(ctx, key); err == nil {
				break // Успешно удалено
			}

			// Проверяем, не отменён ли контекст
			select {
			case <-ctx.Done():
				m.logger.Warnf("cleanup interrupted by shutdown, key=%v", key)
				return
			default:
			}

			if attempt < maxAttempts-1 {
				sleepTime := jitter.ExponentialBackoff(baseBackoff, maxBackoff, attempt, jitter.DefaultJitter)

				select {
				case <-time.After(sleepTime):
				case <-ctx.Done():
					m.logger.Warnf("cleanup interrupted by shutdown during backoff, key=%v", key)
					return
				}
			}
		}
	}
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}
