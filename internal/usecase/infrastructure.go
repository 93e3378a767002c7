package usecase

import "context"

type ImagesInfra interface {
	UploadImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error)
	UploadImage(ctx context.Context, folder string, image ProductImage) (string, error)
	CleanupImages(keys []string)
}

// Transactor выполняет функцию внутри одной транзакции хранилища.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
