package usecase

// Размеры страниц по умолчанию для постраничных выборок.
const (
	DefaultProductPageSize  = 8
	DefaultCategoryPageSize = 15
	DefaultInquiryPageSize  = 15
	DefaultContactPageSize  = 15
)

// ListReq — запрос постраничной выборки без фильтра.
type ListReq struct {
	Page  int
	Limit int
}

// ListProductsReq — запрос выборки товаров с необязательным фильтром по категории.
type ListProductsReq struct {
	Category string
	Page     int
	Limit    int
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// SaveProductReq — данные создания или обновления товара.
// Пустой Images при обновлении означает «оставить изображения как есть».
type SaveProductReq struct {
	Name               string
	Description        string
	Category           string
	PriceCents         int64
	OriginalPriceCents *int64
	Discount           int
	MainImageIndex     int
	IsNew              bool
	InStock            *bool
	Images             []ProductImage
}

type CreateCategoryReq struct {
	Name  string
	Image *ProductImage
}

type SubmitInquiryReq struct {
	ProductDbID   string
	CustomerEmail string
	CustomerPhone string
}

type SubmitContactReq struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// UploadImagesReq — запрос на загрузку изображений в S3.
type UploadImagesReq struct {
	Folder string
	Images []ProductImage
}

// UploadImagesRes — результат загрузки: ключи успешно сохранённых объектов
// и имена файлов, которые не удалось загрузить.
type UploadImagesRes struct {
	ImagesKeys []string
	Dropped    []string
}

// MAPPERS

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImagesReq(folder string, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{
		Folder: folder,
		Images: images,
	}
}

func NewUploadImagesRes(imagesKeys []string, dropped []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: imagesKeys,
		Dropped:    dropped,
	}
}
