package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/jimlawless/whereami"
	"github.com/priyansh911911/Furniture-B/internal/usecase"
	"github.com/priyansh911911/Furniture-B/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Message: message}
}

// ToHTTPResponse переводит ошибку уровня приложения в статус и сообщение для клиента.
// Неклассифицированные ошибки наружу не раскрываются.
func ToHTTPResponse(err error) (int, string) {
	var inUse *e.CategoryInUseError
	if errors.As(err, &inUse) {
		return http.StatusConflict, inUse.Error()
	}

	switch {
	case errors.Is(err, e.ErrStatusBadRequest),
		errors.Is(err, e.ErrExpectedMultipart),
		errors.Is(err, e.ErrMissingFields),
		errors.Is(err, e.ErrCategoryNameRequired),
		errors.Is(err, e.ErrImageRequired),
		errors.Is(err, e.ErrInvalidPrice),
		errors.Is(err, e.ErrPricePrecision),
		errors.Is(err, e.ErrInvalidStatus),
		errors.Is(err, e.ErrInvalidCredentials),
		errors.Is(err, e.ErrTooManyImages),
		errors.Is(err, e.ErrFileTooLarge),
		errors.Is(err, e.ErrUnsupportedMediaType),
		errors.Is(err, e.ErrAdminNotConfigured):
		return http.StatusBadRequest, unwrapMessage(err)
	case errors.Is(err, e.ErrAdminRequired):
		return http.StatusUnauthorized, e.ErrAdminRequired.Error()
	case errors.Is(err, e.ErrProductNotFound),
		errors.Is(err, e.ErrCategoryNotFound),
		errors.Is(err, e.ErrInquiryNotFound):
		return http.StatusNotFound, unwrapMessage(err)
	case errors.Is(err, e.ErrCategoryExists),
		errors.Is(err, e.ErrAdminExists):
		return http.StatusConflict, unwrapMessage(err)
	case errors.Is(err, e.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, e.ErrStoreUnavailable.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

// unwrapMessage достаёт текст ошибки-сентинела без обёрток с местами вызова.
func unwrapMessage(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}
		err = unwrapped
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePaging считывает page и limit из query-параметров.
// Нечисловые и отсутствующие значения превращаются в ноль,
// дальше их нормализует usecase-слой значениями по умолчанию.
func parsePaging(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return page, limit
}

// parsePriceToCents переводит строку вида "599.99" или "600" в центы.
// Отклоняет пустые, отрицательные и сверхбольшие значения,
// а также цены с более чем двумя знаками после запятой.
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// parseOptionalPriceToCents — то же, но пустая строка означает отсутствие значения.
func parseOptionalPriceToCents(s string) (*int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	cents, err := parsePriceToCents(s)
	if err != nil {
		return nil, err
	}

	return &cents, nil
}

// centsToPrice переводит центы обратно в денежное значение для JSON-ответа.
func centsToPrice(cents int64) float64 {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).InexactFloat64()
}

func centsToPricePtr(cents *int64) *float64 {
	if cents == nil {
		return nil
	}
	price := centsToPrice(*cents)
	return &price
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

// parseProductForm собирает данные товара из multipart-формы.
// Числовые поля приходят строками; discount и mainImageIndex по умолчанию 0.
func parseProductForm(r *http.Request) (*usecase.SaveProductReq, error) {
	name := r.FormValue("name")
	description := r.FormValue("description")
	category := r.FormValue("category")
	priceStr := r.FormValue("price")

	if name == "" || description == "" || category == "" || priceStr == "" {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrMissingFields)
	}

	priceCents, err := parsePriceToCents(priceStr)
	if err != nil {
		return nil, err
	}

	originalPriceCents, err := parseOptionalPriceToCents(r.FormValue("originalPrice"))
	if err != nil {
		return nil, err
	}

	discount, _ := strconv.Atoi(r.FormValue("discount"))
	mainImageIndex, _ := strconv.Atoi(r.FormValue("mainImageIndex"))

	req := &usecase.SaveProductReq{
		Name:               name,
		Description:        description,
		Category:           category,
		PriceCents:         priceCents,
		OriginalPriceCents: originalPriceCents,
		Discount:           discount,
		MainImageIndex:     mainImageIndex,
		IsNew:              r.FormValue("isNew") == "true",
	}

	if v := r.FormValue("inStock"); v != "" {
		inStock := v == "true"
		req.InStock = &inStock
	}

	return req, nil
}

// parseImages читает файлы из multipart-формы. Пустой список допустим.
func parseImages(files []*multipart.FileHeader) ([]usecase.ProductImage, error) {
	const (
		maxImageCount = 4
		maxFileSize   = 15 << 20
	)

	if len(files) > maxImageCount {
		return nil, e.ErrTooManyImages
	}

	images := make([]usecase.ProductImage, 0, len(files))
	for _, fh := range files {
		data, mimeType, err := readFile(fh, maxFileSize)
		if err != nil {
			return nil, err
		}
		images = append(images, *usecase.NewProductImage(data, mimeType, int64(len(data)), fh.Filename))
	}
	return images, nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
