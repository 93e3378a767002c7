package e

import (
	"context"
	"errors"
	"fmt"
)

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields        = fmt.Errorf("name, description, price and category are required")
	ErrCategoryNameRequired = fmt.Errorf("Category name is required")
	ErrImageRequired        = fmt.Errorf("Image is required")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidStatus        = fmt.Errorf("invalid inquiry status")
	ErrInvalidCredentials   = fmt.Errorf("Invalid credentials")
	ErrTooManyImages        = fmt.Errorf("too many images")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	ErrAdminNotConfigured = fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD are not configured")

	// 401 Unauthorized
	ErrAdminRequired = fmt.Errorf("Admin access required")

	// Внутренние ошибки авторизации, наружу не отдаются как есть
	ErrAdminNotFound   = fmt.Errorf("admin not found")
	ErrSessionNotFound = fmt.Errorf("session not found")

	// 404 Not Found
	ErrProductNotFound  = fmt.Errorf("Product not found")
	ErrCategoryNotFound = fmt.Errorf("Category not found")
	ErrInquiryNotFound  = fmt.Errorf("Inquiry not found")

	// 409 Conflict
	ErrCategoryExists = fmt.Errorf("Category already exists")
	ErrAdminExists    = fmt.Errorf("Admin already exists")

	// 503 Service Unavailable
	ErrStoreUnavailable = fmt.Errorf("Database temporarily unavailable")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("Server error")
)

// CategoryInUseError запрещает удаление категории, пока на неё ссылаются товары.
// Count — точное число зависимых товаров на момент проверки.
type CategoryInUseError struct {
	Count int64
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("Cannot delete category. %d products are using this category.", e.Count)
}

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// ClassifyStore переводит ошибки хранилища в ошибки уровня приложения:
// истёкший дедлайн контекста означает недоступность базы, остальное не меняется.
func ClassifyStore(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrStoreUnavailable, err.Error())
	}
	return err
}
