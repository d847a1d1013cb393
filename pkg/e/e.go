package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки валидации идентификаторов
	ErrInvalidIDs = fmt.Errorf("id set is empty or contains the nil id")

	// Ошибки каталога: агрегат не найден
	ErrProductNotFound    = fmt.Errorf("product not found")
	ErrCategoryNotFound   = fmt.Errorf("category not found")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrPermissionNotFound = fmt.Errorf("permission not found")
	ErrRoleNotFound       = fmt.Errorf("role not found")

	// Ошибки каталога: агрегат уже существует либо обновление не содержит изменений
	ErrProductExists    = fmt.Errorf("product already exists")
	ErrCategoryExists   = fmt.Errorf("category already exists")
	ErrUserExists       = fmt.Errorf("user already exists")
	ErrPermissionExists = fmt.Errorf("permission already exists")
	ErrRoleExists       = fmt.Errorf("role already exists")

	// Ошибки кэша
	ErrNoProducts   = fmt.Errorf("no products")
	ErrNoCategories = fmt.Errorf("no categories")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrNoImages             = fmt.Errorf("no images provided")
	ErrTooManyImages        = fmt.Errorf("too many images")
	ErrFileTooLarge         = fmt.Errorf("file too large")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// WrapIf оборачивает ошибку, если она не nil.
func WrapIf(msg string, err error) error {
	if err == nil {
		return nil
	}

	return Wrap(msg, err)
}
