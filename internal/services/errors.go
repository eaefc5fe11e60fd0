package services

import "errors"

// Классы ошибок сервисного слоя. Хендлеры разбирают их через errors.Is:
// ErrNotFound → 404, ErrValidation → 400, ErrConflict → 409,
// всё остальное — ошибка хранилища → 500.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)
