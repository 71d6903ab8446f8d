package models

import "errors"

// Ошибки доменного уровня. Сервисы оборачивают их через %w,
// HTTP-слой сопоставляет их со статусами через errors.Is.
var (
	ErrValidation         = errors.New("validation error")
	ErrConflict           = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrUpstream           = errors.New("market data unavailable")
	ErrInternal           = errors.New("internal error")
)
