// Package response содержит вспомогательные типы и функции для формирования
// JSON‑ответов HTTP‑обработчиков: тело ошибки {"error": "..."}, сообщения
// валидации и сопоставление доменных ошибок со статусами HTTP.
package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/jwt"
	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

// ErrorResponse — тело ответа с ошибкой. Используется и в аннотациях @Failure.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// MessageResponse — тело ответа с одним сообщением.
type MessageResponse struct {
	Message string `json:"message" example:"holding deleted"`
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// Message возвращает MessageResponse с переданным сообщением.
func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}

// ValidationError формирует ErrorResponse на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at most %s characters", err.Field(), err.Param()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at least %s characters", err.Field(), err.Param()))
		case "alphanum":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only numbers and letters", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return ErrorResponse{Error: strings.Join(errsMsgs, ", ")}
}

// FromError сопоставляет доменную ошибку со статусом HTTP и безопасным
// для клиента сообщением. Неизвестные ошибки дают 500 без подробностей.
func FromError(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest, Error(validationMessage(err))
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict, Error(models.ErrConflict.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized, Error(models.ErrInvalidCredentials.Error())
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized, Error(unauthorizedMessage(err))
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, Error("resource not found")
	case errors.Is(err, models.ErrUpstream):
		return http.StatusInternalServerError, Error(models.ErrUpstream.Error())
	default:
		return http.StatusInternalServerError, Error("internal server error")
	}
}

func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, models.ErrValidation.Error()+": "); i >= 0 {
		return msg[i+len(models.ErrValidation.Error())+2:]
	}
	return models.ErrValidation.Error()
}

func unauthorizedMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpired):
		return "token expired"
	case errors.Is(err, jwt.ErrInvalidSignature):
		return "invalid token"
	default:
		return "missing or invalid authorization header"
	}
}
