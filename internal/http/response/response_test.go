package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/jwt"
	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

func TestError(t *testing.T) {
	msg := "something went wrong"
	resp := Error(msg)

	assert.Equal(t, msg, resp.Error)
}

func TestValidationError(t *testing.T) {
	type TestStruct struct {
		Name  string `validate:"required,alphanum"`
		Email string `validate:"email"`
		Code  string `validate:"max=3"`
	}

	v := validator.New()
	err := v.Struct(TestStruct{Name: "!!!", Email: "nope", Code: "toolong"})
	assert.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))

	assert.Contains(t, resp.Error, "field Name can contain only numbers and letters")
	assert.Contains(t, resp.Error, "field Email must be a valid email")
	assert.Contains(t, resp.Error, "field Code must be at most 3 characters")
}

func TestValidationErrorRequired(t *testing.T) {
	type TestStruct struct {
		Name string `validate:"required"`
	}

	err := validator.New().Struct(TestStruct{})
	assert.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, "field Name is a required field", resp.Error)
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation keeps detail",
			err:        fmt.Errorf("%w: password must be at least 6 characters", models.ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "password must be at least 6 characters",
		},
		{
			name:       "conflict",
			err:        fmt.Errorf("storage.CreateUser: %w", models.ErrConflict),
			wantStatus: http.StatusConflict,
			wantMsg:    "username or email already exists",
		},
		{
			name:       "invalid credentials",
			err:        models.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "invalid credentials",
		},
		{
			name:       "expired token",
			err:        fmt.Errorf("%w: %w", models.ErrUnauthorized, jwt.ErrExpired),
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "token expired",
		},
		{
			name:       "bad signature",
			err:        fmt.Errorf("%w: %w", models.ErrUnauthorized, jwt.ErrInvalidSignature),
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "invalid token",
		},
		{
			name:       "missing header",
			err:        fmt.Errorf("%w: missing bearer token", models.ErrUnauthorized),
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "missing or invalid authorization header",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("op: %w", models.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "resource not found",
		},
		{
			name:       "upstream",
			err:        fmt.Errorf("marketdata: %w", models.ErrUpstream),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "market data unavailable",
		},
		{
			name:       "unknown error hides details",
			err:        errors.New("pq: connection refused on 10.0.0.1"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := FromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}
