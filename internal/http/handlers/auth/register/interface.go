package register

import (
	"context"

	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, username, email, password string) (*models.UserView, string, error)
}
