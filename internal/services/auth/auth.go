// Package services содержит логику бизнес-уровня для регистрации, входа,
// проверки токенов и профиля пользователя.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/jwt"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/password"
	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

const (
	minPasswordLength = 6
	maxUsernameLength = 80
	maxEmailLength    = 120
	bearerPrefix      = "Bearer "
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя; нарушение уникальности — models.ErrConflict.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	// ExistsByUsernameOrEmail сообщает, занят ли username или email.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	// GetUserByUsername возвращает пользователя по имени; models.ErrNotFound, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// GetUserByID возвращает пользователя по id; models.ErrNotFound, если не найден.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	// DeleteUser удаляет пользователя вместе с активами.
	DeleteUser(ctx context.Context, id int64) error
}

// PasswordHasher хэширует и проверяет пароли.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// PortfolioSummarizer считает сводку портфеля пользователя.
type PortfolioSummarizer interface {
	Summary(ctx context.Context, userID int64) (models.PortfolioStats, error)
}

// Recorder учитывает события аутентификации.
type Recorder interface {
	ObserveAuth(event string, ok bool)
}

// Profile — данные пользователя вместе со сводкой портфеля.
type Profile struct {
	User      models.UserView       `json:"user"`
	Portfolio models.PortfolioStats `json:"portfolio"`
}

// AuthService отвечает за регистрацию, авторизацию и валидацию JWT.
type AuthService struct {
	users     UserRepository
	hasher    PasswordHasher
	jwtMaker  jwt.Maker
	portfolio PortfolioSummarizer
	log       *slog.Logger
	recorder  Recorder
}

// NewAuthService создает новый экземпляр AuthService. recorder может быть nil.
func NewAuthService(users UserRepository, hasher PasswordHasher, jwtMaker jwt.Maker,
	portfolio PortfolioSummarizer, log *slog.Logger, recorder Recorder) *AuthService {
	return &AuthService{
		users:     users,
		hasher:    hasher,
		jwtMaker:  jwtMaker,
		portfolio: portfolio,
		log:       log,
		recorder:  recorder,
	}
}

func (s *AuthService) observe(event string, err error) {
	if s.recorder != nil {
		s.recorder.ObserveAuth(event, err == nil)
	}
}

// Register создаёт пользователя и сразу выдаёт ему токен.
func (s *AuthService) Register(ctx context.Context, username, email, rawPassword string) (view *models.UserView, token string, err error) {
	const op = "services.auth.Register"
	defer func() { s.observe("register", err) }()

	if username == "" || email == "" || rawPassword == "" {
		return nil, "", fmt.Errorf("%w: username, email and password are required", models.ErrValidation)
	}
	if utf8.RuneCountInString(rawPassword) < minPasswordLength {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters", models.ErrValidation, minPasswordLength)
	}
	if len(rawPassword) > password.MaxLength {
		return nil, "", fmt.Errorf("%w: password must be at most %d bytes", models.ErrValidation, password.MaxLength)
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return nil, "", fmt.Errorf("%w: username must be at most %d characters", models.ErrValidation, maxUsernameLength)
	}
	if utf8.RuneCountInString(email) > maxEmailLength {
		return nil, "", fmt.Errorf("%w: email must be at most %d characters", models.ErrValidation, maxEmailLength)
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return nil, "", fmt.Errorf("%s: %w", op, models.ErrConflict)
	}

	hashed, err := s.hasher.Hash(rawPassword)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.users.CreateUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	})
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	token, err = s.jwtMaker.GenerateToken(identityOf(user))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user registered", slog.Int64("user_id", user.ID))
	v := user.View()
	return &v, token, nil
}

// Login проверяет пароль пользователя и выдаёт токен. Неизвестный пользователь
// и неверный пароль дают одну и ту же ошибку models.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (view *models.UserView, token string, err error) {
	const op = "services.auth.Login"
	defer func() { s.observe("login", err) }()

	if username == "" || rawPassword == "" {
		return nil, "", fmt.Errorf("%w: username and password are required", models.ErrValidation)
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, "", models.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if !s.hasher.Verify(rawPassword, user.PasswordHash) {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err = s.jwtMaker.GenerateToken(identityOf(user))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	v := user.View()
	return &v, token, nil
}

// Authenticate извлекает токен из заголовка Authorization вида "Bearer <token>"
// и проверяет его. Хранилище не используется.
func (s *AuthService) Authenticate(authorization string) (models.Identity, error) {
	tokenStr, ok := strings.CutPrefix(authorization, bearerPrefix)
	if !ok || tokenStr == "" {
		return models.Identity{}, fmt.Errorf("%w: missing bearer token", models.ErrUnauthorized)
	}
	claims, err := s.jwtMaker.ParseToken(tokenStr)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", models.ErrUnauthorized, err)
	}
	return claims.Identity(), nil
}

// VerifyToken проверяет заголовок Authorization и возвращает личность владельца токена.
func (s *AuthService) VerifyToken(_ context.Context, authorization string) (identity models.Identity, err error) {
	defer func() { s.observe("verify", err) }()
	return s.Authenticate(authorization)
}

// Profile возвращает пользователя и сводку его портфеля.
func (s *AuthService) Profile(ctx context.Context, authorization string) (*Profile, error) {
	const op = "services.auth.Profile"
	identity, err := s.Authenticate(authorization)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stats, err := s.portfolio.Summary(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Profile{User: user.View(), Portfolio: stats}, nil
}

// DeleteAccount удаляет пользователя; его активы удаляются каскадно.
func (s *AuthService) DeleteAccount(ctx context.Context, identity models.Identity) error {
	const op = "services.auth.DeleteAccount"
	if err := s.users.DeleteUser(ctx, identity.UserID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("user deleted", slog.Int64("user_id", identity.UserID))
	return nil
}

func identityOf(u *models.User) models.Identity {
	return models.Identity{UserID: u.ID, Username: u.Username, Email: u.Email}
}
