// Package jwt реализует выпуск и проверку JWT токенов, удостоверяющих личность пользователя.
//
// Maker определяет интерфейс для создания и проверки токенов.
// MakerImpl — реализация на HS256 с секретным ключом и временем жизни токена.
package jwt

import (
	"errors"
	"time"

	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

// DefaultTTL — срок жизни токена по умолчанию.
const DefaultTTL = 7 * 24 * time.Hour

var (
	// ErrInvalidSignature — подпись не совпала, токен повреждён или подписан другим алгоритмом.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrExpired — срок действия токена истёк.
	ErrExpired = errors.New("token expired")
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	GenerateToken(identity models.Identity) (string, error)
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey []byte           // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration    // Время жизни токена.
	now       func() time.Time // Источник текущего времени.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
// Нулевой TTL заменяется на DefaultTTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &MakerImpl{
		secretKey: []byte(secretKey),
		tokenTTL:  ttl,
		now:       time.Now,
	}
}

// WithClock подменяет источник времени. Используется в тестах.
func (j *MakerImpl) WithClock(now func() time.Time) *MakerImpl {
	j.now = now
	return j
}
