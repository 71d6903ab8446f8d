// Package password реализует одностороннее хеширование паролей на bcrypt.
//
// Hasher.Hash создаёт солёный хеш для хранения, Hasher.Verify сверяет
// введённый пароль с сохранённым хешем.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost — фактор сложности bcrypt по умолчанию.
const DefaultCost = 12

// MaxLength — максимальная длина пароля в байтах, которую принимает bcrypt.
const MaxLength = 72

// Hasher хеширует и проверяет пароли с заданным фактором сложности.
type Hasher struct {
	cost int
}

// NewHasher создаёт Hasher. Значения вне допустимого диапазона bcrypt
// заменяются на DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash возвращает bcrypt‑хэш пароля. Соль генерируется заново при каждом вызове.
func (h *Hasher) Hash(plaintext string) (string, error) {
	const op = "password.Hash"
	if len(plaintext) > MaxLength {
		return "", fmt.Errorf("%s: %w", op, bcrypt.ErrPasswordTooLong)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// Verify сообщает, соответствует ли пароль хэшу.
// Для повреждённого хэша возвращает false.
func (h *Hasher) Verify(plaintext, hash string) bool {
	if len(plaintext) > MaxLength {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
