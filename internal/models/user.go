// Package models содержит доменные модели портфеля: пользователя, его активы,
// агрегированную статистику и котировки внешнего API.
// Структуры используются в бизнес‑логике, хранилище и HTTP‑слое.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           int64     `json:"id"`         // Идентификатор, назначается хранилищем
	Username     string    `json:"username"`   // Имя пользователя (уникальное)
	Email        string    `json:"email"`      // Электронная почта (уникальная)
	PasswordHash string    `json:"-"`          // Хэш пароля, наружу не отдаётся
	CreatedAt    time.Time `json:"created_at"` // Дата создания
}

// UserView — публичное представление пользователя без хэша пароля.
type UserView struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// View возвращает публичное представление пользователя.
func (u *User) View() UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// Identity — данные пользователя, которые переносятся внутри JWT.
type Identity struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
