// Package password хеширует пароли операторов.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinLength - минимальная длина пароля оператора
const MinLength = 6

// ErrMismatch возвращается, если пароль не совпадает с хешем
var ErrMismatch = errors.New("password does not match")

// Hasher интерфейс для хеширования паролей
type Hasher interface {
	Hash(password string) (string, error)
	Check(hash, password string) error
}

// BCryptHasher реализация хеширования через bcrypt
type BCryptHasher struct {
	cost int
}

// NewBCryptHasher создает hasher. Недопустимая стоимость заменяется на bcrypt.DefaultCost.
func NewBCryptHasher(cost int) *BCryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BCryptHasher{cost: cost}
}

// Hash хеширует пароль
func (h *BCryptHasher) Hash(password string) (string, error) {
	if len(password) < MinLength {
		return "", fmt.Errorf("password must be at least %d characters", MinLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Check проверяет соответствие пароля хешу
func (h *BCryptHasher) Check(hash, password string) error {
	if hash == "" || password == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	if err != nil {
		return fmt.Errorf("failed to check password: %w", err)
	}

	return nil
}
