package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Ошибки операторов
var (
	ErrOperatorExists     = errors.New("operator already exists")
	ErrOperatorNotFound   = errors.New("operator not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownSystem      = errors.New("unknown system")
)

// Ошибки покупок
var (
	ErrPurchaseNotFound       = errors.New("purchase not found")
	ErrInvalidPurchase        = errors.New("invalid purchase")
	ErrPaymentMethodRequired  = errors.New("payment method is required for a completed purchase")
	ErrTrackingNumberRequired = errors.New("tracking number is required once the purchase leaves pending dispatch")
)

// Ошибки баланса
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid amount")
)

// Ошибки хранилища
var (
	ErrStoreUnavailable = errors.New("store unavailable")
)

// InsufficientBalanceError содержит подробности нехватки средств
type InsufficientBalanceError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

// Shortfall возвращает недостающую сумму
func (e *InsufficientBalanceError) Shortfall() decimal.Decimal {
	return e.Required.Sub(e.Available)
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %s, available %s, shortfall %s",
		e.Required.StringFixed(2), e.Available.StringFixed(2), e.Shortfall().StringFixed(2))
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

// NewInsufficientBalanceError создает ошибку нехватки средств
func NewInsufficientBalanceError(required, available decimal.Decimal) *InsufficientBalanceError {
	return &InsufficientBalanceError{Required: required, Available: available}
}

// ValidationError содержит ошибки валидации по полям
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid purchase: %d field(s) failed validation", len(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidPurchase
}
