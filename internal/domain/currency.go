package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ExchangeRate - фиксированный курс пересчета юаней в валюту отображения
const ExchangeRate = 195

const (
	// maxAmountIntDigits соответствует NUMERIC(14,2): 12 цифр до запятой
	maxAmountIntDigits = 12
	// maxAmountScale ограничивает число знаков после запятой до округления
	maxAmountScale = 18
)

// MaxAmount - наибольшая сумма, которую можно сохранить
var MaxAmount = decimal.RequireFromString("999999999999.99")

// ToDisplayCurrency пересчитывает сумму в юанях в валюту отображения
func ToDisplayCurrency(yuan decimal.Decimal) decimal.Decimal {
	return yuan.Mul(decimal.NewFromInt(ExchangeRate))
}

// AmountInRange сообщает, помещается ли сумма в хранилище.
// Проверка смотрит только на показатель и число цифр, поэтому значения
// вида 1e100000000 отклоняются без построения огромных чисел.
func AmountInRange(d decimal.Decimal) bool {
	if d.Coefficient().Sign() == 0 {
		return true
	}
	exp := int(d.Exponent())
	if exp < -maxAmountScale || d.NumDigits()+exp > maxAmountIntDigits {
		return false
	}
	return d.Abs().LessThanOrEqual(MaxAmount)
}

// ParseAmount разбирает положительную денежную сумму.
// Пустые, нечисловые, нулевые, отрицательные и слишком большие значения
// отклоняются с ErrInvalidAmount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, raw)
	}
	if !AmountInRange(d) {
		return decimal.Zero, fmt.Errorf("%w: out of range, max %s", ErrInvalidAmount, MaxAmount.String())
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s must be positive", ErrInvalidAmount, d.String())
	}
	return d, nil
}
