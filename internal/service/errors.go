package service

import (
	"errors"

	"github.com/avc/purchase-ledger/internal/domain"
)

// Доменные ошибки, которые сервисы возвращают без обертки
var passThroughErrors = []error{
	domain.ErrOperatorExists,
	domain.ErrInvalidCredentials,
	domain.ErrUnknownSystem,
	domain.ErrPurchaseNotFound,
	domain.ErrInvalidPurchase,
	domain.ErrPaymentMethodRequired,
	domain.ErrTrackingNumberRequired,
	domain.ErrInsufficientBalance,
	domain.ErrInvalidAmount,
	domain.ErrStoreUnavailable,
}

// isDomainError сообщает, что ошибку нужно вернуть вызывающему как есть
func isDomainError(err error) bool {
	for _, target := range passThroughErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
