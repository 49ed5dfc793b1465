package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type insufficientBalanceResponse struct {
	Error     string          `json:"error"`
	Required  decimal.Decimal `json:"required"`
	Available decimal.Decimal `json:"available"`
	Shortfall decimal.Decimal `json:"shortfall"`
}

type validationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeServiceError переводит ошибку сервиса в HTTP ответ.
// Неожиданные ошибки логируются с описанием операции.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error, action string) {
	var insufficient *domain.InsufficientBalanceError
	var validation *domain.ValidationError

	switch {
	case errors.As(err, &insufficient):
		writeJSON(w, logger, http.StatusPaymentRequired, insufficientBalanceResponse{
			Error:     domain.ErrInsufficientBalance.Error(),
			Required:  insufficient.Required,
			Available: insufficient.Available,
			Shortfall: insufficient.Shortfall(),
		})
	case errors.As(err, &validation):
		writeJSON(w, logger, http.StatusUnprocessableEntity, validationResponse{
			Error:  domain.ErrInvalidPurchase.Error(),
			Fields: validation.Fields,
		})
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidPurchase),
		errors.Is(err, domain.ErrPaymentMethodRequired),
		errors.Is(err, domain.ErrTrackingNumberRequired):
		writeJSON(w, logger, http.StatusUnprocessableEntity, validationResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrPurchaseNotFound):
		http.Error(w, "Not Found", http.StatusNotFound)
	case errors.Is(err, domain.ErrStoreUnavailable):
		logger.Warn(action, zap.Error(err))
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
	default:
		logger.Error(action, zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
