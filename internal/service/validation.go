package service

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// newValidator создает валидатор, понимающий decimal.Decimal и json-имена полей
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			// Сумма вне диапазона не переводится во float: проверка lte ее отклонит
			if !domain.AmountInRange(d) {
				return math.Inf(1)
			}
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

// validateStruct переводит ошибки валидатора в domain.ValidationError
func validateStruct(v *validator.Validate, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		return &domain.ValidationError{Fields: fields}
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidPurchase, err)
}

// roundMoney округляет сумму до копеек (двух знаков)
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func roundMoneyPtr(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	r := roundMoney(*d)
	return &r
}

// checkPurchaseState проверяет стоимость и согласованность статусов покупки.
// Номер отслеживания проверяется, только если менялась доставка.
func checkPurchaseState(p *domain.Purchase, deliveryChanged bool) error {
	if p.Cost().GreaterThan(domain.MaxAmount) {
		return fmt.Errorf("%w: total cost %s exceeds %s", domain.ErrInvalidAmount, p.Cost().String(), domain.MaxAmount.String())
	}
	if p.PurchaseStatus == domain.PurchaseStatusCompleted && p.PaymentMethod == nil {
		return domain.ErrPaymentMethodRequired
	}
	if deliveryChanged && p.DeliveryStatus != domain.DeliveryStatusPendingDispatch &&
		(p.TrackingNumber == nil || strings.TrimSpace(*p.TrackingNumber) == "") {
		return domain.ErrTrackingNumberRequired
	}
	return nil
}
