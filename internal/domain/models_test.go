package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestPurchase_Cost(t *testing.T) {
	t.Run("Amount only", func(t *testing.T) {
		p := &Purchase{Amount: dec("60")}
		assert.True(t, p.Cost().Equal(dec("60")))
	})

	t.Run("With all fees", func(t *testing.T) {
		p := &Purchase{
			Amount:       dec("100.50"),
			Commission:   decPtr("5"),
			AppraisalFee: decPtr("10.25"),
			ShippingFee:  decPtr("3.25"),
		}
		assert.True(t, p.Cost().Equal(dec("119")), "got %s", p.Cost())
	})
}

func TestPurchase_BalanceFinanced(t *testing.T) {
	balance := PaymentMethodBalance
	card := PaymentMethodCard

	tests := []struct {
		name     string
		purchase *Purchase
		want     bool
	}{
		{"Nil purchase", nil, false},
		{"Completed with balance", &Purchase{PurchaseStatus: PurchaseStatusCompleted, PaymentMethod: &balance}, true},
		{"Completed with card", &Purchase{PurchaseStatus: PurchaseStatusCompleted, PaymentMethod: &card}, false},
		{"Incomplete with balance", &Purchase{PurchaseStatus: PurchaseStatusIncomplete, PaymentMethod: &balance}, false},
		{"Completed without method", &Purchase{PurchaseStatus: PurchaseStatusCompleted}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.purchase.BalanceFinanced())
		})
	}
}

func TestPurchase_Apply(t *testing.T) {
	card := PaymentMethodCard
	original := &Purchase{
		ID:             "p1",
		Amount:         dec("60"),
		PurchaseStatus: PurchaseStatusCompleted,
		PaymentMethod:  &card,
		DeliveryStatus: DeliveryStatusPendingDispatch,
	}

	t.Run("Merges only present fields", func(t *testing.T) {
		amount := dec("30")
		tracking := "1234567890"
		next := original.Apply(PurchaseUpdate{Amount: &amount, TrackingNumber: &tracking})

		assert.True(t, next.Amount.Equal(dec("30")))
		require.NotNil(t, next.TrackingNumber)
		assert.Equal(t, tracking, *next.TrackingNumber)
		assert.Equal(t, PurchaseStatusCompleted, next.PurchaseStatus)
		assert.Equal(t, PaymentMethodCard, *next.PaymentMethod)

		// Исходная покупка не изменилась
		assert.True(t, original.Amount.Equal(dec("60")))
		assert.Nil(t, original.TrackingNumber)
	})

	t.Run("Clears payment method", func(t *testing.T) {
		next := original.Apply(PurchaseUpdate{ClearPaymentMethod: true})
		assert.Nil(t, next.PaymentMethod)
		assert.NotNil(t, original.PaymentMethod)
	})
}

func TestPurchaseUpdate_IsEmpty(t *testing.T) {
	assert.True(t, PurchaseUpdate{}.IsEmpty())

	name := "bag"
	assert.False(t, PurchaseUpdate{ProductName: &name}.IsEmpty())
	assert.False(t, PurchaseUpdate{ClearPaymentMethod: true}.IsEmpty())
}

func TestPurchaseForm_ToPurchase_Defaults(t *testing.T) {
	form := PurchaseForm{
		ApplicationDate: "2025-02-01",
		Applicant:       "kim",
		Category:        CategoryBag,
		ProductName:     "tote",
		Amount:          dec("10"),
	}

	p := form.ToPurchase("ella")
	assert.Equal(t, "ella", p.System)
	assert.Equal(t, PurchaseStatusIncomplete, p.PurchaseStatus)
	assert.Equal(t, DeliveryStatusPendingDispatch, p.DeliveryStatus)
	assert.Nil(t, p.PaymentMethod)
}

func TestPurchaseFilter_Match(t *testing.T) {
	p := &Purchase{Category: CategoryShoes, PurchaseStatus: PurchaseStatusCompleted, DeliveryStatus: DeliveryStatusDispatched}

	assert.True(t, PurchaseFilter{}.Match(p))
	assert.True(t, PurchaseFilter{Category: CategoryShoes, DeliveryStatus: DeliveryStatusDispatched}.Match(p))
	assert.False(t, PurchaseFilter{Category: CategoryBag}.Match(p))
	assert.False(t, PurchaseFilter{PurchaseStatus: PurchaseStatusIncomplete}.Match(p))
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(dec("50"), dec("40"))

	assert.True(t, errors.Is(err, ErrInsufficientBalance))
	assert.True(t, err.Shortfall().Equal(dec("10")))
	assert.Contains(t, err.Error(), "shortfall 10.00")
}

func TestToDisplayCurrency(t *testing.T) {
	assert.True(t, ToDisplayCurrency(dec("100")).Equal(dec("19500")))
	assert.True(t, ToDisplayCurrency(dec("0.5")).Equal(dec("97.5")))
}

func TestAmountInRange(t *testing.T) {
	assert.True(t, AmountInRange(dec("0")))
	assert.True(t, AmountInRange(dec("0.001")))
	assert.True(t, AmountInRange(MaxAmount))
	assert.True(t, AmountInRange(MaxAmount.Neg()))
	assert.False(t, AmountInRange(dec("1e12")))
	assert.False(t, AmountInRange(dec("999999999999.995")))
	assert.False(t, AmountInRange(dec("1e100000000")))
	assert.False(t, AmountInRange(dec("1e-100000000")))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"Integer", "100", "100", false},
		{"Fraction", " 12.34 ", "12.34", false},
		{"Zero", "0", "", true},
		{"Negative", "-5", "", true},
		{"Not a number", "abc", "", true},
		{"Empty", "", "", true},
		{"Max", "999999999999.99", "999999999999.99", false},
		{"Above max", "1000000000000", "", true},
		{"Exponent form", "1.5e3", "1500", false},
		{"Huge exponent", "1e100000000", "", true},
		{"Tiny exponent", "1e-100000000", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tt.want)))
		})
	}
}
