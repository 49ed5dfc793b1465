package service

import (
	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// adjustment - изменение баланса, которого требует мутация покупки.
// amount всегда неотрицателен, направление задает kind.
type adjustment struct {
	kind   domain.EntryKind
	amount decimal.Decimal
}

func (a adjustment) isNoop() bool {
	return a.amount.IsZero()
}

// planAdjustment вычисляет изменение баланса при переходе покупки из old в next.
// old == nil означает создание покупки.
func planAdjustment(old, next *domain.Purchase) adjustment {
	oldFinanced := old.BalanceFinanced()
	nextFinanced := next.BalanceFinanced()

	switch {
	case old == nil && nextFinanced:
		return debit(next.Cost())
	case oldFinanced && nextFinanced:
		diff := next.Cost().Sub(old.Cost())
		if diff.IsPositive() {
			return debit(diff)
		}
		if diff.IsNegative() {
			return credit(diff.Neg())
		}
	case !oldFinanced && nextFinanced:
		return debit(next.Cost())
	case oldFinanced && !nextFinanced:
		return credit(old.Cost())
	}
	return adjustment{}
}

func debit(amount decimal.Decimal) adjustment {
	return adjustment{kind: domain.EntryKindDeduction, amount: amount}
}

func credit(amount decimal.Decimal) adjustment {
	return adjustment{kind: domain.EntryKindRefund, amount: amount}
}
