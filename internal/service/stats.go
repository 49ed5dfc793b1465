package service

import (
	"context"

	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// Stats считает сводку по покупкам системы.
// В суммы входят только выполненные покупки с выбранным способом оплаты.
func (s *PurchaseService) Stats(ctx context.Context, system string) (*domain.PurchaseStats, error) {
	purchases, err := s.purchases.List(ctx, system)
	if err != nil {
		return nil, s.wrap(err, "failed to list purchases for stats")
	}

	balance, err := s.ledger.CurrentBalance(ctx, system)
	if err != nil {
		return nil, s.wrap(err, "failed to get balance for stats")
	}

	return summarize(purchases, balance), nil
}

func summarize(purchases []*domain.Purchase, balance decimal.Decimal) *domain.PurchaseStats {
	stats := &domain.PurchaseStats{
		Total:       len(purchases),
		ByDelivery:  make(map[domain.DeliveryStatus]int),
		ByCategory:  make(map[domain.Category]int),
		TotalCost:   decimal.Zero,
		CardCost:    decimal.Zero,
		BalanceCost: decimal.Zero,
		Balance:     balance,
	}

	for _, p := range purchases {
		stats.ByDelivery[p.DeliveryStatus]++
		stats.ByCategory[p.Category]++

		if p.PurchaseStatus != domain.PurchaseStatusCompleted {
			stats.Incomplete++
			continue
		}
		stats.Completed++

		if p.PaymentMethod == nil {
			continue
		}
		cost := p.Cost()
		stats.TotalCost = stats.TotalCost.Add(cost)
		switch *p.PaymentMethod {
		case domain.PaymentMethodCard:
			stats.CardCost = stats.CardCost.Add(cost)
		case domain.PaymentMethodBalance:
			stats.BalanceCost = stats.BalanceCost.Add(cost)
		}
	}

	stats.TotalCostDisplay = domain.ToDisplayCurrency(stats.TotalCost)
	return stats
}
