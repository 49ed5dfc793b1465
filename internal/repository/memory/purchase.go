package memory

import (
	"context"
	"sync"
	"time"

	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/google/uuid"
)

// Purchases хранит покупки в памяти
type Purchases struct {
	mu        sync.Mutex
	purchases map[string][]*domain.Purchase
	now       func() time.Time
}

// NewPurchases создает пустое хранилище покупок
func NewPurchases() *Purchases {
	return &Purchases{
		purchases: make(map[string][]*domain.Purchase),
		now:       time.Now,
	}
}

// Create сохраняет покупку и присваивает ей следующий номер заявки
func (s *Purchases) Create(_ context.Context, p *domain.Purchase) (*domain.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := p.Clone()
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}

	maxNumber := 0
	for _, existing := range s.purchases[stored.System] {
		if existing.ApplicationNumber > maxNumber {
			maxNumber = existing.ApplicationNumber
		}
	}
	stored.ApplicationNumber = maxNumber + 1
	stored.CreatedAt = s.now()

	s.purchases[stored.System] = append(s.purchases[stored.System], stored)
	return stored.Clone(), nil
}

// Update применяет частичное изменение
func (s *Purchases) Update(_ context.Context, system, id string, upd domain.PurchaseUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.purchases[system] {
		if p.ID == id {
			s.purchases[system][i] = p.Apply(upd)
			return nil
		}
	}
	return domain.ErrPurchaseNotFound
}

// Delete удаляет покупку
func (s *Purchases) Delete(_ context.Context, system, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.purchases[system]
	for i, p := range list {
		if p.ID == id {
			s.purchases[system] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return domain.ErrPurchaseNotFound
}

// List возвращает покупки, новые первыми
func (s *Purchases) List(_ context.Context, system string) ([]*domain.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.purchases[system]
	out := make([]*domain.Purchase, 0, len(src))
	for i := len(src) - 1; i >= 0; i-- {
		out = append(out, src[i].Clone())
	}
	return out, nil
}

// Get возвращает покупку по идентификатору
func (s *Purchases) Get(_ context.Context, system, id string) (*domain.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.purchases[system] {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return nil, domain.ErrPurchaseNotFound
}
