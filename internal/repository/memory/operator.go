package memory

import (
	"context"
	"sync"
	"time"

	"github.com/avc/purchase-ledger/internal/domain"
)

// Operators хранит операторов в памяти
type Operators struct {
	mu      sync.Mutex
	byLogin map[string]*domain.Operator
	nextID  int64
}

// NewOperators создает пустое хранилище операторов
func NewOperators() *Operators {
	return &Operators{byLogin: make(map[string]*domain.Operator)}
}

// CreateOperator сохраняет оператора. Логин уникален для всех систем.
func (s *Operators) CreateOperator(_ context.Context, login, passwordHash, system string) (*domain.Operator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byLogin[login]; ok {
		return nil, domain.ErrOperatorExists
	}

	s.nextID++
	op := &domain.Operator{
		ID:           s.nextID,
		Login:        login,
		PasswordHash: passwordHash,
		System:       system,
		CreatedAt:    time.Now(),
	}
	s.byLogin[login] = op

	out := *op
	return &out, nil
}

// GetOperatorByLogin возвращает оператора по логину
func (s *Operators) GetOperatorByLogin(_ context.Context, login string) (*domain.Operator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	op, ok := s.byLogin[login]
	if !ok {
		return nil, domain.ErrOperatorNotFound
	}

	out := *op
	return &out, nil
}
