package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/jackc/pgx/v5"
)

// OperatorRepository реализует репозиторий операторов.
type OperatorRepository struct {
	db DBTX
}

// NewOperatorRepository создает новый OperatorRepository
func NewOperatorRepository(db DBTX) *OperatorRepository {
	return &OperatorRepository{db: db}
}

// CreateOperator создает нового оператора системы
func (r *OperatorRepository) CreateOperator(ctx context.Context, login, passwordHash, system string) (*domain.Operator, error) {
	op := &domain.Operator{}

	err := r.db.QueryRow(ctx,
		`INSERT INTO operators (login, password_hash, system)
		 VALUES ($1, $2, $3)
		 RETURNING id, login, password_hash, system, created_at`,
		login, passwordHash, system,
	).Scan(&op.ID, &op.Login, &op.PasswordHash, &op.System, &op.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrOperatorExists
		}
		return nil, fmt.Errorf("repository: failed to create operator %q: %w", login, err)
	}

	return op, nil
}

// GetOperatorByLogin получает оператора по логину
func (r *OperatorRepository) GetOperatorByLogin(ctx context.Context, login string) (*domain.Operator, error) {
	op := &domain.Operator{}

	err := r.db.QueryRow(ctx,
		`SELECT id, login, password_hash, system, created_at
		 FROM operators
		 WHERE login = $1`,
		login,
	).Scan(&op.ID, &op.Login, &op.PasswordHash, &op.System, &op.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOperatorNotFound
		}
		return nil, fmt.Errorf("repository: failed to get operator by login %q: %w", login, err)
	}

	return op, nil
}
