package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/avc/purchase-ledger/internal/utils/jwt"
	"github.com/avc/purchase-ledger/internal/utils/password"
)

// AuthService реализует domain.AuthService
type AuthService struct {
	operatorRepo   domain.OperatorRepository
	passwordHasher password.Hasher
	jwtManager     *jwt.Manager
	systems        map[string]struct{}
}

// NewAuthService создает новый AuthService. Операторы могут регистрироваться
// только в перечисленных системах.
func NewAuthService(
	operatorRepo domain.OperatorRepository,
	passwordHasher password.Hasher,
	jwtManager *jwt.Manager,
	systems []string,
) *AuthService {
	allowed := make(map[string]struct{}, len(systems))
	for _, s := range systems {
		allowed[s] = struct{}{}
	}

	return &AuthService{
		operatorRepo:   operatorRepo,
		passwordHasher: passwordHasher,
		jwtManager:     jwtManager,
		systems:        allowed,
	}
}

// Register регистрирует нового оператора системы
func (s *AuthService) Register(ctx context.Context, login, operatorPassword, system string) (string, error) {
	// Валидация входных данных
	if login == "" || operatorPassword == "" {
		return "", fmt.Errorf("auth service: empty login or password")
	}
	if _, ok := s.systems[system]; !ok {
		return "", domain.ErrUnknownSystem
	}

	// Хеширование пароля
	hash, err := s.passwordHasher.Hash(operatorPassword)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to hash password for operator %q: %w", login, err)
	}

	// Создание оператора
	op, err := s.operatorRepo.CreateOperator(ctx, login, hash, system)
	if err != nil {
		// Не оборачиваем sentinel error
		if errors.Is(err, domain.ErrOperatorExists) {
			return "", err
		}
		return "", fmt.Errorf("auth service: failed to register operator %q: %w", login, err)
	}

	// Генерация JWT токена
	token, err := s.jwtManager.Generate(op.ID, op.System)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for operator %d: %w", op.ID, err)
	}

	return token, nil
}

// Login аутентифицирует оператора
func (s *AuthService) Login(ctx context.Context, login, operatorPassword string) (string, error) {
	// Валидация входных данных
	if login == "" || operatorPassword == "" {
		return "", fmt.Errorf("auth service: empty login or password")
	}

	// Получение оператора по логину
	op, err := s.operatorRepo.GetOperatorByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrOperatorNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("auth service: failed to get operator %q: %w", login, err)
	}

	// Проверка пароля
	if err := s.passwordHasher.Check(op.PasswordHash, operatorPassword); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	// Генерация JWT токена
	token, err := s.jwtManager.Generate(op.ID, op.System)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for operator %d: %w", op.ID, err)
	}

	return token, nil
}
