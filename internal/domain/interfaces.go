package domain

import (
	"context"
	"io"

	"github.com/shopspring/decimal"
)

// OperatorRepository определяет методы для работы с операторами
type OperatorRepository interface {
	CreateOperator(ctx context.Context, login, passwordHash, system string) (*Operator, error)
	GetOperatorByLogin(ctx context.Context, login string) (*Operator, error)
}

// LedgerStore определяет методы журнала баланса.
// Журнал только дополняется: записи не изменяются и не удаляются.
type LedgerStore interface {
	CurrentBalance(ctx context.Context, system string) (decimal.Decimal, error)
	ListEntries(ctx context.Context, system string) ([]*LedgerEntry, error)
	AppendEntry(ctx context.Context, system string, draft EntryDraft) (*LedgerEntry, error)
	// Deduct атомарно проверяет баланс и добавляет запись списания на draft.Amount.
	Deduct(ctx context.Context, system string, draft EntryDraft) (*LedgerEntry, error)
}

// PurchaseStore определяет методы для работы с покупками
type PurchaseStore interface {
	Create(ctx context.Context, p *Purchase) (*Purchase, error)
	Update(ctx context.Context, system, id string, upd PurchaseUpdate) error
	Delete(ctx context.Context, system, id string) error
	List(ctx context.Context, system string) ([]*Purchase, error)
	Get(ctx context.Context, system, id string) (*Purchase, error)
}

// ScopeLocker сериализует изменения баланса в пределах одной системы
type ScopeLocker interface {
	Lock(ctx context.Context, system string) (unlock func(), err error)
}

// ChangePublisher публикует события изменения данных
type ChangePublisher interface {
	Publish(ctx context.Context, event ChangeEvent) error
}

// ChangeSubscriber подписывает клиента на события системы
type ChangeSubscriber interface {
	Subscribe(ctx context.Context, system string) (<-chan ChangeEvent, error)
}

// AuthService определяет методы аутентификации
type AuthService interface {
	Register(ctx context.Context, login, password, system string) (string, error)
	Login(ctx context.Context, login, password string) (string, error)
}

// PurchaseService определяет операции с покупками
type PurchaseService interface {
	SubmitNewPurchase(ctx context.Context, system string, form PurchaseForm) (*Purchase, error)
	ApplyPurchaseEdit(ctx context.Context, system, id string, upd PurchaseUpdate) error
	DeletePurchase(ctx context.Context, system, id string) error
	GetPurchase(ctx context.Context, system, id string) (*Purchase, error)
	ListPurchases(ctx context.Context, system string, filter PurchaseFilter) ([]*Purchase, error)
	Stats(ctx context.Context, system string) (*PurchaseStats, error)
	ExportWorkbook(ctx context.Context, system string, filter PurchaseFilter, w io.Writer) error
}

// BalanceService определяет операции с балансом
type BalanceService interface {
	GetBalance(ctx context.Context, system string) (*Balance, error)
	ListEntries(ctx context.Context, system string) ([]*LedgerEntry, error)
	AddCharge(ctx context.Context, system string, amount decimal.Decimal) (*LedgerEntry, error)
}

// SnapshotRefresher обновляет локальное зеркало данных системы
type SnapshotRefresher interface {
	Refresh(ctx context.Context, system string) error
}
