package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var purchaseColumnNames = []string{
	"id", "system", "application_number", "application_date", "applicant", "category",
	"image_ref", "product_url", "product_name", "amount", "commission", "appraisal_fee", "shipping_fee",
	"purchase_status", "payment_method", "delivery_status", "tracking_number", "created_at",
}

func TestPurchaseRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Assigns next application number", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := NewPurchaseRepository(mock)

		createdAt := time.Now()
		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs("purchases:ella").
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`SELECT COALESCE\(MAX\(application_number\), 0\) \+ 1 FROM purchases`).
			WithArgs("ella").
			WillReturnRows(pgxmock.NewRows([]string{"next"}).AddRow(4))
		mock.ExpectQuery(`INSERT INTO purchases`).
			WithArgs(
				pgxmock.AnyArg(), "ella", 4, "2024-03-01", "Ivanova", domain.CategoryBag,
				(*string)(nil), "", "Tote", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				domain.PurchaseStatusIncomplete, (*domain.PaymentMethod)(nil), domain.DeliveryStatusPendingDispatch, (*string)(nil),
			).
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))
		mock.ExpectCommit()

		p, err := repo.Create(ctx, &domain.Purchase{
			System:          "ella",
			ApplicationDate: "2024-03-01",
			Applicant:       "Ivanova",
			Category:        domain.CategoryBag,
			ProductName:     "Tote",
			Amount:          decimal.RequireFromString("120.50"),
			PurchaseStatus:  domain.PurchaseStatusIncomplete,
			DeliveryStatus:  domain.DeliveryStatusPendingDispatch,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, 4, p.ApplicationNumber)
		assert.Equal(t, createdAt, p.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insert failure rolls back", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := NewPurchaseRepository(mock)

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
			WithArgs("purchases:ella").
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`SELECT COALESCE\(MAX`).
			WithArgs("ella").
			WillReturnRows(pgxmock.NewRows([]string{"next"}).AddRow(1))
		anyArgs := make([]any, 17)
		for i := range anyArgs {
			anyArgs[i] = pgxmock.AnyArg()
		}
		mock.ExpectQuery(`INSERT INTO purchases`).
			WithArgs(anyArgs...).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		p, err := repo.Create(ctx, &domain.Purchase{System: "ella", ID: "fixed"})
		assert.Error(t, err)
		assert.Nil(t, p)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPurchaseRepository_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPurchaseRepository(mock)
	ctx := context.Background()

	t.Run("Only provided columns", func(t *testing.T) {
		status := domain.PurchaseStatusCompleted
		method := domain.PaymentMethodBalance

		mock.ExpectExec(`UPDATE purchases SET purchase_status = \$1, payment_method = \$2 WHERE system = \$3 AND id = \$4`).
			WithArgs(domain.PurchaseStatusCompleted, domain.PaymentMethodBalance, "ella", "p-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Update(ctx, "ella", "p-1", domain.PurchaseUpdate{PurchaseStatus: &status, PaymentMethod: &method})
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Clear payment method", func(t *testing.T) {
		status := domain.PurchaseStatusIncomplete

		mock.ExpectExec(`UPDATE purchases SET purchase_status = \$1, payment_method = \$2 WHERE`).
			WithArgs(domain.PurchaseStatusIncomplete, nil, "ella", "p-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Update(ctx, "ella", "p-1", domain.PurchaseUpdate{PurchaseStatus: &status, ClearPaymentMethod: true})
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Application date cast", func(t *testing.T) {
		date := "2024-05-01"

		mock.ExpectExec(`UPDATE purchases SET application_date = \$1::date WHERE`).
			WithArgs(date, "ella", "p-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Update(ctx, "ella", "p-1", domain.PurchaseUpdate{ApplicationDate: &date})
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		name := "Wallet"

		mock.ExpectExec(`UPDATE purchases SET product_name = \$1 WHERE`).
			WithArgs(name, "ella", "missing").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.Update(ctx, "ella", "missing", domain.PurchaseUpdate{ProductName: &name})
		assert.ErrorIs(t, err, domain.ErrPurchaseNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPurchaseRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPurchaseRepository(mock)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM purchases`).
		WithArgs("ella", "p-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, repo.Delete(ctx, "ella", "p-1"))

	mock.ExpectExec(`DELETE FROM purchases`).
		WithArgs("ella", "p-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(ctx, "ella", "p-1"), domain.ErrPurchaseNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchaseRepository_GetAndList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPurchaseRepository(mock)
	ctx := context.Background()

	method := domain.PaymentMethodCard
	tracking := "RB123"
	fee := decimal.RequireFromString("5")
	now := time.Now()

	row := func() *pgxmock.Rows {
		return pgxmock.NewRows(purchaseColumnNames).
			AddRow("p-1", "ella", 1, "2024-03-01", "Ivanova", domain.CategoryWatch,
				nil, "https://shop.example/item", "Watch", decimal.RequireFromString("300"), &fee, nil, nil,
				domain.PurchaseStatusCompleted, &method, domain.DeliveryStatusDispatched, &tracking, now)
	}

	t.Run("Get", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, system, application_number`).
			WithArgs("ella", "p-1").
			WillReturnRows(row())

		p, err := repo.Get(ctx, "ella", "p-1")
		require.NoError(t, err)
		assert.Equal(t, 1, p.ApplicationNumber)
		assert.Equal(t, domain.CategoryWatch, p.Category)
		assert.True(t, p.Cost().Equal(decimal.RequireFromString("305")))
		require.NotNil(t, p.PaymentMethod)
		assert.Equal(t, domain.PaymentMethodCard, *p.PaymentMethod)
		assert.Nil(t, p.AppraisalFee)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Get not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, system, application_number`).
			WithArgs("ella", "nope").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.Get(ctx, "ella", "nope")
		assert.ErrorIs(t, err, domain.ErrPurchaseNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("List", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, system, application_number`).
			WithArgs("ella").
			WillReturnRows(row())

		list, err := repo.List(ctx, "ella")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "p-1", list[0].ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
