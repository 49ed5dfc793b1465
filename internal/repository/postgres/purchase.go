package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const purchaseLockNamespace = "purchases"

const purchaseColumns = `id, system, application_number, application_date::text, applicant, category,
	image_ref, product_url, product_name, amount, commission, appraisal_fee, shipping_fee,
	purchase_status, payment_method, delivery_status, tracking_number, created_at`

// PurchaseRepository реализует репозиторий покупок.
type PurchaseRepository struct {
	db DBTX
}

// NewPurchaseRepository создает новый PurchaseRepository
func NewPurchaseRepository(db DBTX) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// Create сохраняет покупку и присваивает следующий номер заявки в пределах системы.
// Номер вычисляется под advisory-блокировкой, уникальный индекс (system, application_number)
// не дает двум заявкам получить один номер.
func (r *PurchaseRepository) Create(ctx context.Context, p *domain.Purchase) (*domain.Purchase, error) {
	stored := p.Clone()
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}

	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockScope(ctx, tx, purchaseLockNamespace, stored.System); err != nil {
			return err
		}

		err := tx.QueryRow(ctx,
			`SELECT COALESCE(MAX(application_number), 0) + 1 FROM purchases WHERE system = $1`,
			stored.System,
		).Scan(&stored.ApplicationNumber)
		if err != nil {
			return fmt.Errorf("repository: failed to assign application number: %w", err)
		}

		err = tx.QueryRow(ctx,
			`INSERT INTO purchases (id, system, application_number, application_date, applicant, category,
			    image_ref, product_url, product_name, amount, commission, appraisal_fee, shipping_fee,
			    purchase_status, payment_method, delivery_status, tracking_number)
			 VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			 RETURNING created_at`,
			stored.ID, stored.System, stored.ApplicationNumber, stored.ApplicationDate, stored.Applicant, stored.Category,
			stored.ImageRef, stored.ProductURL, stored.ProductName, stored.Amount, stored.Commission, stored.AppraisalFee, stored.ShippingFee,
			stored.PurchaseStatus, stored.PaymentMethod, stored.DeliveryStatus, stored.TrackingNumber,
		).Scan(&stored.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("repository: purchase %q already exists: %w", stored.ID, err)
			}
			return fmt.Errorf("repository: failed to insert purchase: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// Update применяет частичное изменение. Изменяются только переданные поля.
func (r *PurchaseRepository) Update(ctx context.Context, system, id string, upd domain.PurchaseUpdate) error {
	sets, args := updateAssignments(upd)
	if len(sets) == 0 {
		_, err := r.Get(ctx, system, id)
		return err
	}

	args = append(args, system, id)
	query := fmt.Sprintf(`UPDATE purchases SET %s WHERE system = $%d AND id = $%d`,
		strings.Join(sets, ", "), len(args)-1, len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("repository: failed to update purchase %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPurchaseNotFound
	}

	return nil
}

// Delete удаляет покупку
func (r *PurchaseRepository) Delete(ctx context.Context, system, id string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM purchases WHERE system = $1 AND id = $2`,
		system, id,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to delete purchase %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPurchaseNotFound
	}
	return nil
}

// List возвращает покупки системы, новые первыми
func (r *PurchaseRepository) List(ctx context.Context, system string) ([]*domain.Purchase, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+purchaseColumns+`
		 FROM purchases
		 WHERE system = $1
		 ORDER BY created_at DESC, application_number DESC`,
		system,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query purchases for system %q: %w", system, err)
	}
	defer rows.Close()

	var purchases []*domain.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating purchases: %w", err)
	}

	return purchases, nil
}

// Get возвращает покупку по идентификатору
func (r *PurchaseRepository) Get(ctx context.Context, system, id string) (*domain.Purchase, error) {
	p, err := scanPurchase(r.db.QueryRow(ctx,
		`SELECT `+purchaseColumns+`
		 FROM purchases
		 WHERE system = $1 AND id = $2`,
		system, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("repository: failed to get purchase %q: %w", id, err)
	}
	return p, nil
}

func scanPurchase(row rowScanner) (*domain.Purchase, error) {
	p := &domain.Purchase{}
	err := row.Scan(
		&p.ID, &p.System, &p.ApplicationNumber, &p.ApplicationDate, &p.Applicant, &p.Category,
		&p.ImageRef, &p.ProductURL, &p.ProductName, &p.Amount, &p.Commission, &p.AppraisalFee, &p.ShippingFee,
		&p.PurchaseStatus, &p.PaymentMethod, &p.DeliveryStatus, &p.TrackingNumber, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// updateAssignments строит список "column = $n" для непустых полей изменения
func updateAssignments(upd domain.PurchaseUpdate) ([]string, []any) {
	var (
		sets []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.ApplicationDate != nil {
		args = append(args, *upd.ApplicationDate)
		sets = append(sets, fmt.Sprintf("application_date = $%d::date", len(args)))
	}
	if upd.Applicant != nil {
		add("applicant", *upd.Applicant)
	}
	if upd.Category != nil {
		add("category", *upd.Category)
	}
	if upd.ImageRef != nil {
		add("image_ref", *upd.ImageRef)
	}
	if upd.ProductURL != nil {
		add("product_url", *upd.ProductURL)
	}
	if upd.ProductName != nil {
		add("product_name", *upd.ProductName)
	}
	if upd.Amount != nil {
		add("amount", *upd.Amount)
	}
	if upd.Commission != nil {
		add("commission", *upd.Commission)
	}
	if upd.AppraisalFee != nil {
		add("appraisal_fee", *upd.AppraisalFee)
	}
	if upd.ShippingFee != nil {
		add("shipping_fee", *upd.ShippingFee)
	}
	if upd.PurchaseStatus != nil {
		add("purchase_status", *upd.PurchaseStatus)
	}
	if upd.ClearPaymentMethod {
		add("payment_method", nil)
	} else if upd.PaymentMethod != nil {
		add("payment_method", *upd.PaymentMethod)
	}
	if upd.DeliveryStatus != nil {
		add("delivery_status", *upd.DeliveryStatus)
	}
	if upd.TrackingNumber != nil {
		add("tracking_number", *upd.TrackingNumber)
	}

	return sets, args
}
