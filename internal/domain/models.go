package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category представляет категорию товара
type Category string

const (
	CategoryBag       Category = "bag"
	CategoryAccessory Category = "accessory"
	CategoryClothing  Category = "clothing"
	CategoryShoes     Category = "shoes"
	CategoryWatch     Category = "watch"
	CategoryOther     Category = "other"
)

// PurchaseStatus представляет статус покупки
type PurchaseStatus string

const (
	PurchaseStatusIncomplete PurchaseStatus = "incomplete"
	PurchaseStatusCompleted  PurchaseStatus = "completed"
)

// PaymentMethod представляет способ оплаты выполненной покупки
type PaymentMethod string

const (
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodBalance PaymentMethod = "balance"
)

// DeliveryStatus представляет этап доставки
type DeliveryStatus string

const (
	DeliveryStatusPendingDispatch  DeliveryStatus = "pending-dispatch"
	DeliveryStatusDispatched       DeliveryStatus = "dispatched"
	DeliveryStatusDeliveryComplete DeliveryStatus = "delivery-complete"
	DeliveryStatusReceived         DeliveryStatus = "received"
)

// EntryKind представляет тип записи в журнале баланса
type EntryKind string

const (
	EntryKindCharge    EntryKind = "charge"
	EntryKindDeduction EntryKind = "deduction"
	EntryKindRefund    EntryKind = "refund"
	EntryKindReversal  EntryKind = "reversal"
)

// Operator представляет пользователя системы учета
type Operator struct {
	ID           int64     `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"` // Не отправляем хеш в JSON
	System       string    `json:"system"`
	CreatedAt    time.Time `json:"created_at"`
}

// Purchase представляет заявку на покупку
type Purchase struct {
	ID                string           `json:"id"`
	System            string           `json:"-"`
	ApplicationNumber int              `json:"applicationNumber"`
	ApplicationDate   string           `json:"applicationDate"`
	Applicant         string           `json:"applicant"`
	Category          Category         `json:"category"`
	ImageRef          *string          `json:"imageRef,omitempty"`
	ProductURL        string           `json:"productUrl"`
	ProductName       string           `json:"productName"`
	Amount            decimal.Decimal  `json:"amount"`
	Commission        *decimal.Decimal `json:"commission,omitempty"`
	AppraisalFee      *decimal.Decimal `json:"appraisalFee,omitempty"`
	ShippingFee       *decimal.Decimal `json:"shippingFee,omitempty"`
	PurchaseStatus    PurchaseStatus   `json:"purchaseStatus"`
	PaymentMethod     *PaymentMethod   `json:"paymentMethod,omitempty"`
	DeliveryStatus    DeliveryStatus   `json:"deliveryStatus"`
	TrackingNumber    *string          `json:"trackingNumber,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
}

// Cost возвращает полную стоимость покупки: цена товара плюс все сборы
func (p *Purchase) Cost() decimal.Decimal {
	return p.Amount.
		Add(orZero(p.Commission)).
		Add(orZero(p.AppraisalFee)).
		Add(orZero(p.ShippingFee))
}

// BalanceFinanced сообщает, оплачена ли покупка из предоплаченного баланса
func (p *Purchase) BalanceFinanced() bool {
	return p != nil &&
		p.PurchaseStatus == PurchaseStatusCompleted &&
		p.PaymentMethod != nil && *p.PaymentMethod == PaymentMethodBalance
}

// Clone возвращает независимую копию покупки
func (p *Purchase) Clone() *Purchase {
	c := *p
	c.ImageRef = cloneString(p.ImageRef)
	c.Commission = cloneDecimal(p.Commission)
	c.AppraisalFee = cloneDecimal(p.AppraisalFee)
	c.ShippingFee = cloneDecimal(p.ShippingFee)
	c.TrackingNumber = cloneString(p.TrackingNumber)
	if p.PaymentMethod != nil {
		m := *p.PaymentMethod
		c.PaymentMethod = &m
	}
	return &c
}

// Apply возвращает копию покупки с примененными изменениями
func (p *Purchase) Apply(upd PurchaseUpdate) *Purchase {
	next := p.Clone()

	if upd.ApplicationDate != nil {
		next.ApplicationDate = *upd.ApplicationDate
	}
	if upd.Applicant != nil {
		next.Applicant = *upd.Applicant
	}
	if upd.Category != nil {
		next.Category = *upd.Category
	}
	if upd.ImageRef != nil {
		next.ImageRef = cloneString(upd.ImageRef)
	}
	if upd.ProductURL != nil {
		next.ProductURL = *upd.ProductURL
	}
	if upd.ProductName != nil {
		next.ProductName = *upd.ProductName
	}
	if upd.Amount != nil {
		next.Amount = *upd.Amount
	}
	if upd.Commission != nil {
		next.Commission = cloneDecimal(upd.Commission)
	}
	if upd.AppraisalFee != nil {
		next.AppraisalFee = cloneDecimal(upd.AppraisalFee)
	}
	if upd.ShippingFee != nil {
		next.ShippingFee = cloneDecimal(upd.ShippingFee)
	}
	if upd.PurchaseStatus != nil {
		next.PurchaseStatus = *upd.PurchaseStatus
	}
	if upd.PaymentMethod != nil {
		m := *upd.PaymentMethod
		next.PaymentMethod = &m
	}
	if upd.ClearPaymentMethod {
		next.PaymentMethod = nil
	}
	if upd.DeliveryStatus != nil {
		next.DeliveryStatus = *upd.DeliveryStatus
	}
	if upd.TrackingNumber != nil {
		next.TrackingNumber = cloneString(upd.TrackingNumber)
	}

	return next
}

// PurchaseForm содержит данные для создания новой покупки
type PurchaseForm struct {
	ApplicationDate string           `json:"applicationDate" validate:"required,datetime=2006-01-02"`
	Applicant       string           `json:"applicant" validate:"required,max=100"`
	Category        Category         `json:"category" validate:"required,oneof=bag accessory clothing shoes watch other"`
	ImageRef        *string          `json:"imageRef,omitempty" validate:"omitempty,max=2048"`
	ProductURL      string           `json:"productUrl" validate:"omitempty,url"`
	ProductName     string           `json:"productName" validate:"required,max=200"`
	Amount          decimal.Decimal  `json:"amount" validate:"gte=0,lte=999999999999.99"`
	Commission      *decimal.Decimal `json:"commission,omitempty" validate:"omitempty,gte=0,lte=999999999999.99"`
	AppraisalFee    *decimal.Decimal `json:"appraisalFee,omitempty" validate:"omitempty,gte=0,lte=999999999999.99"`
	ShippingFee     *decimal.Decimal `json:"shippingFee,omitempty" validate:"omitempty,gte=0,lte=999999999999.99"`
	PurchaseStatus  PurchaseStatus   `json:"purchaseStatus" validate:"omitempty,oneof=incomplete completed"`
	PaymentMethod   *PaymentMethod   `json:"paymentMethod,omitempty" validate:"omitempty,oneof=card balance"`
	DeliveryStatus  DeliveryStatus   `json:"deliveryStatus" validate:"omitempty,oneof=pending-dispatch dispatched delivery-complete received"`
	TrackingNumber  *string          `json:"trackingNumber,omitempty" validate:"omitempty,max=64"`
}

// ToPurchase создает покупку из формы, подставляя значения по умолчанию
func (f PurchaseForm) ToPurchase(system string) *Purchase {
	p := &Purchase{
		System:          system,
		ApplicationDate: f.ApplicationDate,
		Applicant:       f.Applicant,
		Category:        f.Category,
		ImageRef:        cloneString(f.ImageRef),
		ProductURL:      f.ProductURL,
		ProductName:     f.ProductName,
		Amount:          f.Amount,
		Commission:      cloneDecimal(f.Commission),
		AppraisalFee:    cloneDecimal(f.AppraisalFee),
		ShippingFee:     cloneDecimal(f.ShippingFee),
		PurchaseStatus:  f.PurchaseStatus,
		DeliveryStatus:  f.DeliveryStatus,
		TrackingNumber:  cloneString(f.TrackingNumber),
	}
	if f.PaymentMethod != nil {
		m := *f.PaymentMethod
		p.PaymentMethod = &m
	}
	if p.PurchaseStatus == "" {
		p.PurchaseStatus = PurchaseStatusIncomplete
	}
	if p.DeliveryStatus == "" {
		p.DeliveryStatus = DeliveryStatusPendingDispatch
	}
	return p
}

// PurchaseUpdate содержит частичное изменение покупки.
// Поля со значением nil не изменяются.
type PurchaseUpdate struct {
	ApplicationDate *string          `json:"applicationDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Applicant       *string          `json:"applicant,omitempty" validate:"omitempty,min=1,max=100"`
	Category        *Category        `json:"category,omitempty" validate:"omitempty,oneof=bag accessory clothing shoes watch other"`
	ImageRef        *string          `json:"imageRef,omitempty" validate:"omitempty,max=2048"`
	ProductURL      *string          `json:"productUrl,omitempty" validate:"omitempty,url"`
	ProductName     *string          `json:"productName,omitempty" validate:"omitempty,min=1,max=200"`
	Amount          *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,gte=0,lte=999999999999.99"`
	Commission      *decimal.Decimal `json:"commission,omitempty" validate:"omitempty,gte=0,lte=999999999999.99"`
	AppraisalFee    *decimal.Decimal `json:"appraisalFee,omitempty" validate:"omitempty,gte=0,lte=999999999999.99"`
	ShippingFee     *decimal.Decimal `json:"shippingFee,omitempty" validate:"omitempty,gte=0,lte=999999999999.99"`
	PurchaseStatus  *PurchaseStatus  `json:"purchaseStatus,omitempty" validate:"omitempty,oneof=incomplete completed"`
	PaymentMethod   *PaymentMethod   `json:"paymentMethod,omitempty" validate:"omitempty,oneof=card balance"`
	DeliveryStatus  *DeliveryStatus  `json:"deliveryStatus,omitempty" validate:"omitempty,oneof=pending-dispatch dispatched delivery-complete received"`
	TrackingNumber  *string          `json:"trackingNumber,omitempty" validate:"omitempty,max=64"`

	// ClearPaymentMethod сбрасывает способ оплаты. Выставляется сервисом,
	// когда покупка перестает быть выполненной.
	ClearPaymentMethod bool `json:"-"`
}

// IsEmpty сообщает, что изменение не затрагивает ни одного поля
func (u PurchaseUpdate) IsEmpty() bool {
	return u == PurchaseUpdate{}
}

// PurchaseFilter задает фильтры списка покупок
type PurchaseFilter struct {
	Category       Category
	PurchaseStatus PurchaseStatus
	DeliveryStatus DeliveryStatus
}

// Match проверяет, проходит ли покупка фильтр
func (f PurchaseFilter) Match(p *Purchase) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.PurchaseStatus != "" && p.PurchaseStatus != f.PurchaseStatus {
		return false
	}
	if f.DeliveryStatus != "" && p.DeliveryStatus != f.DeliveryStatus {
		return false
	}
	return true
}

// LedgerEntry представляет неизменяемую запись журнала баланса
type LedgerEntry struct {
	ID         string          `json:"id"`
	Seq        int64           `json:"seq"` // Порядок записи в основном хранилище, растет внутри системы
	System     string          `json:"-"`
	Date       string          `json:"date"`
	Amount     decimal.Decimal `json:"amount"`  // Положительная сумма - пополнение, отрицательная - списание
	Balance    decimal.Decimal `json:"balance"` // Баланс после применения записи
	Kind       EntryKind       `json:"kind"`
	PurchaseID *string         `json:"purchaseId,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// EntryDraft описывает запись журнала до сохранения
type EntryDraft struct {
	Amount     decimal.Decimal
	Kind       EntryKind
	PurchaseID *string
}

// Balance представляет текущий баланс
type Balance struct {
	Current  decimal.Decimal `json:"current"`
	Display  decimal.Decimal `json:"display"`
	Degraded bool            `json:"degraded"`
}

// PurchaseStats представляет сводку по покупкам
type PurchaseStats struct {
	Total            int                    `json:"total"`
	Completed        int                    `json:"completed"`
	Incomplete       int                    `json:"incomplete"`
	ByDelivery       map[DeliveryStatus]int `json:"byDelivery"`
	ByCategory       map[Category]int       `json:"byCategory"`
	TotalCost        decimal.Decimal        `json:"totalCost"`
	TotalCostDisplay decimal.Decimal        `json:"totalCostDisplay"`
	CardCost         decimal.Decimal        `json:"cardCost"`
	BalanceCost      decimal.Decimal        `json:"balanceCost"`
	Balance          decimal.Decimal        `json:"balance"`
}

// ChangeKind представляет тип изменения для ленты событий
type ChangeKind string

const (
	ChangePurchaseCreated ChangeKind = "purchase.created"
	ChangePurchaseUpdated ChangeKind = "purchase.updated"
	ChangePurchaseDeleted ChangeKind = "purchase.deleted"
	ChangeLedgerAppended  ChangeKind = "ledger.appended"
)

// ChangeEvent представляет событие изменения данных системы
type ChangeEvent struct {
	System string     `json:"system"`
	Kind   ChangeKind `json:"kind"`
	ID     string     `json:"id"`
	At     time.Time  `json:"at"`
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func cloneDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
