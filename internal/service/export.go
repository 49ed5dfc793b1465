package service

import (
	"context"
	"fmt"
	"io"

	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	purchasesSheet = "Purchases"
	ledgerSheet    = "Balance history"
)

var purchaseHeaders = []string{
	"No", "Application", "Date", "Applicant", "Category", "Product",
	"Amount (CNY)", "Amount (display)", "Cost (CNY)", "Status", "Payment", "Delivery", "Tracking", "URL",
}

var ledgerHeaders = []string{
	"No", "Date", "Amount (CNY)", "Amount (display)", "Balance (CNY)", "Kind",
}

// ExportWorkbook пишет xlsx-книгу с листами покупок и истории баланса.
// Лист покупок содержит только покупки, прошедшие фильтр; история баланса полная.
func (s *PurchaseService) ExportWorkbook(ctx context.Context, system string, filter domain.PurchaseFilter, w io.Writer) error {
	purchases, err := s.ListPurchases(ctx, system, filter)
	if err != nil {
		return err
	}

	entries, err := s.ledger.ListEntries(ctx, system)
	if err != nil {
		return s.wrap(err, "failed to list ledger entries for export")
	}

	f, err := buildWorkbook(purchases, entries)
	if err != nil {
		return fmt.Errorf("purchase service: failed to build workbook: %w", err)
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("purchase service: failed to write workbook: %w", err)
	}
	return nil
}

func buildWorkbook(purchases []*domain.Purchase, entries []*domain.LedgerEntry) (*excelize.File, error) {
	f := excelize.NewFile()

	// Лист по умолчанию переименовываем в лист покупок
	if err := f.SetSheetName("Sheet1", purchasesSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(ledgerSheet); err != nil {
		return nil, err
	}

	if err := writeRow(f, purchasesSheet, 1, toCells(purchaseHeaders)); err != nil {
		return nil, err
	}
	for i, p := range purchases {
		row := []interface{}{
			i + 1,
			fmt.Sprintf("#%d", p.ApplicationNumber),
			p.ApplicationDate,
			p.Applicant,
			string(p.Category),
			p.ProductName,
			moneyCell(p.Amount),
			displayCell(p.Amount),
			moneyCell(p.Cost()),
			string(p.PurchaseStatus),
			optionalCell(p.PaymentMethod),
			string(p.DeliveryStatus),
			optionalCell(p.TrackingNumber),
			p.ProductURL,
		}
		if err := writeRow(f, purchasesSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, ledgerSheet, 1, toCells(ledgerHeaders)); err != nil {
		return nil, err
	}
	for i, e := range entries {
		row := []interface{}{
			i + 1,
			e.Date,
			moneyCell(e.Amount),
			displayCell(e.Amount),
			moneyCell(e.Balance),
			string(e.Kind),
		}
		if err := writeRow(f, ledgerSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(purchasesSheet, "F", "F", 30); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(purchasesSheet, "N", "N", 50); err != nil {
		return nil, err
	}

	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toCells(headers []string) []interface{} {
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}

func moneyCell(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// displayCell округляет сумму в валюте отображения до целых
func displayCell(yuan decimal.Decimal) int64 {
	return domain.ToDisplayCurrency(yuan).Round(0).IntPart()
}

func optionalCell[T ~string](v *T) string {
	if v == nil {
		return "-"
	}
	return string(*v)
}
