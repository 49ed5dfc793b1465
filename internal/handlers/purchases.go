package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avc/purchase-ledger/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PurchasesHandler struct {
	purchaseService domain.PurchaseService
	logger          *zap.Logger
}

func NewPurchasesHandler(purchaseService domain.PurchaseService, logger *zap.Logger) *PurchasesHandler {
	return &PurchasesHandler{
		purchaseService: purchaseService,
		logger:          logger,
	}
}

// filterFromQuery читает фильтры списка покупок из query-параметров
func filterFromQuery(r *http.Request) domain.PurchaseFilter {
	q := r.URL.Query()
	return domain.PurchaseFilter{
		Category:       domain.Category(q.Get("category")),
		PurchaseStatus: domain.PurchaseStatus(q.Get("purchaseStatus")),
		DeliveryStatus: domain.DeliveryStatus(q.Get("deliveryStatus")),
	}
}

func (h *PurchasesHandler) List(w http.ResponseWriter, r *http.Request) {
	system, ok := GetSystem(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	purchases, err := h.purchaseService.ListPurchases(r.Context(), system, filterFromQuery(r))
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to list purchases")
		return
	}

	if len(purchases) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, purchases)
}

func (h *PurchasesHandler) Create(w http.ResponseWriter, r *http.Request) {
	system, ok := GetSystem(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var form domain.PurchaseForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	created, err := h.purchaseService.SubmitNewPurchase(r.Context(), system, form)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to create purchase")
		return
	}

	w.Header().Set("Location", "/api/purchases/"+created.ID)
	writeJSON(w, h.logger, http.StatusCreated, created)
}

func (h *PurchasesHandler) Get(w http.ResponseWriter, r *http.Request) {
	system, ok := GetSystem(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	p, err := h.purchaseService.GetPurchase(r.Context(), system, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to get purchase")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, p)
}

func (h *PurchasesHandler) Update(w http.ResponseWriter, r *http.Request) {
	system, ok := GetSystem(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var upd domain.PurchaseUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.purchaseService.ApplyPurchaseEdit(r.Context(), system, id, upd); err != nil {
		writeServiceError(w, h.logger, err, "failed to update purchase")
		return
	}

	p, err := h.purchaseService.GetPurchase(r.Context(), system, id)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to reload purchase")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, p)
}

func (h *PurchasesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	system, ok := GetSystem(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.purchaseService.DeletePurchase(r.Context(), system, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.logger, err, "failed to delete purchase")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PurchasesHandler) Stats(w http.ResponseWriter, r *http.Request) {
	system, ok := GetSystem(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	stats, err := h.purchaseService.Stats(r.Context(), system)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to compute stats")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, stats)
}

// Export отдает xlsx-книгу. Книга собирается целиком до записи заголовков,
// поэтому ошибка не оставляет клиенту обрезанный файл.
func (h *PurchasesHandler) Export(w http.ResponseWriter, r *http.Request) {
	system, ok := GetSystem(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var buf bytes.Buffer
	if err := h.purchaseService.ExportWorkbook(r.Context(), system, filterFromQuery(r), &buf); err != nil {
		writeServiceError(w, h.logger, err, "failed to export workbook")
		return
	}

	filename := fmt.Sprintf("purchases-%s-%s.xlsx", system, time.Now().Format("20060102"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("failed to write workbook", zap.Error(err))
	}
}
