package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avc/purchase-ledger/internal/domain"
	"go.uber.org/zap"
)

type BalanceHandler struct {
	balanceService domain.BalanceService
	logger         *zap.Logger
}

func NewBalanceHandler(balanceService domain.BalanceService, logger *zap.Logger) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
		logger:         logger,
	}
}

func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	system, ok := GetSystem(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	balance, err := h.balanceService.GetBalance(r.Context(), system)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to get balance")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, balance)
}

func (h *BalanceHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	system, ok := GetSystem(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := h.balanceService.ListEntries(r.Context(), system)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to list ledger entries")
		return
	}

	if len(entries) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, entries)
}

// chargeRequest принимает сумму строкой или числом, чтобы не терять точность
type chargeRequest struct {
	Amount json.RawMessage `json:"amount"`
}

// amountText возвращает сумму как текст; разбор числа остается за domain.ParseAmount
func (c chargeRequest) amountText() string {
	var s string
	if err := json.Unmarshal(c.Amount, &s); err == nil {
		return s
	}
	return string(c.Amount)
}

func (h *BalanceHandler) AddCharge(w http.ResponseWriter, r *http.Request) {
	system, ok := GetSystem(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req chargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	amount, err := domain.ParseAmount(req.amountText())
	if err != nil {
		writeServiceError(w, h.logger, err, "invalid charge amount")
		return
	}

	entry, err := h.balanceService.AddCharge(r.Context(), system, amount)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to add charge")
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, entry)
}
