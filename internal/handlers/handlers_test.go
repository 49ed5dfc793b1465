package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc/purchase-ledger/internal/domain"
	domainmocks "github.com/avc/purchase-ledger/internal/domain/mocks"
	"github.com/avc/purchase-ledger/internal/utils/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func withSystem(req *http.Request, system string) *http.Request {
	ctx := context.WithValue(req.Context(), ClaimsKey, &jwt.Claims{OperatorID: 1, System: system})
	return req.WithContext(ctx)
}

func withID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAuthHandler_Register(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewAuthHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "mika", "pass123", "ella").Return("token", nil).Once()

		body := `{"login":"mika","password":"pass123","system":"ella"}`
		req := httptest.NewRequest(http.MethodPost, "/api/operators/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
	})

	t.Run("Operator exists", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "mika", "pass123", "ella").Return("", domain.ErrOperatorExists).Once()

		body := `{"login":"mika","password":"pass123","system":"ella"}`
		req := httptest.NewRequest(http.MethodPost, "/api/operators/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Unknown system", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "mika", "pass123", "nope").Return("", domain.ErrUnknownSystem).Once()

		body := `{"login":"mika","password":"pass123","system":"nope"}`
		req := httptest.NewRequest(http.MethodPost, "/api/operators/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing system", func(t *testing.T) {
		body := `{"login":"mika","password":"pass123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/operators/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/operators/register", bytes.NewBufferString(`{"login":}`))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewAuthHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "mika", "pass123").Return("token", nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/operators/login", bytes.NewBufferString(`{"login":"mika","password":"pass123"}`))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "mika", "wrong").Return("", domain.ErrInvalidCredentials).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/operators/login", bytes.NewBufferString(`{"login":"mika","password":"wrong"}`))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Internal error", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "mika", "pass123").Return("", errors.New("db down")).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/operators/login", bytes.NewBufferString(`{"login":"mika","password":"pass123"}`))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestBalanceHandler_GetBalance(t *testing.T) {
	mockService := domainmocks.NewBalanceServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewBalanceHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		balance := &domain.Balance{Current: dec("40"), Display: dec("7800"), Degraded: true}
		mockService.EXPECT().GetBalance(mock.Anything, "ella").Return(balance, nil).Once()

		req := withSystem(httptest.NewRequest(http.MethodGet, "/api/balance", nil), "ella")
		w := httptest.NewRecorder()

		handler.GetBalance(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var result domain.Balance
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.True(t, balance.Current.Equal(result.Current))
		assert.True(t, balance.Display.Equal(result.Display))
		assert.True(t, result.Degraded)
	})

	t.Run("Store unavailable", func(t *testing.T) {
		mockService.EXPECT().GetBalance(mock.Anything, "ella").Return(nil, domain.ErrStoreUnavailable).Once()

		req := withSystem(httptest.NewRequest(http.MethodGet, "/api/balance", nil), "ella")
		w := httptest.NewRecorder()

		handler.GetBalance(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/balance", nil)
		w := httptest.NewRecorder()

		handler.GetBalance(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestBalanceHandler_ListEntries(t *testing.T) {
	mockService := domainmocks.NewBalanceServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewBalanceHandler(mockService, logger)

	t.Run("Entries", func(t *testing.T) {
		entries := []*domain.LedgerEntry{
			{ID: "e2", Amount: dec("-60"), Balance: dec("40"), Kind: domain.EntryKindDeduction},
			{ID: "e1", Amount: dec("100"), Balance: dec("100"), Kind: domain.EntryKindCharge},
		}
		mockService.EXPECT().ListEntries(mock.Anything, "ella").Return(entries, nil).Once()

		req := withSystem(httptest.NewRequest(http.MethodGet, "/api/balance/entries", nil), "ella")
		w := httptest.NewRecorder()

		handler.ListEntries(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var result []domain.LedgerEntry
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		require.Len(t, result, 2)
		assert.Equal(t, "e2", result[0].ID)
	})

	t.Run("Empty", func(t *testing.T) {
		mockService.EXPECT().ListEntries(mock.Anything, "ella").Return(nil, nil).Once()

		req := withSystem(httptest.NewRequest(http.MethodGet, "/api/balance/entries", nil), "ella")
		w := httptest.NewRecorder()

		handler.ListEntries(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestBalanceHandler_AddCharge(t *testing.T) {
	mockService := domainmocks.NewBalanceServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewBalanceHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		entry := &domain.LedgerEntry{ID: "e1", Amount: dec("100.5"), Balance: dec("100.5"), Kind: domain.EntryKindCharge}
		mockService.EXPECT().AddCharge(mock.Anything, "ella", mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(dec("100.5"))
		})).Return(entry, nil).Once()

		req := withSystem(httptest.NewRequest(http.MethodPost, "/api/balance/charges", bytes.NewBufferString(`{"amount":"100.5"}`)), "ella")
		w := httptest.NewRecorder()

		handler.AddCharge(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Numeric amount", func(t *testing.T) {
		mockService.EXPECT().AddCharge(mock.Anything, "ella", mock.Anything).
			Return(&domain.LedgerEntry{ID: "e2"}, nil).Once()

		req := withSystem(httptest.NewRequest(http.MethodPost, "/api/balance/charges", bytes.NewBufferString(`{"amount":30}`)), "ella")
		w := httptest.NewRecorder()

		handler.AddCharge(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	for _, body := range []string{
		`{"amount":"-5"}`, `{"amount":0}`, `{}`, `{"amount":null}`,
		`{"amount":"abc"}`, `{"amount":true}`, `{"amount":"1e100000000"}`, `{"amount":1e100000000}`,
	} {
		t.Run("Rejects "+body, func(t *testing.T) {
			req := withSystem(httptest.NewRequest(http.MethodPost, "/api/balance/charges", bytes.NewBufferString(body)), "ella")
			w := httptest.NewRecorder()

			handler.AddCharge(w, req)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		})
	}

	t.Run("Malformed JSON", func(t *testing.T) {
		req := withSystem(httptest.NewRequest(http.MethodPost, "/api/balance/charges", bytes.NewBufferString(`{"amount":`)), "ella")
		w := httptest.NewRecorder()

		handler.AddCharge(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPurchasesHandler_Create(t *testing.T) {
	mockService := domainmocks.NewPurchaseServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewPurchasesHandler(mockService, logger)

	body := `{"applicationDate":"2024-03-05","applicant":"Mika","category":"bag","productName":"Tote",` +
		`"amount":"50","purchaseStatus":"completed","paymentMethod":"balance"}`

	t.Run("Success", func(t *testing.T) {
		created := &domain.Purchase{ID: "p1", ApplicationNumber: 1, Amount: dec("50")}
		mockService.EXPECT().SubmitNewPurchase(mock.Anything, "ella", mock.MatchedBy(func(f domain.PurchaseForm) bool {
			return f.Applicant == "Mika" && f.Amount.Equal(dec("50")) &&
				f.PaymentMethod != nil && *f.PaymentMethod == domain.PaymentMethodBalance
		})).Return(created, nil).Once()

		req := withSystem(httptest.NewRequest(http.MethodPost, "/api/purchases", bytes.NewBufferString(body)), "ella")
		w := httptest.NewRecorder()

		handler.Create(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/purchases/p1", w.Header().Get("Location"))
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		mockService.EXPECT().SubmitNewPurchase(mock.Anything, "ella", mock.Anything).
			Return(nil, domain.NewInsufficientBalanceError(dec("50"), dec("40"))).Once()

		req := withSystem(httptest.NewRequest(http.MethodPost, "/api/purchases", bytes.NewBufferString(body)), "ella")
		w := httptest.NewRecorder()

		handler.Create(w, req)
		assert.Equal(t, http.StatusPaymentRequired, w.Code)

		var result map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, "50", result["required"])
		assert.Equal(t, "40", result["available"])
		assert.Equal(t, "10", result["shortfall"])
	})

	t.Run("Validation error", func(t *testing.T) {
		mockService.EXPECT().SubmitNewPurchase(mock.Anything, "ella", mock.Anything).
			Return(nil, &domain.ValidationError{Fields: map[string]string{"applicant": "required"}}).Once()

		req := withSystem(httptest.NewRequest(http.MethodPost, "/api/purchases", bytes.NewBufferString(body)), "ella")
		w := httptest.NewRecorder()

		handler.Create(w, req)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var result validationResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, "required", result.Fields["applicant"])
	})

	t.Run("Tracking number required", func(t *testing.T) {
		mockService.EXPECT().SubmitNewPurchase(mock.Anything, "ella", mock.Anything).
			Return(nil, domain.ErrTrackingNumberRequired).Once()

		req := withSystem(httptest.NewRequest(http.MethodPost, "/api/purchases", bytes.NewBufferString(body)), "ella")
		w := httptest.NewRecorder()

		handler.Create(w, req)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		req := withSystem(httptest.NewRequest(http.MethodPost, "/api/purchases", bytes.NewBufferString(`{"amount":`)), "ella")
		w := httptest.NewRecorder()

		handler.Create(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPurchasesHandler_List(t *testing.T) {
	mockService := domainmocks.NewPurchaseServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewPurchasesHandler(mockService, logger)

	t.Run("Filters are passed through", func(t *testing.T) {
		filter := domain.PurchaseFilter{Category: domain.CategoryWatch, DeliveryStatus: domain.DeliveryStatusReceived}
		mockService.EXPECT().ListPurchases(mock.Anything, "vmce", filter).
			Return([]*domain.Purchase{{ID: "p1"}}, nil).Once()

		req := withSystem(httptest.NewRequest(http.MethodGet, "/api/purchases?category=watch&deliveryStatus=received", nil), "vmce")
		w := httptest.NewRecorder()

		handler.List(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Empty list", func(t *testing.T) {
		mockService.EXPECT().ListPurchases(mock.Anything, "vmce", domain.PurchaseFilter{}).
			Return([]*domain.Purchase{}, nil).Once()

		req := withSystem(httptest.NewRequest(http.MethodGet, "/api/purchases", nil), "vmce")
		w := httptest.NewRecorder()

		handler.List(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestPurchasesHandler_GetUpdateDelete(t *testing.T) {
	mockService := domainmocks.NewPurchaseServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewPurchasesHandler(mockService, logger)

	t.Run("Get not found", func(t *testing.T) {
		mockService.EXPECT().GetPurchase(mock.Anything, "ella", "missing").Return(nil, domain.ErrPurchaseNotFound).Once()

		req := withID(withSystem(httptest.NewRequest(http.MethodGet, "/api/purchases/missing", nil), "ella"), "missing")
		w := httptest.NewRecorder()

		handler.Get(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Update returns the stored purchase", func(t *testing.T) {
		mockService.EXPECT().ApplyPurchaseEdit(mock.Anything, "ella", "p1", mock.MatchedBy(func(u domain.PurchaseUpdate) bool {
			return u.Amount != nil && u.Amount.Equal(dec("30")) && u.Applicant == nil
		})).Return(nil).Once()
		mockService.EXPECT().GetPurchase(mock.Anything, "ella", "p1").
			Return(&domain.Purchase{ID: "p1", Amount: dec("30")}, nil).Once()

		req := withID(withSystem(httptest.NewRequest(http.MethodPatch, "/api/purchases/p1", bytes.NewBufferString(`{"amount":"30"}`)), "ella"), "p1")
		w := httptest.NewRecorder()

		handler.Update(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Update insufficient balance", func(t *testing.T) {
		mockService.EXPECT().ApplyPurchaseEdit(mock.Anything, "ella", "p1", mock.Anything).
			Return(domain.NewInsufficientBalanceError(dec("90"), dec("40"))).Once()

		req := withID(withSystem(httptest.NewRequest(http.MethodPatch, "/api/purchases/p1", bytes.NewBufferString(`{"amount":"150"}`)), "ella"), "p1")
		w := httptest.NewRecorder()

		handler.Update(w, req)
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		mockService.EXPECT().DeletePurchase(mock.Anything, "ella", "p1").Return(nil).Once()

		req := withID(withSystem(httptest.NewRequest(http.MethodDelete, "/api/purchases/p1", nil), "ella"), "p1")
		w := httptest.NewRecorder()

		handler.Delete(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Delete while primary is down", func(t *testing.T) {
		mockService.EXPECT().DeletePurchase(mock.Anything, "ella", "p1").Return(domain.ErrStoreUnavailable).Once()

		req := withID(withSystem(httptest.NewRequest(http.MethodDelete, "/api/purchases/p1", nil), "ella"), "p1")
		w := httptest.NewRecorder()

		handler.Delete(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestPurchasesHandler_Export(t *testing.T) {
	mockService := domainmocks.NewPurchaseServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewPurchasesHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().ExportWorkbook(mock.Anything, "ella", domain.PurchaseFilter{}, mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, _ domain.PurchaseFilter, w io.Writer) error {
				_, err := w.Write([]byte("xlsx"))
				return err
			}).Once()

		req := withSystem(httptest.NewRequest(http.MethodGet, "/api/export", nil), "ella")
		w := httptest.NewRecorder()

		handler.Export(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "purchases-ella-")
		assert.Equal(t, "xlsx", w.Body.String())
	})

	t.Run("Applies list filters", func(t *testing.T) {
		filter := domain.PurchaseFilter{
			Category:       domain.CategoryWatch,
			PurchaseStatus: domain.PurchaseStatusCompleted,
			DeliveryStatus: domain.DeliveryStatusDispatched,
		}
		mockService.EXPECT().ExportWorkbook(mock.Anything, "ella", filter, mock.Anything).Return(nil).Once()

		req := withSystem(httptest.NewRequest(http.MethodGet,
			"/api/export?category=watch&purchaseStatus=completed&deliveryStatus=dispatched", nil), "ella")
		w := httptest.NewRecorder()

		handler.Export(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failure leaves no partial file", func(t *testing.T) {
		mockService.EXPECT().ExportWorkbook(mock.Anything, "ella", mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, _ domain.PurchaseFilter, w io.Writer) error {
				_, _ = w.Write([]byte("partial"))
				return errors.New("boom")
			}).Once()

		req := withSystem(httptest.NewRequest(http.MethodGet, "/api/export", nil), "ella")
		w := httptest.NewRecorder()

		handler.Export(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "partial")
	})
}

func TestEventsHandler_Stream(t *testing.T) {
	mockSubscriber := domainmocks.NewChangeSubscriberMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewEventsHandler(mockSubscriber, logger)

	events := make(chan domain.ChangeEvent, 1)
	events <- domain.ChangeEvent{System: "ella", Kind: domain.ChangePurchaseCreated, ID: "p1", At: time.Now()}
	close(events)

	mockSubscriber.EXPECT().Subscribe(mock.Anything, "ella").Return((<-chan domain.ChangeEvent)(events), nil).Once()

	req := withSystem(httptest.NewRequest(http.MethodGet, "/api/events", nil), "ella")
	w := httptest.NewRecorder()

	handler.Stream(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "event: purchase.created\n")
	assert.Contains(t, w.Body.String(), `"id":"p1"`)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type fakeStatus bool

func (s fakeStatus) Degraded() bool { return bool(s) }

type fakeSnapshots map[string]time.Time

func (f fakeSnapshots) RefreshedAt(_ context.Context, system string) (time.Time, bool, error) {
	if system == "broken" {
		return time.Time{}, false, errors.New("mirror closed")
	}
	at, ok := f[system]
	return at, ok, nil
}

func TestHealthHandler(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("Healthy", func(t *testing.T) {
		handler := NewHealthHandler(fakePinger{}, fakeStatus(false), fakeSnapshots{}, []string{"ella"}, logger)
		w := httptest.NewRecorder()
		handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		var resp HealthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Empty(t, resp.Snapshots)
	})

	t.Run("Serving from mirror", func(t *testing.T) {
		refreshed := time.Now().Add(-5 * time.Minute).UTC().Truncate(time.Second)
		snapshots := fakeSnapshots{"ella": refreshed}
		handler := NewHealthHandler(fakePinger{err: errors.New("down")}, fakeStatus(true), snapshots,
			[]string{"ella", "vmce", "broken"}, logger)
		w := httptest.NewRecorder()
		handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp HealthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "unavailable", resp.Database)
		assert.Equal(t, "serving", resp.Mirror)

		require.Len(t, resp.Snapshots, 3)
		require.NotNil(t, resp.Snapshots["ella"].RefreshedAt)
		assert.True(t, refreshed.Equal(*resp.Snapshots["ella"].RefreshedAt))
		assert.NotEqual(t, "never", resp.Snapshots["ella"].Age)
		assert.Equal(t, "never", resp.Snapshots["vmce"].Age)
		assert.Nil(t, resp.Snapshots["vmce"].RefreshedAt)
		assert.Equal(t, "unknown", resp.Snapshots["broken"].Age)

		w = httptest.NewRecorder()
		handler.Ready(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Memory store", func(t *testing.T) {
		handler := NewHealthHandler(nil, nil, nil, nil, logger)
		w := httptest.NewRecorder()
		handler.Ready(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	token, err := jwtManager.Generate(123, "ella")
	require.NoError(t, err)

	middleware := AuthMiddleware(jwtManager)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r.Context())
		assert.True(t, ok)
		assert.Equal(t, int64(123), claims.OperatorID)
		system, ok := GetSystem(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "ella", system)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Header token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Query token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test?access_token="+token, nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Token "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Foreign signature", func(t *testing.T) {
		foreign, err := jwt.NewManager("other-secret", time.Hour).Generate(123, "ella")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+foreign)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
