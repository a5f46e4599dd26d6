package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	posapp "github.com/retailpos/backend/internal/application/pos"
	"github.com/retailpos/backend/internal/domain/catalog"
	"github.com/retailpos/backend/internal/domain/finance"
	"github.com/retailpos/backend/internal/domain/inventory"
	"github.com/retailpos/backend/internal/domain/partner"
	"github.com/retailpos/backend/internal/domain/pos"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/retailpos/backend/internal/domain/shared/valueobject"
	"github.com/retailpos/backend/internal/infrastructure/auth"
	"github.com/retailpos/backend/internal/interfaces/http/middleware"
)

// MockShiftRepository implements pos.ShiftRepository for testing
type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*pos.Shift, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pos.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindOpenByUser(ctx context.Context, tenantID, userID uuid.UUID) (*pos.Shift, error) {
	args := m.Called(ctx, tenantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pos.Shift), args.Error(1)
}

func (m *MockShiftRepository) Save(ctx context.Context, shift *pos.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

// MockInvoiceRepository implements pos.InvoiceRepository for testing
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*pos.Invoice, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pos.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*pos.Invoice, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pos.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindRecentByShift(ctx context.Context, tenantID, shiftID uuid.UUID, limit int) ([]pos.Invoice, error) {
	args := m.Called(ctx, tenantID, shiftID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pos.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) NextCode(ctx context.Context, tenantID uuid.UUID, issuedAt time.Time) (string, error) {
	args := m.Called(ctx, tenantID, issuedAt)
	return args.String(0), args.Error(1)
}

// MockProductRepository implements catalog.ProductRepository for testing
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*catalog.Product, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByBarcode(ctx context.Context, tenantID uuid.UUID, barcode string) (*catalog.Product, error) {
	args := m.Called(ctx, tenantID, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) SearchForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[catalog.Product], error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(shared.Paginated[catalog.Product]), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// MockCustomerRepository implements partner.CustomerRepository for testing
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SearchForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[partner.Customer], error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(shared.Paginated[partner.Customer]), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// MockStockRepository implements inventory.StockRepository for testing
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) FindByProductAndWarehouse(ctx context.Context, tenantID, productID, warehouseID uuid.UUID) (*inventory.StockItem, error) {
	args := m.Called(ctx, tenantID, productID, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockItem), args.Error(1)
}

func (m *MockStockRepository) Save(ctx context.Context, item *inventory.StockItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// MockTransactionRepository implements finance.TransactionRepository for testing
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindByShift(ctx context.Context, tenantID, shiftID uuid.UUID) ([]finance.Transaction, error) {
	args := m.Called(ctx, tenantID, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) NextCode(ctx context.Context, tenantID uuid.UUID, issuedAt time.Time) (string, error) {
	args := m.Called(ctx, tenantID, issuedAt)
	return args.String(0), args.Error(1)
}

// MockSaleRecorder implements pos.SaleRecorder for testing
type MockSaleRecorder struct {
	mock.Mock
}

func (m *MockSaleRecorder) RecordSale(ctx context.Context, invoice *pos.Invoice, receipt *finance.Transaction) error {
	args := m.Called(ctx, invoice, receipt)
	return args.Error(0)
}

// memoryIdempotencyStore is an in-memory cache.SaleIdempotencyStore
type memoryIdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]string
}

func newMemoryIdempotencyStore() *memoryIdempotencyStore {
	return &memoryIdempotencyStore{entries: make(map[string]string)}
}

func (s *memoryIdempotencyStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, ok := s.entries[key]
	return body, ok, nil
}

func (s *memoryIdempotencyStore) Set(_ context.Context, key, body string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = body
	return nil
}

type posHandlerFixture struct {
	tenantID uuid.UUID
	userID   uuid.UUID

	shiftRepo    *MockShiftRepository
	invoiceRepo  *MockInvoiceRepository
	productRepo  *MockProductRepository
	customerRepo *MockCustomerRepository
	stockRepo    *MockStockRepository
	txRepo       *MockTransactionRepository
	recorder     *MockSaleRecorder
	store        *memoryIdempotencyStore

	saleProductID uuid.UUID

	router *gin.Engine
}

func newPosHandlerFixture(t *testing.T) *posHandlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &posHandlerFixture{
		tenantID:     uuid.New(),
		userID:       uuid.New(),
		shiftRepo:    new(MockShiftRepository),
		invoiceRepo:  new(MockInvoiceRepository),
		productRepo:  new(MockProductRepository),
		customerRepo: new(MockCustomerRepository),
		stockRepo:    new(MockStockRepository),
		txRepo:       new(MockTransactionRepository),
		recorder:     new(MockSaleRecorder),
		store:        newMemoryIdempotencyStore(),
	}

	quickSaleService := posapp.NewQuickSaleService(
		f.shiftRepo, f.invoiceRepo, f.productRepo, f.customerRepo,
		f.stockRepo, f.txRepo, f.recorder,
	)
	availabilityService := posapp.NewAvailabilityService(f.shiftRepo, f.stockRepo)
	shiftService := posapp.NewShiftService(f.shiftRepo)
	dashboardService := posapp.NewDashboardService(f.shiftRepo, f.invoiceRepo, f.txRepo, nil)

	posHandler := NewPosHandler(
		quickSaleService, availabilityService, shiftService, dashboardService,
		f.store, time.Hour,
	)

	f.router = gin.New()
	f.router.Use(func(c *gin.Context) {
		c.Set(middleware.IdentityKey, &auth.Identity{
			TenantID: f.tenantID,
			UserID:   f.userID,
			Username: "cashier",
		})
		c.Next()
	})
	api := f.router.Group("/api/v1")
	posHandler.RegisterRoutes(api)
	return f
}

func (f *posHandlerFixture) expectSaleAccepted(t *testing.T) {
	t.Helper()
	warehouseID := uuid.New()
	shift, err := pos.NewShift(f.tenantID, f.userID, warehouseID, decimal.NewFromInt(100))
	require.NoError(t, err)

	product, err := catalog.NewProduct(f.tenantID, "Espresso Beans 1kg", "BEAN-001",
		valueobject.NewMoneyUSD(decimal.NewFromInt(25)), decimal.NewFromInt(10))
	require.NoError(t, err)

	stock, err := inventory.NewStockItem(f.tenantID, product.ID, warehouseID, nil, decimal.NewFromInt(50))
	require.NoError(t, err)

	f.shiftRepo.On("FindOpenByUser", mock.Anything, f.tenantID, f.userID).Return(shift, nil)
	f.invoiceRepo.On("NextCode", mock.Anything, f.tenantID, mock.Anything).Return("INV-2026090001", nil)
	f.productRepo.On("FindByIDForTenant", mock.Anything, f.tenantID, product.ID).Return(product, nil)
	f.stockRepo.On("FindByProductAndWarehouse", mock.Anything, f.tenantID, product.ID, warehouseID).Return(stock, nil)
	f.txRepo.On("NextCode", mock.Anything, f.tenantID, mock.Anything).Return("RCPT-2026090001", nil)
	f.recorder.On("RecordSale", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	f.saleProductID = product.ID
}

func (f *posHandlerFixture) postSale(t *testing.T, body map[string]any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pos/sales", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestPosHandler_RecordSale(t *testing.T) {
	t.Run("records a paid sale", func(t *testing.T) {
		f := newPosHandlerFixture(t)
		f.expectSaleAccepted(t)

		w := f.postSale(t, map[string]any{
			"items":          []map[string]any{{"product_id": f.saleProductID, "quantity": "2"}},
			"paid_amount":    "55",
			"payment_method": "cash",
		}, nil)

		require.Equal(t, http.StatusCreated, w.Code)

		var response struct {
			Success bool                     `json:"success"`
			Data    posapp.QuickSaleResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Equal(t, "INV-2026090001", response.Data.Code)
		assert.Equal(t, "paid", response.Data.Status)
		assert.Equal(t, "RCPT-2026090001", response.Data.ReceiptCode)
	})

	t.Run("replays an idempotent retry without recording twice", func(t *testing.T) {
		f := newPosHandlerFixture(t)
		f.expectSaleAccepted(t)

		body := map[string]any{
			"items":          []map[string]any{{"product_id": f.saleProductID, "quantity": "1"}},
			"paid_amount":    "27.5",
			"payment_method": "card",
		}
		headers := map[string]string{IdempotencyKeyHeader: "retry-abc-123"}

		first := f.postSale(t, body, headers)
		require.Equal(t, http.StatusCreated, first.Code)

		second := f.postSale(t, body, headers)
		require.Equal(t, http.StatusCreated, second.Code)
		assert.Equal(t, "true", second.Header().Get("Idempotent-Replayed"))
		assert.JSONEq(t, first.Body.String(), second.Body.String())

		f.recorder.AssertNumberOfCalls(t, "RecordSale", 1)
	})

	t.Run("rejects a sale without an open shift", func(t *testing.T) {
		f := newPosHandlerFixture(t)
		f.shiftRepo.On("FindOpenByUser", mock.Anything, f.tenantID, f.userID).Return(nil, shared.ErrNotFound)

		w := f.postSale(t, map[string]any{
			"items": []map[string]any{{"product_id": uuid.New(), "quantity": "1"}},
		}, nil)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var response struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "ERR_NO_ACTIVE_SHIFT", response.Error.Code)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		f := newPosHandlerFixture(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/pos/sales", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPosHandler_GetSale(t *testing.T) {
	t.Run("returns 404 for an unknown sale", func(t *testing.T) {
		f := newPosHandlerFixture(t)
		invoiceID := uuid.New()
		f.invoiceRepo.On("FindByIDForTenant", mock.Anything, f.tenantID, invoiceID).Return(nil, shared.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/pos/sales/"+invoiceID.String(), nil)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("finds a sale by its code", func(t *testing.T) {
		f := newPosHandlerFixture(t)
		invoice, err := pos.NewInvoice(f.tenantID, "INV-2026090042", f.userID, uuid.New(), uuid.New())
		require.NoError(t, err)
		f.invoiceRepo.On("FindByCode", mock.Anything, f.tenantID, "INV-2026090042").Return(invoice, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/pos/sales/code/INV-2026090042", nil)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Data posapp.QuickSaleResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "INV-2026090042", response.Data.Code)
	})

	t.Run("returns 404 for an unknown code", func(t *testing.T) {
		f := newPosHandlerFixture(t)
		f.invoiceRepo.On("FindByCode", mock.Anything, f.tenantID, "INV-0000000000").Return(nil, shared.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/pos/sales/code/INV-0000000000", nil)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects a malformed sale ID", func(t *testing.T) {
		f := newPosHandlerFixture(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/pos/sales/not-a-uuid", nil)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPosHandler_Shifts(t *testing.T) {
	t.Run("opens a shift", func(t *testing.T) {
		f := newPosHandlerFixture(t)
		f.shiftRepo.On("FindOpenByUser", mock.Anything, f.tenantID, f.userID).Return(nil, shared.ErrNotFound)
		f.shiftRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		payload, err := json.Marshal(map[string]any{
			"warehouse_id":  uuid.New(),
			"opening_float": "150",
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/pos/shifts/open", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var response struct {
			Data posapp.ShiftResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "OPEN", response.Data.Status)
	})

	t.Run("lists the open shift's transactions", func(t *testing.T) {
		f := newPosHandlerFixture(t)
		shift, err := pos.NewShift(f.tenantID, f.userID, uuid.New(), decimal.NewFromInt(100))
		require.NoError(t, err)
		receipt, err := finance.NewReceipt(f.tenantID, "RCPT-2026090009", uuid.New(), nil,
			shift.ID, f.userID, valueobject.NewMoneyUSDFromFloat(18.75), "card")
		require.NoError(t, err)

		f.shiftRepo.On("FindOpenByUser", mock.Anything, f.tenantID, f.userID).Return(shift, nil)
		f.txRepo.On("FindByShift", mock.Anything, f.tenantID, shift.ID).
			Return([]finance.Transaction{*receipt}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/pos/shifts/current/transactions", nil)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Data []posapp.TransactionResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Data, 1)
		assert.Equal(t, "RCPT-2026090009", response.Data[0].Code)
		assert.Equal(t, "card", response.Data[0].Method)
	})

	t.Run("closing without an open shift fails", func(t *testing.T) {
		f := newPosHandlerFixture(t)
		f.shiftRepo.On("FindOpenByUser", mock.Anything, f.tenantID, f.userID).Return(nil, shared.ErrNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/pos/shifts/close", nil)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
