package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	posapp "github.com/retailpos/backend/internal/application/pos"
	"github.com/retailpos/backend/internal/infrastructure/cache"
	"github.com/retailpos/backend/internal/interfaces/http/dto"
	"github.com/retailpos/backend/internal/interfaces/http/middleware"
)

// IdempotencyKeyHeader lets clients retry a sale submission safely
const IdempotencyKeyHeader = "Idempotency-Key"

// PosHandler handles point-of-sale API endpoints
type PosHandler struct {
	BaseHandler
	quickSaleService    *posapp.QuickSaleService
	availabilityService *posapp.AvailabilityService
	shiftService        *posapp.ShiftService
	dashboardService    *posapp.DashboardService
	idempotencyStore    cache.SaleIdempotencyStore
	idempotencyTTL      time.Duration
}

// NewPosHandler creates a new PosHandler. The idempotency store is
// optional; without it Idempotency-Key headers are ignored.
func NewPosHandler(
	quickSaleService *posapp.QuickSaleService,
	availabilityService *posapp.AvailabilityService,
	shiftService *posapp.ShiftService,
	dashboardService *posapp.DashboardService,
	idempotencyStore cache.SaleIdempotencyStore,
	idempotencyTTL time.Duration,
) *PosHandler {
	return &PosHandler{
		quickSaleService:    quickSaleService,
		availabilityService: availabilityService,
		shiftService:        shiftService,
		dashboardService:    dashboardService,
		idempotencyStore:    idempotencyStore,
		idempotencyTTL:      idempotencyTTL,
	}
}

// RegisterRoutes registers POS routes
func (h *PosHandler) RegisterRoutes(rg *gin.RouterGroup) {
	pos := rg.Group("/pos")
	{
		pos.POST("/sales", h.RecordSale)
		pos.GET("/sales/recent", h.RecentSales)
		pos.GET("/sales/code/:code", h.GetSaleByCode)
		pos.GET("/sales/:id", h.GetSale)
		pos.POST("/availability", h.CheckAvailability)
		pos.GET("/dashboard", h.Dashboard)
		pos.POST("/shifts/open", h.OpenShift)
		pos.POST("/shifts/close", h.CloseShift)
		pos.GET("/shifts/current", h.CurrentShift)
		pos.GET("/shifts/current/transactions", h.ShiftTransactions)
	}
}

// RecordSale records a completed counter sale
func (h *PosHandler) RecordSale(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	var req posapp.QuickSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	idempotencyKey := c.GetHeader(IdempotencyKeyHeader)
	if h.idempotencyStore != nil && idempotencyKey != "" {
		storeKey := tenantID.String() + ":" + idempotencyKey
		if body, found, err := h.idempotencyStore.Get(c.Request.Context(), storeKey); err == nil && found {
			c.Header("Idempotent-Replayed", "true")
			c.Data(http.StatusCreated, "application/json; charset=utf-8", []byte(body))
			return
		}
	}

	sale, err := h.quickSaleService.RecordSale(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	response := dto.NewSuccessResponse(sale)
	if h.idempotencyStore != nil && idempotencyKey != "" {
		if body, err := json.Marshal(response); err == nil {
			storeKey := tenantID.String() + ":" + idempotencyKey
			// Best effort; a failed store only costs replay protection
			_ = h.idempotencyStore.Set(c.Request.Context(), storeKey, string(body), h.idempotencyTTL)
		}
	}

	c.JSON(http.StatusCreated, response)
}

// GetSale returns one recorded sale by ID
func (h *PosHandler) GetSale(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}

	invoiceID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.quickSaleService.GetSale(c.Request.Context(), tenantID, invoiceID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sale)
}

// GetSaleByCode returns one recorded sale by its invoice code, for receipt
// lookups at the counter
func (h *PosHandler) GetSaleByCode(c *gin.Context) {
	tenantID, _, ok := h.identity(c)
	if !ok {
		return
	}

	sale, err := h.quickSaleService.GetSaleByCode(c.Request.Context(), tenantID, c.Param("code"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sale)
}

// RecentSales lists the latest sales of the acting user's open shift
func (h *PosHandler) RecentSales(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	sales, err := h.dashboardService.RecentSales(c.Request.Context(), tenantID, userID, limit)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sales)
}

// CheckAvailability reports whether a basket could be fulfilled right now
func (h *PosHandler) CheckAvailability(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	var req posapp.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.availabilityService.Check(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Dashboard summarizes the acting user's open shift
func (h *PosHandler) Dashboard(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), tenantID, userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// OpenShift opens a new shift for the acting user
func (h *PosHandler) OpenShift(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	var req posapp.OpenShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	shift, err := h.shiftService.Open(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, shift)
}

// CloseShift closes the acting user's open shift
func (h *PosHandler) CloseShift(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	shift, err := h.shiftService.Close(c.Request.Context(), tenantID, userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shift)
}

// CurrentShift returns the acting user's open shift
func (h *PosHandler) CurrentShift(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	shift, err := h.shiftService.Current(c.Request.Context(), tenantID, userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, shift)
}

// ShiftTransactions lists the receipts and payments of the acting user's
// open shift
func (h *PosHandler) ShiftTransactions(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	txs, err := h.dashboardService.ShiftTransactions(c.Request.Context(), tenantID, userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, txs)
}
