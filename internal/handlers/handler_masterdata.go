package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/maintkit/ledgerpost/internal/apperrors"
	portssvc "github.com/maintkit/ledgerpost/internal/core/ports/services"
	"github.com/maintkit/ledgerpost/internal/dto"
	"github.com/maintkit/ledgerpost/internal/middleware"
	"github.com/gin-gonic/gin"
)

// opsCallerID is the audit identity recorded for operator-initiated master
// data changes. Admin routes authenticate with a shared ops token, not a
// per-user credential.
const opsCallerID = "ops"

// masterDataHandler handles operator-facing master data requests.
type masterDataHandler struct {
	masterDataService portssvc.MasterDataSvcFacade
}

// newMasterDataHandler creates a new masterDataHandler.
func newMasterDataHandler(ms portssvc.MasterDataSvcFacade) *masterDataHandler {
	return &masterDataHandler{
		masterDataService: ms,
	}
}

// registerMasterDataRoutes registers the /admin master data routes.
func registerMasterDataRoutes(rg *gin.RouterGroup, masterDataService portssvc.MasterDataSvcFacade) {
	h := newMasterDataHandler(masterDataService)

	tenants := rg.Group("/tenants")
	{
		tenants.POST("", h.createTenant)
		tenants.GET("", h.listTenants)
		tenants.GET("/:tenantID", h.getTenant)
		tenants.POST("/:tenantID/cost-centers", h.createCostCenter)
		tenants.GET("/:tenantID/cost-centers", h.listCostCenters)
		tenants.POST("/:tenantID/work-orders", h.createWorkOrder)
		tenants.POST("/:tenantID/assets", h.createAsset)
	}
}

func (h *masterDataHandler) createTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tenant, err := h.masterDataService.CreateTenant(c.Request.Context(), req, opsCallerID)
	if err != nil {
		logger.Error("Failed to create tenant", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tenant"})
		return
	}

	logger.Info("Tenant created", slog.String("tenant_id", tenant.TenantID))
	c.JSON(http.StatusCreated, dto.ToTenantResponse(tenant))
}

func (h *masterDataHandler) getTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")

	tenant, err := h.masterDataService.GetTenantByID(c.Request.Context(), tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
		} else {
			logger.Error("Failed to get tenant", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tenant"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

func (h *masterDataHandler) listTenants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenants, err := h.masterDataService.ListTenants(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list tenants", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tenants"})
		return
	}

	responses := make([]dto.TenantResponse, len(tenants))
	for i, t := range tenants {
		responses[i] = dto.ToTenantResponse(&t)
	}
	c.JSON(http.StatusOK, responses)
}

func (h *masterDataHandler) createCostCenter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")

	var req dto.CreateCostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	costCenter, err := h.masterDataService.CreateCostCenter(c.Request.Context(), tenantID, req, opsCallerID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Cost center code already exists for this tenant"})
		default:
			logger.Error("Failed to create cost center", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cost center"})
		}
		return
	}

	logger.Info("Cost center created", slog.String("cost_center_id", costCenter.CostCenterID), slog.String("tenant_id", tenantID))
	c.JSON(http.StatusCreated, dto.ToCostCenterResponse(costCenter))
}

func (h *masterDataHandler) listCostCenters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")

	costCenters, err := h.masterDataService.ListCostCenters(c.Request.Context(), tenantID)
	if err != nil {
		logger.Error("Failed to list cost centers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cost centers"})
		return
	}

	responses := make([]dto.CostCenterResponse, len(costCenters))
	for i, cc := range costCenters {
		responses[i] = dto.ToCostCenterResponse(&cc)
	}
	c.JSON(http.StatusOK, responses)
}

func (h *masterDataHandler) createWorkOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")

	var req dto.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	workOrder, err := h.masterDataService.CreateWorkOrder(c.Request.Context(), tenantID, req, opsCallerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Referenced resource not found"})
		} else {
			logger.Error("Failed to create work order", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create work order"})
		}
		return
	}

	logger.Info("Work order created", slog.String("work_order_id", workOrder.WorkOrderID), slog.String("tenant_id", tenantID))
	c.JSON(http.StatusCreated, dto.ToWorkOrderResponse(workOrder))
}

func (h *masterDataHandler) createAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")

	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	asset, err := h.masterDataService.CreateAsset(c.Request.Context(), tenantID, req, opsCallerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Referenced resource not found"})
		} else {
			logger.Error("Failed to create asset", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create asset"})
		}
		return
	}

	logger.Info("Asset created", slog.String("asset_id", asset.AssetID), slog.String("tenant_id", tenantID))
	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}
