package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/maintkit/ledgerpost/internal/apperrors"
	portssvc "github.com/maintkit/ledgerpost/internal/core/ports/services"
	"github.com/maintkit/ledgerpost/internal/dto"
	"github.com/maintkit/ledgerpost/internal/middleware"
	"github.com/gin-gonic/gin"
)

// movementHandler handles HTTP requests for stock movements.
type movementHandler struct {
	movementService portssvc.MovementSvcFacade
}

// newMovementHandler creates a new movementHandler.
func newMovementHandler(ms portssvc.MovementSvcFacade) *movementHandler {
	return &movementHandler{
		movementService: ms,
	}
}

// registerMovementRoutes registers routes related to stock movements.
func registerMovementRoutes(rg *gin.RouterGroup, movementService portssvc.MovementSvcFacade) {
	h := newMovementHandler(movementService)

	movements := rg.Group("/movements")
	{
		movements.POST("", h.createMovement)
		movements.GET("", h.listMovements)
		movements.GET("/:movementID", h.getMovement)
	}
}

func (h *movementHandler) createMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")

	var req dto.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	callerID, ok := middleware.GetCallerIDFromContext(c)
	if !ok {
		logger.Error("Caller identity not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	movement, err := h.movementService.CreateMovement(c.Request.Context(), tenantID, req, callerID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Tenant not found for movement", slog.String("tenant_id", tenantID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenant not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating movement", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create movement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create movement"})
		}
		return
	}

	logger.Info("Movement created", slog.String("movement_id", movement.MovementID), slog.String("tenant_id", tenantID))
	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

func (h *movementHandler) getMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")
	movementID := c.Param("movementID")

	movement, err := h.movementService.GetMovementByID(c.Request.Context(), tenantID, movementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movement not found"})
		} else {
			logger.Error("Failed to get movement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve movement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

func (h *movementHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	movements, err := h.movementService.ListMovements(c.Request.Context(), tenantID, limit)
	if err != nil {
		logger.Error("Failed to list movements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list movements"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMovementsResponse(movements))
}
