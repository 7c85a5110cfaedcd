package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/maintkit/ledgerpost/internal/apperrors"
	"github.com/maintkit/ledgerpost/internal/core/domain"
	portssvc "github.com/maintkit/ledgerpost/internal/core/ports/services"
	"github.com/maintkit/ledgerpost/internal/dto"
	"github.com/maintkit/ledgerpost/internal/middleware"
	"github.com/gin-gonic/gin"
)

// commitmentHandler handles HTTP requests for budget commitments.
type commitmentHandler struct {
	commitmentService portssvc.CommitmentSvcFacade
}

// newCommitmentHandler creates a new commitmentHandler.
func newCommitmentHandler(cs portssvc.CommitmentSvcFacade) *commitmentHandler {
	return &commitmentHandler{
		commitmentService: cs,
	}
}

// registerCommitmentRoutes registers routes related to budget commitments.
func registerCommitmentRoutes(rg *gin.RouterGroup, commitmentService portssvc.CommitmentSvcFacade) {
	h := newCommitmentHandler(commitmentService)

	commitments := rg.Group("/commitments")
	{
		commitments.POST("", h.createCommitment)
		commitments.GET("", h.listCommitments)
		commitments.GET("/:commitmentID", h.getCommitment)
		commitments.POST("/:commitmentID/submit", h.transitionHandler(portssvc.CommitmentSvcFacade.SubmitCommitment))
		commitments.POST("/:commitmentID/approve", h.transitionHandler(portssvc.CommitmentSvcFacade.ApproveCommitment))
		commitments.POST("/:commitmentID/reject", h.transitionHandler(portssvc.CommitmentSvcFacade.RejectCommitment))
		commitments.POST("/:commitmentID/cancel", h.transitionHandler(portssvc.CommitmentSvcFacade.CancelCommitment))
	}
}

func (h *commitmentHandler) createCommitment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")

	var req dto.CreateCommitmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCommitment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	callerID, ok := middleware.GetCallerIDFromContext(c)
	if !ok {
		logger.Error("Caller identity not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	commitment, err := h.commitmentService.CreateCommitment(c.Request.Context(), tenantID, req, callerID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Tenant or cost center not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create commitment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create commitment"})
		}
		return
	}

	logger.Info("Commitment created", slog.String("commitment_id", commitment.CommitmentID), slog.String("tenant_id", tenantID))
	c.JSON(http.StatusCreated, dto.ToCommitmentResponse(commitment))
}

// transitionHandler builds a gin handler for one commitment status
// transition method.
func (h *commitmentHandler) transitionHandler(transition func(portssvc.CommitmentSvcFacade, context.Context, string, string, string) (*domain.Commitment, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		tenantID := c.Param("tenantID")
		commitmentID := c.Param("commitmentID")

		callerID, ok := middleware.GetCallerIDFromContext(c)
		if !ok {
			logger.Error("Caller identity not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		commitment, err := transition(h.commitmentService, c.Request.Context(), tenantID, commitmentID, callerID)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Commitment not found"})
			case errors.Is(err, apperrors.ErrInvalidTransition):
				logger.Warn("Invalid commitment transition", slog.String("commitment_id", commitmentID), slog.String("error", err.Error()))
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				logger.Error("Failed to transition commitment", slog.String("error", err.Error()))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update commitment"})
			}
			return
		}

		logger.Info("Commitment transitioned", slog.String("commitment_id", commitmentID), slog.String("status", string(commitment.Status)))
		c.JSON(http.StatusOK, dto.ToCommitmentResponse(commitment))
	}
}

func (h *commitmentHandler) getCommitment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")
	commitmentID := c.Param("commitmentID")

	commitment, err := h.commitmentService.GetCommitmentByID(c.Request.Context(), tenantID, commitmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commitment not found"})
		} else {
			logger.Error("Failed to get commitment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve commitment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCommitmentResponse(commitment))
}

func (h *commitmentHandler) listCommitments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")

	var status *domain.CommitmentStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.CommitmentStatus(raw)
		switch s {
		case domain.CommitmentDraft, domain.CommitmentSubmitted, domain.CommitmentApproved, domain.CommitmentRejected, domain.CommitmentCancelled:
			status = &s
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown commitment status: " + raw})
			return
		}
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	commitments, err := h.commitmentService.ListCommitments(c.Request.Context(), tenantID, status, limit)
	if err != nil {
		logger.Error("Failed to list commitments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list commitments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCommitmentsResponse(commitments))
}
