package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/maintkit/ledgerpost/internal/core/ports/services"
	"github.com/maintkit/ledgerpost/internal/dto"
	"github.com/maintkit/ledgerpost/internal/middleware"
	"github.com/gin-gonic/gin"
)

// backfillHandler exposes the backfill runner to operators. The same runner
// backs the cmd/backfill CLI; this route exists so a reconciliation can be
// triggered without shell access to the host.
type backfillHandler struct {
	backfillService portssvc.BackfillSvcFacade
}

// newBackfillHandler creates a new backfillHandler.
func newBackfillHandler(bs portssvc.BackfillSvcFacade) *backfillHandler {
	return &backfillHandler{
		backfillService: bs,
	}
}

// RegisterBackfillRoutes registers the /admin backfill trigger route.
func RegisterBackfillRoutes(rg *gin.RouterGroup, backfillService portssvc.BackfillSvcFacade) {
	h := newBackfillHandler(backfillService)
	rg.POST("/backfill", h.runBackfill)
}

func (h *backfillHandler) runBackfill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RunBackfillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	params := dto.BackfillParams{
		TenantID: req.TenantID,
		Since:    req.Since,
		DryRun:   req.DryRun,
		Limit:    req.Limit,
		Kind:     req.Kind,
	}

	report, err := h.backfillService.Run(c.Request.Context(), params)
	if err != nil {
		logger.Error("Backfill run failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Backfill run failed"})
		return
	}

	logger.Info("Backfill run complete",
		slog.Bool("dry_run", req.DryRun),
		slog.Int("created", report.Created),
		slog.Int("already_present", report.AlreadyPresent))
	c.JSON(http.StatusOK, report)
}
