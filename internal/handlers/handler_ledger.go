package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/maintkit/ledgerpost/internal/core/ports/services"
	"github.com/maintkit/ledgerpost/internal/dto"
	"github.com/maintkit/ledgerpost/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for the ledger read surface.
type ledgerHandler struct {
	ledgerService portssvc.LedgerReaderSvc
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerReaderSvc) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers routes related to posted ledger transactions.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerReaderSvc) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("", h.listTransactions)
		ledger.GET("/summary", h.getBudgetSummary)
	}
}

func (h *ledgerHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")

	var params dto.ListLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	transactions, err := h.ledgerService.ListTransactions(c.Request.Context(), tenantID, params)
	if err != nil {
		logger.Error("Failed to list ledger transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list ledger transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLedgerResponse(transactions))
}

func (h *ledgerHandler) getBudgetSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenantID")

	budgetMonth := c.Query("budgetMonth")
	if _, err := time.Parse("2006-01", budgetMonth); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "budgetMonth must be in YYYY-MM format"})
		return
	}

	summary, err := h.ledgerService.GetBudgetSummary(c.Request.Context(), tenantID, budgetMonth)
	if err != nil {
		logger.Error("Failed to summarize ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize ledger"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
