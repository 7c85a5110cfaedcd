package handlers

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	portssvc "github.com/maintkit/ledgerpost/internal/core/ports/services"
	"github.com/maintkit/ledgerpost/internal/middleware"
	"github.com/maintkit/ledgerpost/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	registerCustomValidators()

	// Health and metrics are unauthenticated.
	r.GET("/health", getHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIV1Routes(r, cfg, services, rateLimiter)
	setupAdminRoutes(r, cfg, services)
}

// registerCustomValidators attaches the budgetmonth format check to gin's
// binding validator.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("budgetmonth", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("2006-01", fl.Field().String())
			return err == nil
		})
	}
}

// setupAPIV1Routes configures the tenant-scoped /api/v1 group used by the
// upstream service callers.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1",
		middleware.RateLimit(rateLimiter),
		middleware.AuthMiddleware(cfg.JWTSecret),
	)

	tenants := v1.Group("/tenants/:tenantID")
	registerMovementRoutes(tenants, services.Movement)
	registerCommitmentRoutes(tenants, services.Commitment)
	registerLedgerRoutes(tenants, services.LedgerReader)
}

// setupAdminRoutes configures the operator-facing master data and backfill
// routes.
func setupAdminRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	admin := r.Group("/admin", middleware.OpsTokenMiddleware(cfg.OpsTokenHash))
	registerMasterDataRoutes(admin, services.MasterData)
	RegisterBackfillRoutes(admin, services.Backfill)
}
