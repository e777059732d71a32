package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/jewel_ledger_app/cmd/docs"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/middleware"
	"github.com/SscSPs/jewel_ledger_app/internal/platform/analytics"
	"github.com/SscSPs/jewel_ledger_app/internal/platform/config"
	"github.com/SscSPs/jewel_ledger_app/internal/platform/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analyticsClient *analytics.Client,
) error {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("invalid login rate limit %q: %w", cfg.LoginRateLimit, err)
	}
	apiLimiter, err := middleware.NewMemoryLimiter(cfg.APIRateLimit)
	if err != nil {
		return fmt.Errorf("invalid api rate limit %q: %w", cfg.APIRateLimit, err)
	}

	v1 := r.Group("/api/v1",
		middleware.RateLimit(apiLimiter),
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.PosthogMiddleware(analyticsClient),
	)

	registerAuthRoutes(r, v1, cfg, services, loginLimiter)
	setupAPIV1Routes(v1, services, analyticsClient)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes delegates to the per-resource route registrations.
func setupAPIV1Routes(v1 *gin.RouterGroup, service *portssvc.ServiceContainer, analyticsClient *analytics.Client) {
	registerUserRoutes(v1, service.User)
	registerCustomerRoutes(v1, service.Customer)
	registerLoanRoutes(v1, service.Loan)
	registerTradeRoutes(v1, service.Trade)
	registerUdhariRoutes(v1, service.Udhari)
	registerExpenseRoutes(v1, service.Expense)
	registerCashBookRoutes(v1, service.CashBook)
	registerMetalRateRoutes(v1, service.MetalRate)
	registerShopRoutes(v1, service.Shop)
	registerReportingRoutes(v1, service.Reporting, service.Export, analyticsClient)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
