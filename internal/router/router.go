package router

import (
	"startive/internal/advisor"
	"startive/internal/config"
	"startive/internal/handler"
	"startive/internal/ledger"
	"startive/internal/middleware"
	"startive/internal/roundup"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and wires all handlers.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// shared services
	ledgerSvc := ledger.NewService(ledger.NewGormRepository(db))
	sampler := roundup.NewSampler(nil)
	adv := advisor.New(ledgerSvc)

	// ====== API ======
	api := r.Group("/api")

	// register/login, no auth required
	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpireHours)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// everything else requires a logged-in user
	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret, db),
		middleware.AuditMiddleware(db),
	)

	protected.GET("/me", handler.GetMe)

	txHandler := handler.NewTransactionHandler(db, sampler, ledgerSvc, cfg.App.PageSize)
	protected.POST("/transactions", txHandler.Create)
	protected.GET("/transactions", txHandler.List)
	protected.GET("/transactions/analysis", txHandler.Analysis)

	savingsHandler := handler.NewSavingsHandler(ledgerSvc)
	protected.GET("/savings", savingsHandler.Overview)

	goalHandler := handler.NewGoalHandler(db, ledgerSvc)
	protected.POST("/goals", goalHandler.Create)
	protected.GET("/goals", goalHandler.List)
	protected.POST("/goals/:id/fund", goalHandler.Fund)

	advisorHandler := handler.NewAdvisorHandler(adv)
	protected.POST("/advisor", advisorHandler.Ask)

	protected.POST("/profile/risk", handler.UpdateRiskPreference(db))
	protected.POST("/profile/subscription", handler.UpdateSubscription(db))
	protected.POST("/profile/password", handler.ChangePassword(db))

	logHandler := handler.NewLogHandler(db, cfg.App.PageSize)
	protected.GET("/logs", logHandler.ListLogs)

	exportHandler := handler.NewExportHandler(ledgerSvc)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
