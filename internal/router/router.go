package router

import (
	"net/http"

	"github.com/Jancsi-Artienda/parking-fee-system/internal/config"
	"github.com/Jancsi-Artienda/parking-fee-system/internal/handler"
	"github.com/Jancsi-Artienda/parking-fee-system/internal/middleware"
	"github.com/Jancsi-Artienda/parking-fee-system/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires the API route table.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status": "error",
				"db":     "disconnected",
				"detail": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "connected"})
	})

	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.Issuer,
		cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/forgot-password", authHandler.ForgotPassword)

	protected := r.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret, db),
		middleware.AuditMiddleware(db),
	)

	protected.PATCH("/auth/profile", authHandler.UpdateProfile)
	protected.GET("/auth/me", authHandler.Me)

	auditHandler := handler.NewAuditHandler(db)
	protected.GET("/auth/activity", auditHandler.List)

	vehicleHandler := handler.NewVehicleHandler(db)
	protected.GET("/vehicles", vehicleHandler.List)
	protected.POST("/vehicles", vehicleHandler.Add)
	protected.DELETE("/vehicles/:id", vehicleHandler.Delete)

	reportHandler := handler.NewReportHandler(db, cfg.Limits.ReportCap)
	protected.GET("/reports", reportHandler.List)
	protected.POST("/reports", reportHandler.Add)
	protected.DELETE("/reports/:transDate", reportHandler.Delete)
	protected.GET("/reports/coverage", reportHandler.GetCoverage)
	protected.PUT("/reports/coverage", reportHandler.SaveCoverage)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/reports/export/csv", exportHandler.CSV)
	protected.GET("/reports/export/xlsx", exportHandler.XLSX)
	protected.GET("/reports/export/pdf", exportHandler.PDF)

	r.NoRoute(func(c *gin.Context) {
		util.Error(c, http.StatusNotFound,
			"Route not found: "+c.Request.Method+" "+c.Request.URL.Path)
	})

	return r
}
