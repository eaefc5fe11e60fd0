package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadflow/internal/handlers"
	"leadflow/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	jwtSecret []byte,
	authHandler *handlers.AuthHandler,
	leadHandler *handlers.LeadHandler,
	dealHandler *handlers.DealHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {

	// ---- public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)
	}

	// ---- protected
	r.Use(middleware.AuthMiddleware(jwtSecret))

	// LEADS
	leads := r.Group("/leads")
	{
		leads.POST("", leadHandler.Create)
		leads.GET("", leadHandler.List)
		leads.PUT("/:id", leadHandler.Update)
		leads.DELETE("/:id", leadHandler.Delete)
	}

	// DEALS
	deals := r.Group("/deals")
	{
		deals.POST("", dealHandler.Create)
		deals.GET("", dealHandler.List)
		deals.POST("/convert/:leadId", dealHandler.Convert)
		deals.GET("/stats/dashboard", reportHandler.Dashboard)
		deals.PUT("/:id", dealHandler.Update)
		deals.DELETE("/:id", dealHandler.Delete)
	}

	// REPORTS
	reports := r.Group("/reports")
	{
		reports.GET("/pipeline.pdf", reportHandler.ExportPipelinePDF)
	}

	return r
}
