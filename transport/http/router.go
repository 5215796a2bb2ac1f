package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ShubhanginiSharma627/e-sign-app/service"
)

// SetupRouter sets up the Gin router
func SetupRouter(esignService *service.EsignService, log *logrus.Logger, staticDir string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	// Create handlers
	handlers := NewPdfHandlers(esignService, log)

	// PDF routes
	pdf := router.Group("/pdf")
	{
		pdf.GET("/test", handlers.Test)
		pdf.POST("/create", handlers.Create)
		pdf.POST("/upload", handlers.Upload)
	}

	// Browser UI
	if staticDir != "" {
		router.StaticFile("/", staticDir+"/index.html")
		router.StaticFile("/app.js", staticDir+"/app.js")
		router.StaticFile("/styles.css", staticDir+"/styles.css")
	}

	return router
}
