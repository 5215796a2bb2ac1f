package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ShubhanginiSharma627/e-sign-app/core"
	"github.com/ShubhanginiSharma627/e-sign-app/service"
)

// PdfHandlers contains HTTP handlers for the PDF endpoints
type PdfHandlers struct {
	esignService *service.EsignService
	log          *logrus.Logger
}

// NewPdfHandlers creates new PDF handlers
func NewPdfHandlers(esignService *service.EsignService, log *logrus.Logger) *PdfHandlers {
	return &PdfHandlers{
		esignService: esignService,
		log:          log,
	}
}

// Test handles the health probe
func (h *PdfHandlers) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "PDF service is up and running!"})
}

// Create renders the document and returns it as the response body
func (h *PdfHandlers) Create(c *gin.Context) {
	document, err := h.esignService.GeneratePDF(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to generate document")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Data(http.StatusOK, "application/pdf", document)
}

// Upload runs the acquire-token + submit workflow for the given
// recipient. Internal failure detail is logged, never returned.
func (h *PdfHandlers) Upload(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result, err := h.esignService.Upload(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, core.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "PDF file not found"})
			return
		}

		h.log.WithError(err).WithField("recipient", req.Email).Error("upload workflow failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading PDF to Zoho"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"initialResponse": result.InitialResponse,
		"submitResponse":  result.SubmitResponse,
	})
}
