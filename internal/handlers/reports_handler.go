package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"leadflow/internal/pdf"
	"leadflow/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
	PDFGen  *pdf.SummaryGenerator
}

func NewReportHandler(service *services.ReportService, pdfGen *pdf.SummaryGenerator) *ReportHandler {
	return &ReportHandler{Service: service, PDFGen: pdfGen}
}

// @Summary      Dashboard summary
// @Description  Lead/deal totals, Won revenue and per-stage breakdown for the caller.
// @Tags         Reports
// @Produce      json
// @Success      200  {object}  models.DashboardSummary
// @Failure      500  {object}  map[string]string
// @Security     BearerAuth
// @Router       /deals/stats/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	summary, err := h.Service.GetDashboard(currentUserID(c))
	if err != nil {
		respondError(c, err, "Not found", "Failed to fetch stats")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary      Pipeline summary as PDF
// @Tags         Reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Security     BearerAuth
// @Router       /reports/pipeline.pdf [get]
func (h *ReportHandler) ExportPipelinePDF(c *gin.Context) {
	summary, err := h.Service.GetDashboard(currentUserID(c))
	if err != nil {
		respondError(c, err, "Not found", "Failed to fetch stats")
		return
	}

	var buf bytes.Buffer
	if err := h.PDFGen.RenderPipeline(&buf, summary); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to render report", "error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="pipeline.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
