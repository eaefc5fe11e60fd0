package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"leadflow/internal/models"
)

// SummaryGenerator рендерит сводку воронки в PDF.
type SummaryGenerator struct{}

func NewSummaryGenerator() *SummaryGenerator {
	return &SummaryGenerator{}
}

func (g *SummaryGenerator) RenderPipeline(w io.Writer, summary *models.DashboardSummary) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Arial", "B", 16)
	doc.Cell(0, 10, "Pipeline Summary")
	doc.Ln(8)

	doc.SetFont("Arial", "", 9)
	doc.SetTextColor(120, 120, 120)
	doc.Cell(0, 6, "Generated "+time.Now().Format("2006-01-02 15:04"))
	doc.Ln(12)
	doc.SetTextColor(0, 0, 0)

	doc.SetFont("Arial", "", 12)
	doc.Cell(0, 8, fmt.Sprintf("Total leads: %d", summary.TotalLeads))
	doc.Ln(8)
	doc.Cell(0, 8, fmt.Sprintf("Total deals: %d", summary.TotalDeals))
	doc.Ln(8)
	doc.Cell(0, 8, fmt.Sprintf("Won revenue: %.2f", summary.TotalRevenue))
	doc.Ln(12)

	// таблица по этапам
	doc.SetFont("Arial", "B", 11)
	doc.CellFormat(60, 8, "Stage", "1", 0, "L", false, 0, "")
	doc.CellFormat(30, 8, "Deals", "1", 0, "R", false, 0, "")
	doc.CellFormat(50, 8, "Amount", "1", 0, "R", false, 0, "")
	doc.Ln(-1)

	doc.SetFont("Arial", "", 11)
	for _, st := range summary.DealsByStage {
		doc.CellFormat(60, 8, st.Stage, "1", 0, "L", false, 0, "")
		doc.CellFormat(30, 8, fmt.Sprintf("%d", st.Count), "1", 0, "R", false, 0, "")
		doc.CellFormat(50, 8, fmt.Sprintf("%.2f", st.Total), "1", 0, "R", false, 0, "")
		doc.Ln(-1)
	}
	if len(summary.DealsByStage) == 0 {
		doc.CellFormat(140, 8, "No deals yet", "1", 0, "C", false, 0, "")
		doc.Ln(-1)
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("pdf output: %w", err)
	}
	return nil
}
