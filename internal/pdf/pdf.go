// Package pdf renders SBAR handoff reports as PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"eclipselink-handoff-backend/internal/models"

	"github.com/go-pdf/fpdf"
)

const (
	brandTitle = "EclipseLink AI™"
	footerLine = "Rohimaya Health AI • HIPAA Compliant • AI-Powered Clinical Handoff Platform"
)

// GenerateSBARPDF renders one handoff as a single-report PDF: title block,
// patient information table, quality metrics when scored, the four SBAR
// sections and a footer.
func GenerateSBARPDF(h *models.Handoff) ([]byte, error) {
	pdf := newDoc()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	writeTitle(pdf, tr, "Clinical Handoff Report - SBAR Format")

	rows := [][2]string{
		{"Patient Name:", h.PatientName},
		{"Patient ID:", h.PatientID},
		{"Handoff Type:", titleCase(h.HandoffType)},
		{"Priority:", titleCase(h.Priority)},
		{"Date/Time:", h.CreatedAt},
	}
	if h.FromStaff != "" {
		rows = append(rows, [2]string{"From:", h.FromStaff})
	}
	if h.ToStaff != "" {
		rows = append(rows, [2]string{"To:", h.ToStaff})
	}
	if h.Specialty != "" {
		rows = append(rows, [2]string{"Specialty:", h.Specialty})
	}
	writeInfoTable(pdf, tr, "Patient Information", rows)

	if h.QualityScore != nil {
		writeScoresTable(pdf, *h.QualityScore, intOr(h.CompletenessScore), intOr(h.CriticalElementsScore))
	}

	writeSection(pdf, tr, "SITUATION", strOr(h.SBARSituation, "No situation information available."))
	writeSection(pdf, tr, "BACKGROUND", strOr(h.SBARBackground, "No background information available."))
	writeSection(pdf, tr, "ASSESSMENT", strOr(h.SBARAssessment, "No assessment information available."))
	writeSection(pdf, tr, "RECOMMENDATION", strOr(h.SBARRecommendation, "No recommendation information available."))

	writeFooter(pdf, tr)

	return output(pdf)
}

// GenerateBatchPDF renders a title page followed by one page per handoff,
// each carrying the patient identity and the situation section.
func GenerateBatchPDF(handoffs []models.Handoff) ([]byte, error) {
	pdf := newDoc()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	writeTitle(pdf, tr, fmt.Sprintf("Batch Handoff Report - %d Handoffs", len(handoffs)))
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, "Generated: "+time.Now().Format(models.TimeLayout), "", 1, "C", false, 0, "")

	for i, h := range handoffs {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 10, fmt.Sprintf("Handoff %d of %d", i+1, len(handoffs)), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, tr("Patient: "+h.PatientName), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 7, "ID: "+h.PatientID, "", 1, "L", false, 0, "")
		pdf.Ln(5)
		if h.SBARSituation != nil {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 8, "Situation:", "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 6, tr(*h.SBARSituation), "", "L", false)
		}
	}

	return output(pdf)
}

func newDoc() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "Letter", "")
	// Uncompressed output keeps the text streams inspectable.
	pdf.SetCompression(false)
	pdf.SetMargins(25, 25, 25)
	pdf.SetAutoPageBreak(true, 15)
	return pdf
}

func writeTitle(pdf *fpdf.Fpdf, tr func(string) string, subtitle string) {
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(30, 64, 175)
	pdf.CellFormat(0, 14, tr(brandTitle), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, subtitle, "", 1, "C", false, 0, "")
	pdf.Ln(6)
}

func writeInfoTable(pdf *fpdf.Fpdf, tr func(string) string, header string, rows [][2]string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(59, 130, 246)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(160, 10, header, "1", 1, "L", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(248, 250, 252)
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(50, 8, row[0], "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(110, 8, tr(row[1]), "1", 1, "L", true, 0, "")
	}
	pdf.Ln(6)
}

func writeScoresTable(pdf *fpdf.Fpdf, quality, completeness, critical int) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(16, 185, 129)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(160, 10, "Quality Metrics", "1", 1, "C", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(229, 231, 235)
	pdf.SetFont("Helvetica", "B", 10)
	for _, label := range []string{"Quality Score", "Completeness Score", "Critical Elements"} {
		pdf.CellFormat(53.3, 8, label, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFillColor(248, 250, 252)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(16, 185, 129)
	for _, score := range []int{quality, completeness, critical} {
		pdf.CellFormat(53.3, 10, fmt.Sprintf("%d%%", score), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)
}

func writeSection(pdf *fpdf.Fpdf, tr func(string) string, heading, body string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(59, 130, 246)
	pdf.CellFormat(0, 10, heading, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, 6, tr(body), "", "J", false)
	pdf.Ln(4)
}

func writeFooter(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 116, 139)
	generated := fmt.Sprintf("This report was generated by %s on %s",
		brandTitle, time.Now().Format("2006-01-02 at 15:04:05"))
	pdf.CellFormat(0, 5, tr(generated), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, tr(footerLine), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "For questions or support, contact: support@eclipselink.ai", "", 1, "C", false, 0, "")
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// titleCase turns an enum value like "shift_change" into "Shift Change".
func titleCase(v string) string {
	words := strings.Fields(strings.ReplaceAll(v, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func strOr(p *string, fallback string) string {
	if p != nil && *p != "" {
		return *p
	}
	return fallback
}

func intOr(p *int) int {
	if p != nil {
		return *p
	}
	return 0
}
