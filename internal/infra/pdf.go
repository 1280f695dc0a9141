package infra

// pdf.go — Timesheet report generation using go-pdf/fpdf.
// Produces an A4 report with the employee header, one row per timesheet entry
// (date, activity, hours), and a bold total.
// The output file is saved to storagePath/timesheet_{employeeID}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mflath/TImesheets/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateTimesheetReport writes a PDF summary of an employee's entries.
// storagePath is the directory where the PDF will be written (created if needed).
// Returns the absolute path to the generated file.
func GenerateTimesheetReport(employee *model.Employee, entries []model.Timesheet, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("timesheet_%d.pdf", employee.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Timesheet Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 7, fmt.Sprintf("%s %s — %s", employee.FirstName, employee.LastName, employee.Position), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Table header ─────────────────────────────────────────────────────────
	col1 := contentW * 0.30 // date
	col2 := contentW * 0.50 // activity
	col3 := contentW * 0.20 // hours

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1, 7, "Date", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Activity", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 7, "Hours", "B", 1, "R", false, 0, "")

	// ── Entry rows ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 10)
	total := decimal.Zero
	for _, entry := range entries {
		name := ""
		if entry.Activity != nil {
			name = entry.Activity.Name
		}
		if len(name) > 48 {
			name = name[:47] + "…"
		}
		pdf.CellFormat(col1, 6, entry.Date.Format("2006-01-02"), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 6, entry.Hours.StringFixed(2), "", 1, "R", false, 0, "")
		total = total.Add(entry.Hours)
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2, 7, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 7, total.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
