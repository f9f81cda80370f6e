package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"cutiplan/internal/domain/planner"
)

// WriteCSV writes the leave records as CSV rows.
func WriteCSV(w io.Writer, leaves []planner.LeaveEntry) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"date", "type", "note"}); err != nil {
		return err
	}
	for _, leave := range leaves {
		if err := writer.Write([]string{leave.Date, string(leave.Type), leave.Note}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WritePDF writes a one-page year-plan summary.
func WritePDF(w io.Writer, data planner.UserData, stats planner.Stats, year int) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Leave Plan %d", year))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Entitlement: %d days", data.Entitlement))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Used: %d days", len(data.Leaves)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Balance: %d days", planner.Balance(data.Entitlement, data.Leaves)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "By type")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, typ := range planner.LeaveTypes() {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d", typ, stats.TypeData[typ]))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Recorded leave")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	if len(data.Leaves) == 0 {
		pdf.Cell(0, 7, "No leave recorded.")
		pdf.Ln(6)
	}
	for _, leave := range data.Leaves {
		line := fmt.Sprintf("%s  %s", leave.Date, leave.Type)
		if leave.Note != "" {
			line += "  " + leave.Note
		}
		pdf.Cell(0, 7, line)
		pdf.Ln(6)
	}

	return pdf.Output(w)
}
