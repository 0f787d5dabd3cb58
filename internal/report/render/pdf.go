package render

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/inventoryops/warehouse-api/internal/report/domain"
)

// WritePDF renders report rows as a simple PDF document with a
// centered title and one line per stock entry.
func WritePDF(w io.Writer, rows []domain.Row) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Inventory Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		line := fmt.Sprintf(
			"Name: %s | Price: %g | Warehouse: %s | Location: %s | Quantity: %d | Low Stock Threshold: %d",
			row.Name, row.Price, row.Warehouse, row.Location, row.Quantity, row.LowStockThreshold,
		)
		pdf.MultiCell(0, 7, line, "", "L", false)
		pdf.Ln(1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}
