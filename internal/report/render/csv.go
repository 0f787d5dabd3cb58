package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/inventoryops/warehouse-api/internal/report/domain"
)

// WriteCSV renders report rows as CSV with a header row. Numeric
// columns use the shortest decimal representation.
func WriteCSV(w io.Writer, rows []domain.Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(domain.Fields); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Name,
			strconv.FormatFloat(row.Price, 'f', -1, 64),
			row.Warehouse,
			row.Location,
			strconv.Itoa(row.Quantity),
			strconv.Itoa(row.LowStockThreshold),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv output: %w", err)
	}
	return nil
}
