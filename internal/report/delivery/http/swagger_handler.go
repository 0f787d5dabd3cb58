package http

// ReportCSV godoc
// @Summary Download the stock report as CSV
// @Description Stock status across all warehouses, optionally filtered by entry creation date
// @Tags Reports
// @Security BearerAuth
// @Produce text/csv
// @Param startDate query string false "Start date (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string false "End date (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {string} string "CSV document"
// @Failure 400 {object} object{success=bool,error=string}
// @Router /inventory/report-csv [get]
func (h *ReportHandler) ReportCSVDoc() {}

// ReportPDF godoc
// @Summary Download the stock report as PDF
// @Description Stock status across all warehouses, optionally filtered by entry creation date
// @Tags Reports
// @Security BearerAuth
// @Produce application/pdf
// @Param startDate query string false "Start date (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string false "End date (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {string} string "PDF document"
// @Failure 400 {object} object{success=bool,error=string}
// @Router /inventory/report-pdf [get]
func (h *ReportHandler) ReportPDFDoc() {}
