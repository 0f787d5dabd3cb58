package domain

// Placeholder values rendered when a stock entry references a product
// or warehouse that no longer resolves. A dangling reference is a
// display fallback here, not an error.
const (
	UnknownName  = "Unknown"
	UnknownPrice = float64(0)
)

// Row is one line of the stock status report: a stock entry joined
// with its product and warehouse
type Row struct {
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	Warehouse         string  `json:"warehouse"`
	Location          string  `json:"location"`
	Quantity          int     `json:"quantity"`
	LowStockThreshold int     `json:"lowStockThreshold"`
}

// Fields are the report columns, in render order
var Fields = []string{"name", "price", "warehouse", "location", "quantity", "lowStockThreshold"}
