package domain

// Product is one row from the Products sheet. Price is nil when the source
// cell was blank or did not parse as a number.
type Product struct {
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price,omitempty"`
}
