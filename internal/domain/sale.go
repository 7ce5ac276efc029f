package domain

// Sale is one row from the Sales sheet. CustomerID and ProductID must resolve
// to persisted rows before the sale is inserted. Quantity and Total are nil
// when the source cell was blank or did not parse.
type Sale struct {
	SaleID     string   `json:"sale_id"`
	CustomerID string   `json:"customer_id"`
	ProductID  string   `json:"product_id"`
	Quantity   *int     `json:"quantity,omitempty"`
	Total      *float64 `json:"total,omitempty"`
}
