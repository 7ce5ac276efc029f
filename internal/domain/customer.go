package domain

// Customer is one row from the Customers sheet. All four fields are required
// before the row is persisted.
type Customer struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}
