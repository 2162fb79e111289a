package models

import "time"

// Order statuses as stored in the orders.status enum column.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
)

// Order is one placed order, identified both by its row id and by the
// customer-facing IW- order token.
type Order struct {
	ID       string    `json:"id"`
	OrderID  string    `json:"order_id"`
	UserID   string    `json:"user_id"`
	Status   string    `json:"status"`
	Total    float64   `json:"total"`
	Paid     bool      `json:"paid"`
	PlacedAt time.Time `json:"placed_at"`

	// Items and User are populated only when relationships are
	// eagerly loaded.
	Items []OrderItem `json:"items,omitempty"`
	User  User        `json:"user,omitempty"`
}

// OrderItem carries per-format quantities for one product in an order.
// PDF is a flag (a buyer gets at most one digital copy); the physical
// formats carry quantities.
type OrderItem struct {
	ID           string  `json:"id"`
	OrderID      string  `json:"order_id"`
	ProductID    string  `json:"product_id"`
	PDF          bool    `json:"pdf"`
	HardBackQty  int64   `json:"hard_back_qty"`
	PaperBackQty int64   `json:"paper_back_qty"`
	Product      Product `json:"product,omitempty"`
}
