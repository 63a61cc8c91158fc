package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Created, awaiting fulfillment or review
	OrderStatusCompleted OrderStatus = "completed" // Paid and delivered
	OrderStatusRefunded  OrderStatus = "refunded"  // Money returned to customer
)

// Order is one attempted or completed restoration purchase. The ID is either
// assigned by the order database on append, or generated locally (timestamp
// plus random suffix) when the database is unreachable.
type Order struct {
	ID            string      `gorm:"primaryKey" json:"id"`
	CustomerName  string      `gorm:"not null" json:"customer_name"`
	CustomerEmail string      `json:"customer_email,omitempty"`
	CustomerID    string      `gorm:"index" json:"customer_id,omitempty"`
	Date          time.Time   `gorm:"index" json:"date"`
	Amount        float64     `json:"amount"`
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	ImageURL      string      `json:"image_url,omitempty"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	Items         string      `json:"items,omitempty"`
}
