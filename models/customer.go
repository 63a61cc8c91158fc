package models

import "time"

// Customer is a lightweight storefront profile. Customers are not a real
// account system; the ID just lets a visitor find their own orders again.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
