package order

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

// Valid reports whether s is one of the six order statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// PaymentPending is the only payment state this service ever writes;
// payment transitions live outside this backend.
const PaymentPending = "pending"

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address"`
	Zone    string `json:"zone"`
}

type Item struct {
	RollType string  `json:"rollType"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Delivery struct {
	TimeWindow string `json:"timeWindow"`
}

// Order is the stored document. OrderID is assigned once at creation and
// never changes; UpdatedAt moves forward on every mutation.
type Order struct {
	OrderID             string    `json:"orderId"`
	Customer            Customer  `json:"customer"`
	Items               []Item    `json:"items"`
	Delivery            Delivery  `json:"delivery"`
	Total               float64   `json:"total"`
	SpecialInstructions string    `json:"specialInstructions,omitempty"`
	OrderStatus         Status    `json:"orderStatus"`
	PaymentStatus       string    `json:"paymentStatus"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// CreateOrderInput is the order as submitted by the site.
type CreateOrderInput struct {
	Customer            Customer `json:"customer"`
	Items               []Item   `json:"items"`
	Delivery            Delivery `json:"delivery"`
	Total               float64  `json:"total"`
	SpecialInstructions string   `json:"specialInstructions,omitempty"`
}

// ItemSummary renders the order lines for notification bodies,
// e.g. "2x Chicken Tikka (€13.00), 1x Paneer Roll (€5.50)".
func ItemSummary(items []Item) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lineTotal := item.Price * float64(item.Quantity)
		lines = append(lines, fmt.Sprintf("%dx %s (€%.2f)", item.Quantity, item.RollType, lineTotal))
	}
	return strings.Join(lines, ", ")
}
