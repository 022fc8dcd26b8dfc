package model

import "time"

// Order status vocabulary. Statuses are stored as plain strings, not a
// closed enum: administrators may overwrite them with arbitrary values
// through the override operation, so these constants are the expected
// vocabulary rather than an exhaustive one.
const (
	StatusReceived      = "Received"
	StatusPaid          = "Paid"
	StatusInPreparation = "In preparation"
	StatusCancelled     = "Cancelled"
	StatusDelivered     = "Delivered"

	// Legacy statuses still honoured by the cancellation guard.
	StatusPending  = "Pending"
	StatusApproved = "Approved"
)

// CanCancel reports whether a user may cancel an order in the given status.
func CanCancel(status string) bool {
	switch status {
	case StatusReceived, StatusPaid, StatusPending, StatusApproved:
		return true
	}
	return false
}

// ActiveKitchenStatuses are the states shown in the kitchen queue.
var ActiveKitchenStatuses = []string{StatusReceived, StatusInPreparation, StatusPaid}

// Order is an immutable snapshot of a cart taken at checkout. Only Status
// and Courier change after creation.
type Order struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"not null;index"`
	Total           int       `json:"total" gorm:"not null"` // integer currency units, surcharge included
	Status          string    `json:"status" gorm:"size:50;not null;default:'Received';index"`
	ShippingAddress string    `json:"shipping_address" gorm:"size:255"`
	PaymentMethod   string    `json:"payment_method" gorm:"size:50"`
	Courier         *string   `json:"courier,omitempty" gorm:"size:255"`
	CreatedAt       time.Time `json:"created_at" gorm:"index"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relations
	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderItem is a denormalized copy of a cart line at checkout time. The
// product id is kept for traceability only; name and unit price are
// snapshots and never re-read from the catalog.
type OrderItem struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	OrderID         uint    `json:"order_id" gorm:"not null;index"`
	ProductID       uint    `json:"product_id"`
	ProductName     string  `json:"product_name" gorm:"size:255;not null"`
	UnitPrice       int     `json:"unit_price" gorm:"not null"`
	Quantity        int     `json:"quantity" gorm:"not null"`
	Personalization *string `json:"personalization,omitempty" gorm:"type:text"`
}

// LineTotal is the snapshot price times quantity.
func (i *OrderItem) LineTotal() int {
	return i.UnitPrice * i.Quantity
}
