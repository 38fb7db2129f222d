package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/peakstore/peakstore-be/internal/apperr"
)

type OrderStatus string

const (
	StatusPending         OrderStatus = "PENDING"
	StatusProcessing      OrderStatus = "PROCESSING"
	StatusShipped         OrderStatus = "SHIPPED"
	StatusOutForDelivery  OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered       OrderStatus = "DELIVERED"
	StatusReviewed        OrderStatus = "REVIEWED"
	StatusReturnRequested OrderStatus = "RETURN_REQUESTED"
	StatusReturned        OrderStatus = "RETURNED"
	StatusRefunded        OrderStatus = "REFUNDED"
)

var validStatuses = map[OrderStatus]bool{
	StatusPending:         true,
	StatusProcessing:      true,
	StatusShipped:         true,
	StatusOutForDelivery:  true,
	StatusDelivered:       true,
	StatusReviewed:        true,
	StatusReturnRequested: true,
	StatusReturned:        true,
	StatusRefunded:        true,
}

// ParseStatus validates a caller-supplied status string. Transitions
// themselves are unrestricted (support staff may force any state), but the
// value must be a known status.
func ParseStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !validStatuses[status] {
		return "", apperr.Validationf("invalid status: %s", s)
	}
	return status, nil
}

// ReturnInProgress reports whether the order sits in a return or refund
// state that customer feedback must not override.
func (s OrderStatus) ReturnInProgress() bool {
	switch s {
	case StatusReturnRequested, StatusReturned, StatusRefunded:
		return true
	}
	return false
}

// NextStatusAfterFeedback applies the feedback transition rule: a return in
// progress keeps its status, anything else becomes REVIEWED.
func NextStatusAfterFeedback(current OrderStatus) OrderStatus {
	if current.ReturnInProgress() {
		return current
	}
	return StatusReviewed
}

// Order is never deleted; it only moves between statuses and accumulates
// feedback. ShippingAddress is a denormalized snapshot, not a reference
// into the address book.
type Order struct {
	ID              uuid.UUID
	UserID          uint
	ShippingAddress string
	TotalAmount     float64
	ProductIDsJSON  string
	Status          OrderStatus
	FeedbackRating  *int
	FeedbackComment *string
	CreatedAt       time.Time
}

// OrderWithUser carries the minimal user info the admin listing displays.
type OrderWithUser struct {
	Order
	Username  string
	AvatarURL *string
}

type CreateOrderInput struct {
	UserID          uint
	ShippingAddress string
	TotalAmount     float64
	ProductIDsJSON  string
}
