package address

import (
	"time"

	"github.com/google/uuid"
)

// Address is a shipping destination. Per user at most one address carries
// IsDefault, and any user with at least one address has exactly one default.
type Address struct {
	ID     uuid.UUID
	UserID uint

	FullName string
	Street   string
	City     string
	State    string
	ZipCode  string
	Country  string

	IsDefault bool
	CreatedAt time.Time
}

type CreateAddressInput struct {
	UserID   uint
	FullName string
	Street   string
	City     string
	State    string
	ZipCode  string
	Country  string

	IsDefault bool
}
