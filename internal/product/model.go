package product

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	IsVeg       bool
	Rating      float64
	CreatedAt   time.Time
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	IsVeg       bool
	Rating      float64
}
