package product

import "time"

type Response struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	IsVeg       bool      `json:"isVeg"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToResponse(p *Product) *Response {
	if p == nil {
		return nil
	}
	return &Response{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		IsVeg:       p.IsVeg,
		Rating:      p.Rating,
		CreatedAt:   p.CreatedAt,
	}
}

func ToResponseList(products []*Product) []*Response {
	out := make([]*Response, 0, len(products))
	for _, p := range products {
		out = append(out, ToResponse(p))
	}
	return out
}
