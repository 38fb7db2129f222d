package address

import "time"

type Response struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"userId"`
	FullName  string    `json:"fullName"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zipCode"`
	Country   string    `json:"country"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToResponse(a *Address) *Response {
	if a == nil {
		return nil
	}
	return &Response{
		ID:        a.ID.String(),
		UserID:    a.UserID,
		FullName:  a.FullName,
		Street:    a.Street,
		City:      a.City,
		State:     a.State,
		ZipCode:   a.ZipCode,
		Country:   a.Country,
		IsDefault: a.IsDefault,
		CreatedAt: a.CreatedAt,
	}
}

func ToResponseList(addrs []*Address) []*Response {
	res := make([]*Response, 0, len(addrs))
	for _, a := range addrs {
		res = append(res, ToResponse(a))
	}
	return res
}
