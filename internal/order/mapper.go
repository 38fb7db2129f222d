package order

import "time"

type Response struct {
	ID              string    `json:"id"`
	UserID          uint      `json:"userId"`
	ShippingAddress string    `json:"shippingAddress"`
	TotalAmount     float64   `json:"totalAmount"`
	ProductIDsJSON  string    `json:"productIdsJson"`
	Status          string    `json:"status"`
	FeedbackRating  *int      `json:"feedbackRating,omitempty"`
	FeedbackComment *string   `json:"feedbackComment,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type UserSummary struct {
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

type AdminResponse struct {
	Response
	User UserSummary `json:"user"`
}

func ToResponse(o *Order) *Response {
	if o == nil {
		return nil
	}
	return &Response{
		ID:              o.ID.String(),
		UserID:          o.UserID,
		ShippingAddress: o.ShippingAddress,
		TotalAmount:     o.TotalAmount,
		ProductIDsJSON:  o.ProductIDsJSON,
		Status:          string(o.Status),
		FeedbackRating:  o.FeedbackRating,
		FeedbackComment: o.FeedbackComment,
		CreatedAt:       o.CreatedAt,
	}
}

func ToResponseList(orders []*Order) []*Response {
	out := make([]*Response, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToResponse(o))
	}
	return out
}

func ToAdminResponse(o *OrderWithUser) *AdminResponse {
	if o == nil {
		return nil
	}
	return &AdminResponse{
		Response: *ToResponse(&o.Order),
		User: UserSummary{
			Username:  o.Username,
			AvatarURL: o.AvatarURL,
		},
	}
}

func ToAdminResponseList(orders []*OrderWithUser) []*AdminResponse {
	out := make([]*AdminResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToAdminResponse(o))
	}
	return out
}
