package user

import "time"

type Response struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToResponse(u *User) *Response {
	if u == nil {
		return nil
	}
	return &Response{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

func ToResponseList(users []*User) []*Response {
	res := make([]*Response, 0, len(users))
	for _, u := range users {
		res = append(res, ToResponse(u))
	}
	return res
}
