package post

import "time"

type AuthorSummary struct {
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

type Response struct {
	ID          string    `json:"id"`
	AuthorID    uint      `json:"authorId"`
	ImageURL    string    `json:"imageUrl"`
	Caption     string    `json:"caption"`
	Likes       int       `json:"likes"`
	OverlayType string    `json:"overlayType,omitempty"`
	OverlayText string    `json:"overlayText,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type FeedResponse struct {
	Response
	Author AuthorSummary `json:"author"`
}

func ToResponse(p *Post) *Response {
	if p == nil {
		return nil
	}
	return &Response{
		ID:          p.ID.String(),
		AuthorID:    p.AuthorID,
		ImageURL:    p.ImageURL,
		Caption:     p.Caption,
		Likes:       p.Likes,
		OverlayType: p.OverlayType,
		OverlayText: p.OverlayText,
		CreatedAt:   p.CreatedAt,
	}
}

func ToFeedResponseList(posts []*PostWithAuthor) []*FeedResponse {
	out := make([]*FeedResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, &FeedResponse{
			Response: *ToResponse(&p.Post),
			Author: AuthorSummary{
				Username:  p.AuthorName,
				AvatarURL: p.AuthorAvatar,
			},
		})
	}
	return out
}
