package post

import (
	"time"

	"github.com/google/uuid"
)

// Post is an entry in the community feed. Overlay fields describe the
// promotional text rendered on top of the image.
type Post struct {
	ID          uuid.UUID
	AuthorID    uint
	ImageURL    string
	Caption     string
	Likes       int
	OverlayType string
	OverlayText string
	CreatedAt   time.Time
}

// PostWithAuthor carries the author info the feed displays alongside each
// post.
type PostWithAuthor struct {
	Post
	AuthorName   string
	AuthorAvatar *string
}

type CreatePostInput struct {
	AuthorID    uint
	ImageURL    string
	Caption     string
	OverlayType string
	OverlayText string
}
