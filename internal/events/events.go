package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const TypePostViewed = "post.viewed"

type PostViewedPayload struct {
	PostID string `json:"post_id"`
	Slug   string `json:"slug"`
	Title  string `json:"title"`
}

type PostViewed struct {
	ID        uuid.UUID         `json:"id"`
	Type      string            `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Payload   PostViewedPayload `json:"payload"`
}

func NewPostViewed(postID, slug, title string) PostViewed {
	return PostViewed{
		ID:        uuid.New(),
		Type:      TypePostViewed,
		Timestamp: time.Now().UTC(),
		Payload: PostViewedPayload{
			PostID: postID,
			Slug:   slug,
			Title:  title,
		},
	}
}

var ErrUnknownType = errors.New("unknown event type")

// DecodePostViewed parses a delivery body. Well-formed events of another type
// return ErrUnknownType.
func DecodePostViewed(body []byte) (PostViewed, error) {
	var e PostViewed
	if err := json.Unmarshal(body, &e); err != nil {
		return PostViewed{}, fmt.Errorf("decode event: %w", err)
	}
	if e.Type != TypePostViewed {
		return e, fmt.Errorf("%w: %q", ErrUnknownType, e.Type)
	}
	return e, nil
}
