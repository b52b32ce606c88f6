package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestNewPostViewed(t *testing.T) {
	e := NewPostViewed("7", "go-basics", "Go Basics")
	if e.Type != TypePostViewed {
		t.Errorf("type = %q", e.Type)
	}
	if e.Payload.PostID != "7" || e.Payload.Slug != "go-basics" || e.Payload.Title != "Go Basics" {
		t.Errorf("payload = %+v", e.Payload)
	}
	if e.Timestamp.IsZero() || e.Timestamp.Location().String() != "UTC" {
		t.Errorf("timestamp = %v", e.Timestamp)
	}
	if other := NewPostViewed("7", "go-basics", "Go Basics"); other.ID == e.ID {
		t.Error("expected distinct event ids")
	}
}

func TestDecodePostViewed(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		want := NewPostViewed("1", "a", "A")
		body, err := json.Marshal(want)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		got, err := DecodePostViewed(body)
		if err != nil {
			t.Fatalf("DecodePostViewed: %v", err)
		}
		if got.ID != want.ID || got.Payload != want.Payload {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		_, err := DecodePostViewed([]byte("not json"))
		if err == nil || errors.Is(err, ErrUnknownType) {
			t.Errorf("got err %v", err)
		}
	})

	t.Run("other type", func(t *testing.T) {
		_, err := DecodePostViewed([]byte(`{"type":"post.published"}`))
		if !errors.Is(err, ErrUnknownType) {
			t.Errorf("got err %v", err)
		}
	})
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	if err := p.PublishPostViewed(context.Background(), NewPostViewed("1", "a", "A")); err != nil {
		t.Errorf("got err %v", err)
	}
}
