package posts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Source retrieves the full post collection in a single round trip.
type Source interface {
	Fetch(ctx context.Context) ([]*Post, error)
}

// Pinger is implemented by sources that can check reachability without
// downloading the whole collection.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ping checks src, falling back to a full Fetch when it is not a Pinger.
func Ping(ctx context.Context, src Source) error {
	if p, ok := src.(Pinger); ok {
		return p.Ping(ctx)
	}
	_, err := src.Fetch(ctx)
	return err
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]*Post, error)

func (f SourceFunc) Fetch(ctx context.Context) ([]*Post, error) {
	return f(ctx)
}

func decodePosts(r io.Reader) ([]*Post, error) {
	var posts []*Post
	if err := json.NewDecoder(r).Decode(&posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

var _ Source = (*FileSource)(nil)

type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Fetch(_ context.Context) ([]*Post, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, &LoadError{Source: "file", Location: s.path, Err: err}
	}
	defer f.Close()

	posts, err := decodePosts(f)
	if err != nil {
		return nil, &LoadError{Source: "file", Location: s.path, Err: err}
	}
	return posts, nil
}

func (s *FileSource) Ping(_ context.Context) error {
	_, err := os.Stat(s.path)
	return err
}
