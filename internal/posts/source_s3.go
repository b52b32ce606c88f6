package posts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jeremyjsx/folio/internal/storage"
)

var _ Source = (*S3Source)(nil)

// S3Source reads the posts document from a single object in blob storage.
type S3Source struct {
	storage storage.Storage
	key     string
}

func NewS3Source(st storage.Storage, key string) *S3Source {
	return &S3Source{storage: st, key: key}
}

func (s *S3Source) Fetch(ctx context.Context) ([]*Post, error) {
	body, err := s.storage.Download(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, &LoadError{Source: "s3", Location: s.key, StatusCode: 404, Err: err}
		}
		return nil, &LoadError{Source: "s3", Location: s.key, Err: err}
	}
	defer body.Close()

	posts, err := decodePosts(body)
	if err != nil {
		return nil, &LoadError{Source: "s3", Location: s.key, Err: err}
	}
	return posts, nil
}

func (s *S3Source) Ping(ctx context.Context) error {
	ok, err := s.storage.Exists(ctx, s.key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("object %s: %w", s.key, storage.ErrNotFound)
	}
	return nil
}
