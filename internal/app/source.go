// Package app wires a posts.Source from configuration.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/jeremyjsx/folio/internal/config"
	"github.com/jeremyjsx/folio/internal/posts"
	"github.com/jeremyjsx/folio/internal/storage"
	_ "github.com/lib/pq"
)

// Kind is the backend a POSTS_SOURCE value selects.
type Kind string

const (
	KindHTTP     Kind = "http"
	KindS3       Kind = "s3"
	KindPostgres Kind = "postgres"
	KindFile     Kind = "file"
)

// ParseSource classifies a POSTS_SOURCE value. For s3 sources it also
// returns the bucket and key.
func ParseSource(raw string) (kind Kind, bucket, key string, err error) {
	switch {
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return KindHTTP, "", "", nil
	case strings.HasPrefix(raw, "s3://"):
		u, err := url.Parse(raw)
		if err != nil {
			return "", "", "", fmt.Errorf("parse s3 source: %w", err)
		}
		key = strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return "", "", "", fmt.Errorf("s3 source %q needs a bucket and key", raw)
		}
		return KindS3, u.Host, key, nil
	case raw == "postgres":
		return KindPostgres, "", "", nil
	case raw == "":
		return "", "", "", fmt.Errorf("posts source is empty")
	default:
		return KindFile, "", "", nil
	}
}

// OpenSource builds the configured source, wrapped in a cache when
// CACHE_TTL is positive. The returned close func releases any connections.
func OpenSource(ctx context.Context, cfg *config.Config) (posts.Source, func() error, error) {
	kind, bucket, key, err := ParseSource(cfg.PostsSource)
	if err != nil {
		return nil, nil, err
	}

	var src posts.Source
	closeFn := func() error { return nil }

	switch kind {
	case KindHTTP:
		src = posts.NewHTTPSource(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.PostsSource)
	case KindS3:
		if cfg.S3Bucket != "" && cfg.S3Bucket != bucket {
			return nil, nil, fmt.Errorf("s3 source bucket %q does not match S3_BUCKET %q", bucket, cfg.S3Bucket)
		}
		client, err := storage.NewS3Client(ctx, cfg.AWSRegion, cfg.S3Endpoint)
		if err != nil {
			return nil, nil, err
		}
		src = posts.NewS3Source(storage.NewS3Storage(client, bucket), key)
	case KindPostgres:
		if cfg.DatabaseURL == "" {
			return nil, nil, fmt.Errorf("DATABASE_URL is required for the postgres source")
		}
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		src = posts.NewPostgresSource(db, cfg.PostsDocument)
		closeFn = db.Close
	case KindFile:
		src = posts.NewFileSource(cfg.PostsSource)
	}

	if cfg.CacheTTL > 0 {
		src = posts.NewCachedSource(src, cfg.CacheTTL)
	}
	return src, closeFn, nil
}
