package posts

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
)

const selectDocument = `SELECT body FROM documents WHERE name = $1`

var _ Source = (*PostgresSource)(nil)

// PostgresSource reads the posts document from the documents table, where
// body holds the same JSON array the static file would.
type PostgresSource struct {
	db   *sql.DB
	name string
}

func NewPostgresSource(db *sql.DB, name string) *PostgresSource {
	return &PostgresSource{db: db, name: name}
}

func (s *PostgresSource) Fetch(ctx context.Context) ([]*Post, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx, selectDocument, s.name).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &LoadError{Source: "postgres", Location: s.name, StatusCode: 404, Err: err}
		}
		return nil, &LoadError{Source: "postgres", Location: s.name, Err: err}
	}

	posts, err := decodePosts(bytes.NewReader(body))
	if err != nil {
		return nil, &LoadError{Source: "postgres", Location: s.name, Err: err}
	}
	return posts, nil
}

func (s *PostgresSource) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
