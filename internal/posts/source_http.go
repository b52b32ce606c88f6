package posts

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DefaultDataPath is where the static posts document is conventionally served.
const DefaultDataPath = "/data/posts.json"

var _ Source = (*HTTPSource)(nil)

type HTTPSource struct {
	client *http.Client
	url    string
}

func NewHTTPSource(client *http.Client, url string) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{client: client, url: url}
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]*Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, &LoadError{Source: "http", Location: s.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &LoadError{Source: "http", Location: s.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &LoadError{
			Source:     "http",
			Location:   s.url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	posts, err := decodePosts(resp.Body)
	if err != nil {
		return nil, &LoadError{Source: "http", Location: s.url, StatusCode: resp.StatusCode, Err: err}
	}
	return posts, nil
}

// Ping issues a HEAD request for the document.
func (s *HTTPSource) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.url, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("head %s: unexpected status %s", s.url, resp.Status)
	}
	return nil
}
