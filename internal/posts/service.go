package posts

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jeremyjsx/folio/internal/events"
)

// Recorder observes loads and lookups. metrics.Metrics satisfies it.
type Recorder interface {
	ObserveLoad(d time.Duration, count int, err error)
	ObserveLookup(found bool)
}

type noopRecorder struct{}

func (noopRecorder) ObserveLoad(time.Duration, int, error) {}
func (noopRecorder) ObserveLookup(bool) {}

type Service struct {
	src       Source
	publisher events.Publisher
	recorder  Recorder
	logger    *slog.Logger
}

func NewService(src Source, publisher events.Publisher, recorder Recorder, logger *slog.Logger) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		src:       src,
		publisher: publisher,
		recorder:  recorder,
		logger:    logger,
	}
}

var _ Source = (*Service)(nil)

// Fetch loads the whole collection from the underlying source.
func (s *Service) Fetch(ctx context.Context) ([]*Post, error) {
	start := time.Now()
	posts, err := s.src.Fetch(ctx)
	s.recorder.ObserveLoad(time.Since(start), len(posts), err)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Posts returns the collection filtered by query, then by tag.
func (s *Service) Posts(ctx context.Context, query, tag string) ([]*Post, error) {
	all, err := s.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByTag(FilterBySearch(all, query), tag), nil
}

func (s *Service) Tags(ctx context.Context) ([]string, error) {
	all, err := s.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return AllTags(all), nil
}

// FindPost returns the post with slug, or ErrNotFound. It neither records
// a lookup nor publishes an event.
func (s *Service) FindPost(ctx context.Context, slug string) (*Post, error) {
	all, err := s.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	post, ok := FindBySlug(all, slug)
	if !ok {
		return nil, ErrNotFound
	}
	return post, nil
}

// GetPostBySlug is FindPost for a post being viewed. Each call records a
// lookup, and a hit publishes a post.viewed event; publish failures are only
// logged.
func (s *Service) GetPostBySlug(ctx context.Context, slug string) (*Post, error) {
	post, err := s.FindPost(ctx, slug)
	if errors.Is(err, ErrNotFound) {
		s.recorder.ObserveLookup(false)
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	s.recorder.ObserveLookup(true)

	e := events.NewPostViewed(string(post.ID), post.Slug, post.Title)
	if err := s.publisher.PublishPostViewed(ctx, e); err != nil {
		s.logger.Warn("publish post viewed failed", "slug", slug, "error", err)
	}
	return post, nil
}
