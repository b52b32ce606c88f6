package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jeremyjsx/folio/internal/listing"
	"github.com/jeremyjsx/folio/internal/posts"
)

// Renderer turns post Markdown into sanitized HTML.
type Renderer interface {
	Render(markdown string) (string, error)
}

type PostsHandler struct {
	svc           *posts.Service
	renderer      Renderer
	fallbackCover string
	logger        *slog.Logger
}

func NewPostsHandler(svc *posts.Service, renderer Renderer, fallbackCover string, logger *slog.Logger) *PostsHandler {
	return &PostsHandler{
		svc:           svc,
		renderer:      renderer,
		fallbackCover: fallbackCover,
		logger:        logger,
	}
}

// PostResponse is a post with the fields the detail view derives from it.
type PostResponse struct {
	*posts.Post
	CoverImage     string `json:"cover_image"`
	ReadingMinutes int    `json:"reading_minutes"`
	DisplayDate    string `json:"display_date"`
}

func (h *PostsHandler) newPostResponse(p *posts.Post) PostResponse {
	return PostResponse{
		Post:           p,
		CoverImage:     p.Cover(h.fallbackCover),
		ReadingMinutes: p.ReadingTime(),
		DisplayDate:    p.DisplayDate(),
	}
}

func (h *PostsHandler) writeLoadError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("load posts failed", "path", r.URL.Path, "error", err)
	writeError(w, r, http.StatusBadGateway, "LOAD_ERROR", "failed to load posts", nil)
}

func (h *PostsHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := listing.FromValues(r.URL.Query())

		load := listing.Run(r.Context(), h.svc)
		view, ok := load.View(state)
		if !ok {
			h.writeLoadError(w, r, load.Err())
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func (h *PostsHandler) Tags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.svc.Tags(r.Context())
		if err != nil {
			h.writeLoadError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"tags": tags})
	}
}

func (h *PostsHandler) GetBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, ok := h.lookup(w, r, h.svc.GetPostBySlug)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, h.newPostResponse(post))
	}
}

// GetContent serves the post body as sanitized HTML. Views are counted by
// GetBySlug only.
func (h *PostsHandler) GetContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, ok := h.lookup(w, r, h.svc.FindPost)
		if !ok {
			return
		}

		html, err := h.renderer.Render(post.Content)
		if err != nil {
			h.logger.Error("render post failed", "slug", post.Slug, "error", err)
			writeError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(html))
	}
}

type findFunc func(ctx context.Context, slug string) (*posts.Post, error)

func (h *PostsHandler) lookup(w http.ResponseWriter, r *http.Request, find findFunc) (*posts.Post, bool) {
	slug := r.PathValue("slug")
	if slug == "" {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "slug is required", nil)
		return nil, false
	}

	post, err := find(r.Context(), slug)
	if err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "NOT_FOUND", "post not found", nil)
			return nil, false
		}
		h.writeLoadError(w, r, err)
		return nil, false
	}
	return post, true
}
