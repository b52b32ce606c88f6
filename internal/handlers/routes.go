package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jeremyjsx/folio/internal/middleware"
)

type RouterDeps struct {
	Posts   *PostsHandler
	Health  *HealthDeps
	Metrics http.Handler
	// StaticDir, when set, is served at / so the posts document can be
	// published next to the API.
	StaticDir string
	Logger    *slog.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", Health(deps.Health))
	mux.HandleFunc("GET /posts", deps.Posts.List())
	mux.HandleFunc("GET /posts/{slug}", deps.Posts.GetBySlug())
	mux.HandleFunc("GET /posts/{slug}/content", deps.Posts.GetContent())
	mux.HandleFunc("GET /tags", deps.Posts.Tags())
	if deps.Metrics != nil {
		mux.Handle("GET /metrics", deps.Metrics)
	}
	if deps.StaticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(deps.StaticDir)))
	}

	return middleware.RequestID(middleware.Logging(deps.Logger)(mux))
}
