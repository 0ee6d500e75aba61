package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/post-api/internal/api/middleware"
	"github.com/phrazzld/post-api/internal/service"
	"github.com/phrazzld/post-api/internal/store"
)

// NewRouter assembles the request pipeline and routes. The stages run in
// order: trace ID, request logging, panic recovery, then the
// authorization gate — so a rejected request is still logged but never
// reaches a handler.
func NewRouter(
	posts *service.PostService,
	tokens store.TokenStore,
	logger *slog.Logger,
) chi.Router {
	postHandler := NewPostHandler(posts, logger)
	authMiddleware := middleware.NewAuthMiddleware(tokens, logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.TraceMiddleware)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(authMiddleware.Authenticate)

	r.Get("/authorization/status", AuthStatusHandler)

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", postHandler.ListPosts)
		r.Post("/", postHandler.CreatePost)
		r.Get("/{id}", postHandler.GetPost)
		r.Put("/{id}", postHandler.UpdatePost)
	})

	return r
}
