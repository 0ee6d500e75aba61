package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/post-api/internal/api/shared"
	"github.com/phrazzld/post-api/internal/platform/logger"
	"github.com/phrazzld/post-api/internal/service"
	"github.com/phrazzld/post-api/internal/store"
)

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	posts  *service.PostService
	logger *slog.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts *service.PostService, log *slog.Logger) *PostHandler {
	if posts == nil {
		panic("post service cannot be nil for PostHandler")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostHandler{
		posts:  posts,
		logger: log.With(slog.String("component", "post_handler")),
	}
}

// pathPostID resolves the {id} URL parameter. A value that is not a
// valid UUID cannot name any stored post, so it reports absence rather
// than a malformed-request error.
func pathPostID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetPost handles GET /posts/{id} requests.
// Responds 200 with the post, or 404 with an empty body when no post
// matches the ID.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := pathPostID(r)
	if !ok {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}

	post, err := h.posts.Find(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			shared.RespondWithStatus(w, http.StatusNotFound)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to load post", err)
		return
	}

	log.Debug("post retrieved", slog.String("post_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(post))
}

// ListPosts handles GET /posts requests.
// Responds 200 with every post, most recently published first.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list posts", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postsToResponse(posts))
}

// CreatePost handles POST /posts requests.
// Responds 201 with the persisted post, or 422 with the field error map
// when validation fails. Nothing is stored on a validation failure.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req PostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("malformed create request body", slog.String("error", err.Error()))
		shared.RespondWithStatus(w, http.StatusBadRequest)
		return
	}

	post, fieldErrs, err := h.posts.Create(r.Context(), req.Input())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create post", err)
		return
	}
	if fieldErrs != nil {
		shared.RespondWithJSON(w, r, http.StatusUnprocessableEntity,
			ValidationErrorResponse{Errors: fieldErrs})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, postToResponse(post))
}

// UpdatePost handles PUT /posts/{id} requests.
// The patch may carry any subset of title, body, and publishedAt; fields
// left out keep their stored values. Responds 200 with the updated post,
// 404 with an empty body when no post matches, or 422 with the field
// error map when the merged result fails validation.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := pathPostID(r)
	if !ok {
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}

	existing, err := h.posts.Find(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			shared.RespondWithStatus(w, http.StatusNotFound)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to load post", err)
		return
	}

	var req PostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("malformed update request body", slog.String("error", err.Error()))
		shared.RespondWithStatus(w, http.StatusBadRequest)
		return
	}

	updated, fieldErrs, err := h.posts.Update(r.Context(), existing, req.Input())
	if err != nil {
		// The row can vanish between the read and the write; report
		// absence the same way as a failed initial lookup.
		if errors.Is(err, store.ErrPostNotFound) {
			shared.RespondWithStatus(w, http.StatusNotFound)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to update post", err)
		return
	}
	if fieldErrs != nil {
		shared.RespondWithJSON(w, r, http.StatusUnprocessableEntity,
			ValidationErrorResponse{Errors: fieldErrs})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(updated))
}
