package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/md-editor-be/internal/auth"
	"github.com/isdelr/md-editor-be/internal/services"
	"github.com/rs/zerolog/log"
)

// PostHandler handles HTTP requests for post management. Every handler
// resolves the owner from the token claims first; the service layer never
// sees a request without one.
type PostHandler struct {
	service services.PostServiceProvider
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service services.PostServiceProvider) *PostHandler {
	return &PostHandler{service: service}
}

// CreatePostPayload defines the structure for post creation requests.
type CreatePostPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostPayload defines the structure for post update requests.
// Omitted fields keep their current values.
type UpdatePostPayload struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Create handles the request to create a new post.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	var payload CreatePostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.service.CreatePost(ownerID, payload.Title, payload.Content)
	if err != nil {
		log.Error().Err(err).Int64("user_id", ownerID).Msg("Failed to create post")
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

// List handles the request to list the caller's posts, optionally filtered
// by a title search term and sorted by an order_by column.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	search := r.URL.Query().Get("search")
	orderBy := r.URL.Query().Get("order_by")

	posts, err := h.service.ListPosts(ownerID, search, orderBy)
	if err != nil {
		log.Error().Err(err).Int64("user_id", ownerID).Msg("Failed to list posts")
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

// Get handles the request to get a single post by its ID.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}
	postID, ok := postIDFromURL(w, r)
	if !ok {
		return
	}

	post, err := h.service.GetPost(ownerID, postID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// Update handles the request to update an existing post.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}
	postID, ok := postIDFromURL(w, r)
	if !ok {
		return
	}

	var payload UpdatePostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.service.UpdatePost(ownerID, postID, payload.Title, payload.Content)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// Delete handles the request to delete a post.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}
	postID, ok := postIDFromURL(w, r)
	if !ok {
		return
	}

	if err := h.service.DeletePost(ownerID, postID); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted"})
}

// ownerFromRequest extracts the authenticated owner ID placed in the
// context by the auth middleware.
func ownerFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		writeError(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return 0, false
	}
	return claims.UserID, true
}

// postIDFromURL parses the {id} URL parameter.
func postIDFromURL(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		// A non-numeric id cannot name any post.
		writeError(w, http.StatusNotFound, "Not found")
		return 0, false
	}
	return id, true
}
