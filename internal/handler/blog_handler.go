package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/terroir-ai/backend/internal/model"
	"github.com/terroir-ai/backend/internal/service"
)

const (
	blogDefaultLimit = 10
	blogMaxLimit     = 50
)

// BlogHandler serves published blog content.
type BlogHandler struct {
	blogService service.BlogService
}

// NewBlogHandler creates a BlogHandler with the given service.
func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// List handles GET /blog. Results are newest first; limit defaults to 10 and
// is clamped to 50.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := pageOptions(r, blogDefaultLimit, blogMaxLimit)

	posts, err := h.blogService.ListPublished(r.Context(), opts)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if posts == nil {
		posts = []*model.BlogPostSummary{}
	}
	writeJSON(w, http.StatusOK, posts)
}

// Get handles GET /blog/{slug}. Unpublished posts answer 404 exactly like
// missing ones.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.blogService.GetBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}
