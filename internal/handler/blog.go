package handler

import (
	"net/http"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/service"
)

// BlogHandler handles blog endpoints
type BlogHandler struct {
	blogService *service.BlogService
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// List handles GET /api/blogs. The public site passes published=true; the
// back office omits it and sees drafts too.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := model.BlogFilter{
		PublishedOnly: q.Get("published") == "true",
		Page:          queryInt(q.Get("page"), 1),
		Limit:         queryInt(q.Get("limit"), 10),
	}

	page, err := h.blogService.List(r.Context(), filter)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

// Get handles GET /api/blogs/{id}
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := recordID("blog", r.PathValue("id"))

	blog, err := h.blogService.GetByID(r.Context(), id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, struct {
		Blog *model.Blog `json:"blog"`
	}{Blog: blog})
}

// GetBySlug handles GET /api/blogs/slug/{slug}
func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	blog, err := h.blogService.GetBySlug(r.Context(), slug)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, struct {
		Blog *model.Blog `json:"blog"`
	}{Blog: blog})
}

// Create handles POST /api/blogs
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBlogRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	blog, err := h.blogService.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusCreated, struct {
		Blog *model.Blog `json:"blog"`
	}{Blog: blog})
}

// Update handles PUT /api/blogs/{id}
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := recordID("blog", r.PathValue("id"))

	var req model.UpdateBlogRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	blog, err := h.blogService.Update(r.Context(), id, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, struct {
		Blog *model.Blog `json:"blog"`
	}{Blog: blog})
}

// Delete handles DELETE /api/blogs/{id}
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := recordID("blog", r.PathValue("id"))

	if err := h.blogService.Delete(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Blog deleted successfully"})
}
