package handler

import (
	"net/http"
	"strconv"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/middleware"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/service"
)

// ForumHandler handles forum endpoints
type ForumHandler struct {
	forumService *service.ForumService
}

// NewForumHandler creates a new forum handler
func NewForumHandler(forumService *service.ForumService) *ForumHandler {
	return &ForumHandler{forumService: forumService}
}

// ListCategories handles GET /api/forum/categories
func (h *ForumHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.forumService.ListCategories(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, categories)
}

// ListTopics handles GET /api/forum/topics
func (h *ForumHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := model.TopicFilter{
		Category:    q.Get("category"),
		Subcategory: q.Get("subcategory"),
		Page:        queryInt(q.Get("page"), 1),
		Limit:       queryInt(q.Get("limit"), model.DefaultTopicPageSize),
	}

	page, err := h.forumService.ListTopics(r.Context(), filter)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

// CreateTopic handles POST /api/forum/topics
func (h *ForumHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req model.CreateTopicRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	topic, err := h.forumService.CreateTopic(r.Context(), userID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusCreated, topic)
}

// GetTopic handles GET /api/forum/topics/{slug}
func (h *ForumHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	detail, err := h.forumService.GetTopicBySlug(r.Context(), slug)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, detail)
}

// CreateReply handles POST /api/forum/replies
func (h *ForumHandler) CreateReply(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req model.CreateReplyRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	reply, err := h.forumService.CreateReply(r.Context(), userID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusCreated, reply)
}

// ModerateTopic handles PATCH /api/forum/topics/{id}/moderate
func (h *ForumHandler) ModerateTopic(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req model.ModerateTopicRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	topic, err := h.forumService.ModerateTopic(r.Context(), recordID("forum_topic", id), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, topic)
}

// queryInt parses a positive integer query parameter with a fallback
func queryInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
