package handler

import (
	"net/http"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/service"
)

// ToolHandler handles tools directory endpoints
type ToolHandler struct {
	toolService *service.ToolService
}

// NewToolHandler creates a new tool handler
func NewToolHandler(toolService *service.ToolService) *ToolHandler {
	return &ToolHandler{toolService: toolService}
}

// List handles GET /api/tools
func (h *ToolHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := model.ToolFilter{
		Category:     model.ToolCategory(q.Get("category")),
		FeaturedOnly: q.Get("featured") == "true",
	}

	tools, err := h.toolService.List(r.Context(), filter)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, struct {
		Tools []*model.Tool `json:"tools"`
	}{Tools: tools})
}

// Get handles GET /api/tools/{id}
func (h *ToolHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := recordID("tool", r.PathValue("id"))

	tool, err := h.toolService.GetByID(r.Context(), id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, struct {
		Tool *model.Tool `json:"tool"`
	}{Tool: tool})
}

// Create handles POST /api/tools
func (h *ToolHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateToolRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	tool, err := h.toolService.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusCreated, struct {
		Tool *model.Tool `json:"tool"`
	}{Tool: tool})
}

// Update handles PUT /api/tools/{id}
func (h *ToolHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := recordID("tool", r.PathValue("id"))

	var req model.UpdateToolRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	tool, err := h.toolService.Update(r.Context(), id, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, struct {
		Tool *model.Tool `json:"tool"`
	}{Tool: tool})
}

// Delete handles DELETE /api/tools/{id}
func (h *ToolHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := recordID("tool", r.PathValue("id"))

	if err := h.toolService.Delete(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Tool deleted successfully"})
}
