package handler

import (
	"net/http"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/service"
)

// HeroSlideHandler handles homepage carousel endpoints
type HeroSlideHandler struct {
	slideService *service.HeroSlideService
}

// NewHeroSlideHandler creates a new hero slide handler
func NewHeroSlideHandler(slideService *service.HeroSlideService) *HeroSlideHandler {
	return &HeroSlideHandler{slideService: slideService}
}

// List handles GET /api/hero-slides. The public site sees only active
// slides; the back office passes all=true for the full set.
func (h *HeroSlideHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		slides []*model.HeroSlide
		err    error
	)

	if r.URL.Query().Get("all") == "true" {
		slides, err = h.slideService.List(r.Context())
	} else {
		slides, err = h.slideService.ListActive(r.Context())
	}
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, struct {
		Slides []*model.HeroSlide `json:"slides"`
	}{Slides: slides})
}

// Create handles POST /api/hero-slides
func (h *HeroSlideHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateHeroSlideRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	slide, err := h.slideService.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusCreated, struct {
		Slide *model.HeroSlide `json:"slide"`
	}{Slide: slide})
}

// Update handles PUT /api/hero-slides/{id}
func (h *HeroSlideHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := recordID("hero_slide", r.PathValue("id"))

	var req model.UpdateHeroSlideRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	slide, err := h.slideService.Update(r.Context(), id, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, struct {
		Slide *model.HeroSlide `json:"slide"`
	}{Slide: slide})
}

// Delete handles DELETE /api/hero-slides/{id}
func (h *HeroSlideHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := recordID("hero_slide", r.PathValue("id"))

	if err := h.slideService.Delete(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Slide deleted successfully"})
}
