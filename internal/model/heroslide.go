package model

import "time"

// HeroSlide is one image in the homepage carousel. CloudinaryID is the
// handle used to delete the asset from the external image store.
type HeroSlide struct {
	ID           string    `json:"id"`
	ImageURL     string    `json:"image_url"`
	CloudinaryID string    `json:"cloudinary_id"`
	Title        string    `json:"title,omitempty"`
	Order        int       `json:"order"`
	IsActive     bool      `json:"is_active"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}

// CreateHeroSlideRequest carries a new slide. Image is a data URI or remote
// URL handed to the image store; the stored URL comes back from the upload.
type CreateHeroSlideRequest struct {
	Image string `json:"image"`
	Title string `json:"title,omitempty"`
	Order int    `json:"order"`
}

// UpdateHeroSlideRequest represents a partial slide update. The image itself
// is immutable; replace a slide by deleting and re-creating it.
type UpdateHeroSlideRequest struct {
	Title    *string `json:"title,omitempty"`
	Order    *int    `json:"order,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
