package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/database"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
)

// HeroSlideRepository handles homepage carousel data access
type HeroSlideRepository struct {
	db database.Database
}

// NewHeroSlideRepository creates a new hero slide repository
func NewHeroSlideRepository(db database.Database) *HeroSlideRepository {
	return &HeroSlideRepository{db: db}
}

// Create adds a new slide
func (r *HeroSlideRepository) Create(ctx context.Context, slide *model.HeroSlide) error {
	query := `
		CREATE hero_slide CONTENT {
			image_url: $image_url,
			cloudinary_id: $cloudinary_id,
			title: $title,
			sort_order: $sort_order,
			is_active: $is_active,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"image_url":     slide.ImageURL,
		"cloudinary_id": slide.CloudinaryID,
		"title":         slide.Title,
		"sort_order":    slide.Order,
		"is_active":     slide.IsActive,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return err
	}

	data, err := unwrapOne(result)
	if err != nil {
		return err
	}

	created := parseHeroSlide(data)
	slide.ID = created.ID
	slide.CreatedOn = created.CreatedOn
	slide.UpdatedOn = created.UpdatedOn
	return nil
}

// ListActive returns the active slides in display order
func (r *HeroSlideRepository) ListActive(ctx context.Context) ([]*model.HeroSlide, error) {
	query := `SELECT * FROM hero_slide WHERE is_active = true ORDER BY sort_order ASC`
	return r.list(ctx, query)
}

// List returns all slides in display order, active or not
func (r *HeroSlideRepository) List(ctx context.Context) ([]*model.HeroSlide, error) {
	query := `SELECT * FROM hero_slide ORDER BY sort_order ASC`
	return r.list(ctx, query)
}

func (r *HeroSlideRepository) list(ctx context.Context, query string) ([]*model.HeroSlide, error) {
	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	records := unwrapMany(result)
	slides := make([]*model.HeroSlide, 0, len(records))
	for _, data := range records {
		slides = append(slides, parseHeroSlide(data))
	}
	return slides, nil
}

// GetByID retrieves a slide by record id. Returns nil without error when absent.
func (r *HeroSlideRepository) GetByID(ctx context.Context, id string) (*model.HeroSlide, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := unwrapOne(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return parseHeroSlide(data), nil
}

// Update applies a partial update; nil fields are left untouched
func (r *HeroSlideRepository) Update(ctx context.Context, id string, req *model.UpdateHeroSlideRequest) (*model.HeroSlide, error) {
	sets := []string{"updated_on = time::now()"}
	vars := map[string]interface{}{"id": id}

	if req.Title != nil {
		sets = append(sets, "title = $title")
		vars["title"] = *req.Title
	}
	if req.Order != nil {
		sets = append(sets, "sort_order = $sort_order")
		vars["sort_order"] = *req.Order
	}
	if req.IsActive != nil {
		sets = append(sets, "is_active = $is_active")
		vars["is_active"] = *req.IsActive
	}

	query := `UPDATE type::record($id) SET ` + strings.Join(sets, ", ") + ` RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := unwrapOne(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return parseHeroSlide(data), nil
}

// Delete removes a slide by id
func (r *HeroSlideRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": id})
}

func parseHeroSlide(data map[string]interface{}) *model.HeroSlide {
	return &model.HeroSlide{
		ID:           extractRecordID(data["id"]),
		ImageURL:     getString(data, "image_url"),
		CloudinaryID: getString(data, "cloudinary_id"),
		Title:        getString(data, "title"),
		Order:        getInt(data, "sort_order"),
		IsActive:     getBool(data, "is_active"),
		CreatedOn:    getTime(data, "created_on"),
		UpdatedOn:    getTime(data, "updated_on"),
	}
}
