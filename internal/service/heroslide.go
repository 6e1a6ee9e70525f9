package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/uploader"
)

// HeroSlideRepository defines the interface for carousel slide storage
type HeroSlideRepository interface {
	Create(ctx context.Context, slide *model.HeroSlide) error
	ListActive(ctx context.Context) ([]*model.HeroSlide, error)
	List(ctx context.Context) ([]*model.HeroSlide, error)
	GetByID(ctx context.Context, id string) (*model.HeroSlide, error)
	Update(ctx context.Context, id string, req *model.UpdateHeroSlideRequest) (*model.HeroSlide, error)
	Delete(ctx context.Context, id string) error
}

// HeroSlideService handles the homepage carousel. Slide images live in the
// external image store; the database carries the delivery URL and the
// public id needed to delete the asset.
type HeroSlideService struct {
	slideRepo HeroSlideRepository
	images    uploader.ImageStore
	logger    *slog.Logger
}

// HeroSlideServiceConfig holds configuration for the hero slide service
type HeroSlideServiceConfig struct {
	SlideRepo HeroSlideRepository
	Images    uploader.ImageStore
	Logger    *slog.Logger
}

// NewHeroSlideService creates a new hero slide service
func NewHeroSlideService(cfg HeroSlideServiceConfig) *HeroSlideService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &HeroSlideService{
		slideRepo: cfg.SlideRepo,
		images:    cfg.Images,
		logger:    logger,
	}
}

// ListActive returns the active slides in display order, for the public site
func (s *HeroSlideService) ListActive(ctx context.Context) ([]*model.HeroSlide, error) {
	return s.slideRepo.ListActive(ctx)
}

// List returns every slide in display order, for the back office
func (s *HeroSlideService) List(ctx context.Context) ([]*model.HeroSlide, error) {
	return s.slideRepo.List(ctx)
}

// Create uploads the image and stores the slide. A failed database write
// after a successful upload orphans the asset, so it is removed again on
// that path.
func (s *HeroSlideService) Create(ctx context.Context, req *model.CreateHeroSlideRequest) (*model.HeroSlide, error) {
	if strings.TrimSpace(req.Image) == "" {
		return nil, ErrImageRequired
	}
	if s.images == nil {
		return nil, ErrImageStoreNotConfigured
	}

	result, err := s.images.Upload(ctx, req.Image)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	slide := &model.HeroSlide{
		ImageURL:     result.URL,
		CloudinaryID: result.PublicID,
		Title:        strings.TrimSpace(req.Title),
		Order:        req.Order,
		IsActive:     true,
	}

	if err := s.slideRepo.Create(ctx, slide); err != nil {
		if delErr := s.images.Delete(ctx, result.PublicID); delErr != nil {
			s.logger.Warn("failed to remove orphaned image",
				"public_id", result.PublicID,
				"error", delErr)
		}
		return nil, err
	}
	return slide, nil
}

// Update applies a partial update to a slide's metadata. The image itself
// is immutable.
func (s *HeroSlideService) Update(ctx context.Context, id string, req *model.UpdateHeroSlideRequest) (*model.HeroSlide, error) {
	slide, err := s.slideRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if slide == nil {
		return nil, ErrSlideNotFound
	}
	return slide, nil
}

// Delete removes a slide and its stored image. The database row goes
// first; a failed image deletion is logged rather than resurrecting the
// slide.
func (s *HeroSlideService) Delete(ctx context.Context, id string) error {
	slide, err := s.slideRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if slide == nil {
		return ErrSlideNotFound
	}

	if err := s.slideRepo.Delete(ctx, id); err != nil {
		return err
	}

	if slide.CloudinaryID != "" && s.images != nil {
		if err := s.images.Delete(ctx, slide.CloudinaryID); err != nil {
			s.logger.Warn("failed to delete slide image",
				"public_id", slide.CloudinaryID,
				"error", err)
		}
	}
	return nil
}
