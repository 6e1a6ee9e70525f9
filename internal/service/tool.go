package service

import (
	"context"
	"strings"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
)

// ToolRepository defines the interface for tools directory storage
type ToolRepository interface {
	Create(ctx context.Context, tool *model.Tool) error
	List(ctx context.Context, filter model.ToolFilter) ([]*model.Tool, error)
	GetByID(ctx context.Context, id string) (*model.Tool, error)
	Update(ctx context.Context, id string, req *model.UpdateToolRequest) (*model.Tool, error)
	Delete(ctx context.Context, id string) error
}

// ToolService handles the curated security tools directory
type ToolService struct {
	toolRepo ToolRepository
}

// ToolServiceConfig holds configuration for the tool service
type ToolServiceConfig struct {
	ToolRepo ToolRepository
}

// NewToolService creates a new tool service
func NewToolService(cfg ToolServiceConfig) *ToolService {
	return &ToolService{toolRepo: cfg.ToolRepo}
}

// List returns tools matching the filter. An unknown category filter is
// rejected rather than silently matching nothing.
func (s *ToolService) List(ctx context.Context, filter model.ToolFilter) ([]*model.Tool, error) {
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, ErrInvalidToolCategory
	}
	return s.toolRepo.List(ctx, filter)
}

// GetByID returns a tool by record id
func (s *ToolService) GetByID(ctx context.Context, id string) (*model.Tool, error) {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, ErrToolNotFound
	}
	return tool, nil
}

// Create adds a tool to the directory
func (s *ToolService) Create(ctx context.Context, req *model.CreateToolRequest) (*model.Tool, error) {
	name := strings.TrimSpace(req.Name)
	link := strings.TrimSpace(req.ExternalLink)

	if name == "" {
		return nil, ErrToolNameRequired
	}
	if link == "" {
		return nil, ErrToolLinkRequired
	}
	if !req.Category.IsValid() {
		return nil, ErrInvalidToolCategory
	}

	tool := &model.Tool{
		Name:         name,
		Description:  strings.TrimSpace(req.Description),
		Category:     req.Category,
		ExternalLink: link,
		Icon:         req.Icon,
		Featured:     req.Featured,
	}

	if err := s.toolRepo.Create(ctx, tool); err != nil {
		return nil, err
	}
	return tool, nil
}

// Update applies a partial update to a tool
func (s *ToolService) Update(ctx context.Context, id string, req *model.UpdateToolRequest) (*model.Tool, error) {
	if req.Category != nil && !req.Category.IsValid() {
		return nil, ErrInvalidToolCategory
	}

	tool, err := s.toolRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, ErrToolNotFound
	}
	return tool, nil
}

// Delete removes a tool from the directory
func (s *ToolService) Delete(ctx context.Context, id string) error {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tool == nil {
		return ErrToolNotFound
	}
	return s.toolRepo.Delete(ctx, id)
}
