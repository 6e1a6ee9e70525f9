package service

import (
	"context"
	"errors"
	"testing"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
)

type mockToolRepo struct {
	CreateFunc  func(ctx context.Context, tool *model.Tool) error
	ListFunc    func(ctx context.Context, filter model.ToolFilter) ([]*model.Tool, error)
	GetByIDFunc func(ctx context.Context, id string) (*model.Tool, error)
	UpdateFunc  func(ctx context.Context, id string, req *model.UpdateToolRequest) (*model.Tool, error)
	DeleteFunc  func(ctx context.Context, id string) error
}

func (m *mockToolRepo) Create(ctx context.Context, tool *model.Tool) error {
	return m.CreateFunc(ctx, tool)
}

func (m *mockToolRepo) List(ctx context.Context, filter model.ToolFilter) ([]*model.Tool, error) {
	return m.ListFunc(ctx, filter)
}

func (m *mockToolRepo) GetByID(ctx context.Context, id string) (*model.Tool, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockToolRepo) Update(ctx context.Context, id string, req *model.UpdateToolRequest) (*model.Tool, error) {
	return m.UpdateFunc(ctx, id, req)
}

func (m *mockToolRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

func newToolService(repo *mockToolRepo) *ToolService {
	return NewToolService(ToolServiceConfig{ToolRepo: repo})
}

func TestToolService_List_RejectsUnknownCategory(t *testing.T) {
	svc := newToolService(&mockToolRepo{})

	_, err := svc.List(context.Background(), model.ToolFilter{Category: "Gardening"})
	if !errors.Is(err, ErrInvalidToolCategory) {
		t.Errorf("expected ErrInvalidToolCategory, got %v", err)
	}
}

func TestToolService_List_AcceptsValidCategories(t *testing.T) {
	repo := &mockToolRepo{
		ListFunc: func(ctx context.Context, filter model.ToolFilter) ([]*model.Tool, error) {
			return []*model.Tool{}, nil
		},
	}
	svc := newToolService(repo)

	for _, category := range model.ToolCategories {
		if _, err := svc.List(context.Background(), model.ToolFilter{Category: category}); err != nil {
			t.Errorf("category %q: unexpected error: %v", category, err)
		}
	}
}

func TestToolService_Create_Validation(t *testing.T) {
	svc := newToolService(&mockToolRepo{})

	tests := []struct {
		name    string
		req     *model.CreateToolRequest
		wantErr error
	}{
		{
			name:    "missing name",
			req:     &model.CreateToolRequest{ExternalLink: "https://nmap.org", Category: model.ToolCategoryScanning},
			wantErr: ErrToolNameRequired,
		},
		{
			name:    "missing link",
			req:     &model.CreateToolRequest{Name: "Nmap", Category: model.ToolCategoryScanning},
			wantErr: ErrToolLinkRequired,
		},
		{
			name:    "invalid category",
			req:     &model.CreateToolRequest{Name: "Nmap", ExternalLink: "https://nmap.org", Category: "Misc"},
			wantErr: ErrInvalidToolCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestToolService_Create_Success(t *testing.T) {
	repo := &mockToolRepo{
		CreateFunc: func(ctx context.Context, tool *model.Tool) error {
			tool.ID = "tool:1"
			return nil
		},
	}
	svc := newToolService(repo)

	tool, err := svc.Create(context.Background(), &model.CreateToolRequest{
		Name:         "  Nmap  ",
		Description:  " Network scanner ",
		Category:     model.ToolCategoryScanning,
		ExternalLink: "https://nmap.org",
		Featured:     true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tool.Name != "Nmap" {
		t.Errorf("expected trimmed name, got %q", tool.Name)
	}
	if tool.Description != "Network scanner" {
		t.Errorf("expected trimmed description, got %q", tool.Description)
	}
	if !tool.Featured {
		t.Error("expected featured flag preserved")
	}
}

func TestToolService_Update_InvalidCategory(t *testing.T) {
	svc := newToolService(&mockToolRepo{})

	bad := model.ToolCategory("Misc")
	_, err := svc.Update(context.Background(), "tool:1", &model.UpdateToolRequest{Category: &bad})
	if !errors.Is(err, ErrInvalidToolCategory) {
		t.Errorf("expected ErrInvalidToolCategory, got %v", err)
	}
}

func TestToolService_Update_NotFound(t *testing.T) {
	repo := &mockToolRepo{
		UpdateFunc: func(ctx context.Context, id string, req *model.UpdateToolRequest) (*model.Tool, error) {
			return nil, nil
		},
	}
	svc := newToolService(repo)

	_, err := svc.Update(context.Background(), "tool:missing", &model.UpdateToolRequest{})
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("expected ErrToolNotFound, got %v", err)
	}
}

func TestToolService_Delete_NotFound(t *testing.T) {
	repo := &mockToolRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*model.Tool, error) {
			return nil, nil
		},
	}
	svc := newToolService(repo)

	err := svc.Delete(context.Background(), "tool:missing")
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("expected ErrToolNotFound, got %v", err)
	}
}
