package service

import (
	"context"
	"errors"
	"testing"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/uploader"
)

type mockSlideRepo struct {
	CreateFunc     func(ctx context.Context, slide *model.HeroSlide) error
	ListActiveFunc func(ctx context.Context) ([]*model.HeroSlide, error)
	ListFunc       func(ctx context.Context) ([]*model.HeroSlide, error)
	GetByIDFunc    func(ctx context.Context, id string) (*model.HeroSlide, error)
	UpdateFunc     func(ctx context.Context, id string, req *model.UpdateHeroSlideRequest) (*model.HeroSlide, error)
	DeleteFunc     func(ctx context.Context, id string) error
}

func (m *mockSlideRepo) Create(ctx context.Context, slide *model.HeroSlide) error {
	return m.CreateFunc(ctx, slide)
}

func (m *mockSlideRepo) ListActive(ctx context.Context) ([]*model.HeroSlide, error) {
	return m.ListActiveFunc(ctx)
}

func (m *mockSlideRepo) List(ctx context.Context) ([]*model.HeroSlide, error) {
	return m.ListFunc(ctx)
}

func (m *mockSlideRepo) GetByID(ctx context.Context, id string) (*model.HeroSlide, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockSlideRepo) Update(ctx context.Context, id string, req *model.UpdateHeroSlideRequest) (*model.HeroSlide, error) {
	return m.UpdateFunc(ctx, id, req)
}

func (m *mockSlideRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

type mockImageStore struct {
	UploadFunc func(ctx context.Context, image string) (*uploader.UploadResult, error)
	DeleteFunc func(ctx context.Context, publicID string) error
}

func (m *mockImageStore) Upload(ctx context.Context, image string) (*uploader.UploadResult, error) {
	return m.UploadFunc(ctx, image)
}

func (m *mockImageStore) Delete(ctx context.Context, publicID string) error {
	return m.DeleteFunc(ctx, publicID)
}

func newSlideService(repo *mockSlideRepo, images *mockImageStore) *HeroSlideService {
	return NewHeroSlideService(HeroSlideServiceConfig{
		SlideRepo: repo,
		Images:    images,
	})
}

func TestHeroSlideService_Create_Success(t *testing.T) {
	images := &mockImageStore{
		UploadFunc: func(ctx context.Context, image string) (*uploader.UploadResult, error) {
			return &uploader.UploadResult{
				URL:      "https://cdn.example.com/slide.png",
				PublicID: "redline-hero/slide",
			}, nil
		},
	}
	repo := &mockSlideRepo{
		CreateFunc: func(ctx context.Context, slide *model.HeroSlide) error {
			slide.ID = "hero_slide:1"
			return nil
		},
	}
	svc := newSlideService(repo, images)

	slide, err := svc.Create(context.Background(), &model.CreateHeroSlideRequest{
		Image: "data:image/png;base64,AAAA",
		Title: "Welcome",
		Order: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if slide.ImageURL != "https://cdn.example.com/slide.png" {
		t.Errorf("expected delivery URL from the image store, got %q", slide.ImageURL)
	}
	if slide.CloudinaryID != "redline-hero/slide" {
		t.Errorf("expected stored public id, got %q", slide.CloudinaryID)
	}
	if !slide.IsActive {
		t.Error("expected new slides to start active")
	}
}

func TestHeroSlideService_Create_MissingImage(t *testing.T) {
	svc := newSlideService(&mockSlideRepo{}, &mockImageStore{})

	_, err := svc.Create(context.Background(), &model.CreateHeroSlideRequest{Image: "  "})
	if !errors.Is(err, ErrImageRequired) {
		t.Errorf("expected ErrImageRequired, got %v", err)
	}
}

func TestHeroSlideService_Create_UploadFailure(t *testing.T) {
	images := &mockImageStore{
		UploadFunc: func(ctx context.Context, image string) (*uploader.UploadResult, error) {
			return nil, errors.New("network error")
		},
	}
	svc := newSlideService(&mockSlideRepo{}, images)

	_, err := svc.Create(context.Background(), &model.CreateHeroSlideRequest{Image: "data:image/png;base64,AAAA"})
	if !errors.Is(err, ErrUploadFailed) {
		t.Errorf("expected ErrUploadFailed, got %v", err)
	}
}

func TestHeroSlideService_Create_RemovesOrphanedUpload(t *testing.T) {
	deleted := ""
	images := &mockImageStore{
		UploadFunc: func(ctx context.Context, image string) (*uploader.UploadResult, error) {
			return &uploader.UploadResult{URL: "https://cdn.example.com/x.png", PublicID: "redline-hero/x"}, nil
		},
		DeleteFunc: func(ctx context.Context, publicID string) error {
			deleted = publicID
			return nil
		},
	}
	repo := &mockSlideRepo{
		CreateFunc: func(ctx context.Context, slide *model.HeroSlide) error {
			return errors.New("write failed")
		},
	}
	svc := newSlideService(repo, images)

	_, err := svc.Create(context.Background(), &model.CreateHeroSlideRequest{Image: "data:image/png;base64,AAAA"})
	if err == nil {
		t.Fatal("expected error from failed database write")
	}
	if deleted != "redline-hero/x" {
		t.Errorf("expected the uploaded image removed, got delete of %q", deleted)
	}
}

func TestHeroSlideService_Create_NoImageStore(t *testing.T) {
	repo := &mockSlideRepo{
		CreateFunc: func(ctx context.Context, slide *model.HeroSlide) error {
			t.Error("slide should not be stored without an image store")
			return nil
		},
	}
	svc := NewHeroSlideService(HeroSlideServiceConfig{SlideRepo: repo})

	_, err := svc.Create(context.Background(), &model.CreateHeroSlideRequest{Image: "data:image/png;base64,AAAA"})
	if !errors.Is(err, ErrImageStoreNotConfigured) {
		t.Errorf("expected ErrImageStoreNotConfigured, got %v", err)
	}
}

func TestHeroSlideService_Delete_NoImageStore(t *testing.T) {
	repo := &mockSlideRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*model.HeroSlide, error) {
			return &model.HeroSlide{ID: id, CloudinaryID: "redline-hero/old"}, nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			return nil
		},
	}
	svc := NewHeroSlideService(HeroSlideServiceConfig{SlideRepo: repo})

	if err := svc.Delete(context.Background(), "hero_slide:1"); err != nil {
		t.Errorf("expected the row deleted and the image skipped, got %v", err)
	}
}

func TestHeroSlideService_Delete_RemovesImage(t *testing.T) {
	deleted := ""
	images := &mockImageStore{
		DeleteFunc: func(ctx context.Context, publicID string) error {
			deleted = publicID
			return nil
		},
	}
	repo := &mockSlideRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*model.HeroSlide, error) {
			return &model.HeroSlide{ID: id, CloudinaryID: "redline-hero/old"}, nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			return nil
		},
	}
	svc := newSlideService(repo, images)

	if err := svc.Delete(context.Background(), "hero_slide:1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "redline-hero/old" {
		t.Errorf("expected image deletion, got delete of %q", deleted)
	}
}

func TestHeroSlideService_Delete_ImageFailureDoesNotFail(t *testing.T) {
	images := &mockImageStore{
		DeleteFunc: func(ctx context.Context, publicID string) error {
			return errors.New("store unavailable")
		},
	}
	repo := &mockSlideRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*model.HeroSlide, error) {
			return &model.HeroSlide{ID: id, CloudinaryID: "redline-hero/old"}, nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			return nil
		},
	}
	svc := newSlideService(repo, images)

	if err := svc.Delete(context.Background(), "hero_slide:1"); err != nil {
		t.Errorf("expected image store failure to be logged, not returned: %v", err)
	}
}

func TestHeroSlideService_Delete_NotFound(t *testing.T) {
	repo := &mockSlideRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*model.HeroSlide, error) {
			return nil, nil
		},
	}
	svc := newSlideService(repo, &mockImageStore{})

	err := svc.Delete(context.Background(), "hero_slide:missing")
	if !errors.Is(err, ErrSlideNotFound) {
		t.Errorf("expected ErrSlideNotFound, got %v", err)
	}
}

func TestHeroSlideService_Update_NotFound(t *testing.T) {
	repo := &mockSlideRepo{
		UpdateFunc: func(ctx context.Context, id string, req *model.UpdateHeroSlideRequest) (*model.HeroSlide, error) {
			return nil, nil
		},
	}
	svc := newSlideService(repo, &mockImageStore{})

	_, err := svc.Update(context.Background(), "hero_slide:missing", &model.UpdateHeroSlideRequest{})
	if !errors.Is(err, ErrSlideNotFound) {
		t.Errorf("expected ErrSlideNotFound, got %v", err)
	}
}
