// Package uploader stores carousel images in Cloudinary and hands back the
// delivery URL plus the public id needed for later deletion.
package uploader

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	upapi "github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadResult carries the stored asset's delivery URL and public id
type UploadResult struct {
	URL      string
	PublicID string
}

// ImageStore uploads and deletes hosted images
type ImageStore interface {
	Upload(ctx context.Context, image string) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

// CloudinaryStore implements ImageStore against the Cloudinary API
type CloudinaryStore struct {
	client *cloudinary.Cloudinary
	folder string
}

// Config holds Cloudinary credentials
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// NewCloudinaryStore creates a new Cloudinary-backed image store
func NewCloudinaryStore(cfg Config) (*CloudinaryStore, error) {
	client, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	return &CloudinaryStore{client: client, folder: cfg.Folder}, nil
}

// Upload stores an image. The image may be a data URI, a remote URL, or a
// local file path; the Cloudinary SDK accepts all three.
func (s *CloudinaryStore) Upload(ctx context.Context, image string) (*UploadResult, error) {
	resp, err := s.client.Upload.Upload(ctx, image, upapi.UploadParams{
		Folder: s.folder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("failed to upload image: %s", resp.Error.Message)
	}

	return &UploadResult{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
	}, nil
}

// Delete removes a previously uploaded image by its public id
func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	_, err := s.client.Upload.Destroy(ctx, upapi.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}
