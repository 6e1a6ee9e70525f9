package service

import (
	"context"
	"strings"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
)

// BlogRepository defines the interface for blog storage
type BlogRepository interface {
	Create(ctx context.Context, blog *model.Blog) error
	List(ctx context.Context, filter model.BlogFilter) ([]*model.Blog, error)
	Count(ctx context.Context, filter model.BlogFilter) (int, error)
	GetByID(ctx context.Context, id string) (*model.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*model.Blog, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Update(ctx context.Context, id string, title, slug, content, excerpt, coverImage *string, published *bool) (*model.Blog, error)
	Delete(ctx context.Context, id string) error
}

// defaultBlogPageSize matches the public listing default
const defaultBlogPageSize = 10

// BlogService handles blog posts
type BlogService struct {
	blogRepo BlogRepository
}

// BlogServiceConfig holds configuration for the blog service
type BlogServiceConfig struct {
	BlogRepo BlogRepository
}

// NewBlogService creates a new blog service
func NewBlogService(cfg BlogServiceConfig) *BlogService {
	return &BlogService{blogRepo: cfg.BlogRepo}
}

// List returns one page of posts, newest first
func (s *BlogService) List(ctx context.Context, filter model.BlogFilter) (*model.BlogPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultBlogPageSize
	}
	if filter.Limit > model.MaxTopicPageSize {
		filter.Limit = model.MaxTopicPageSize
	}

	blogs, err := s.blogRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.blogRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &model.BlogPage{
		Blogs: blogs,
		Pagination: model.Pagination{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: total,
			Pages: pageCount(total, filter.Limit),
		},
	}, nil
}

// GetByID returns a post by record id
func (s *BlogService) GetByID(ctx context.Context, id string) (*model.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}
	return blog, nil
}

// GetBySlug returns a published post by slug. Slug lookup serves the
// public site, so drafts are indistinguishable from missing posts here;
// the back office reads drafts by id.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	blog, err := s.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if blog == nil || !blog.Published {
		return nil, ErrBlogNotFound
	}
	return blog, nil
}

// Create publishes a new post. The slug is derived from the title and a
// colliding slug rejects the post; published defaults to true when the
// request leaves it unset.
func (s *BlogService) Create(ctx context.Context, req *model.CreateBlogRequest) (*model.Blog, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	excerpt := strings.TrimSpace(req.Excerpt)

	if title == "" {
		return nil, ErrTitleRequired
	}
	if content == "" || excerpt == "" {
		return nil, ErrContentRequired
	}
	if len(excerpt) > model.MaxExcerptLength {
		excerpt = excerpt[:model.MaxExcerptLength]
	}

	slug := blogSlug(title)
	exists, err := s.blogRepo.SlugExists(ctx, slug, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrBlogTitleExists
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	blog := &model.Blog{
		Title:      title,
		Slug:       slug,
		Content:    content,
		Excerpt:    excerpt,
		CoverImage: req.CoverImage,
		Published:  published,
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// Update applies a partial update. The slug is regenerated only when the
// title changes, and the new slug must not collide with another post.
func (s *BlogService) Update(ctx context.Context, id string, req *model.UpdateBlogRequest) (*model.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}

	var title, slug *string
	if req.Title != nil && strings.TrimSpace(*req.Title) != blog.Title {
		newTitle := strings.TrimSpace(*req.Title)
		if newTitle == "" {
			return nil, ErrTitleRequired
		}
		newSlug := blogSlug(newTitle)

		exists, err := s.blogRepo.SlugExists(ctx, newSlug, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrBlogTitleExists
		}
		title = &newTitle
		slug = &newSlug
	}

	updated, err := s.blogRepo.Update(ctx, id, title, slug, req.Content, req.Excerpt, req.CoverImage, req.Published)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrBlogNotFound
	}
	return updated, nil
}

// Delete removes a post
func (s *BlogService) Delete(ctx context.Context, id string) error {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if blog == nil {
		return ErrBlogNotFound
	}
	return s.blogRepo.Delete(ctx, id)
}
