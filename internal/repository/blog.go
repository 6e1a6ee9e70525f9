package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/database"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
)

// BlogRepository handles blog post data access
type BlogRepository struct {
	db database.Database
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db database.Database) *BlogRepository {
	return &BlogRepository{db: db}
}

// Create creates a new blog post
func (r *BlogRepository) Create(ctx context.Context, blog *model.Blog) error {
	query := `
		CREATE blog CONTENT {
			title: $title,
			slug: $slug,
			content: $content,
			excerpt: $excerpt,
			cover_image: $cover_image,
			published: $published,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"title":       blog.Title,
		"slug":        blog.Slug,
		"content":     blog.Content,
		"excerpt":     blog.Excerpt,
		"cover_image": blog.CoverImage,
		"published":   blog.Published,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return err
	}

	data, err := unwrapOne(result)
	if err != nil {
		return err
	}

	created := parseBlog(data)
	blog.ID = created.ID
	blog.CreatedOn = created.CreatedOn
	blog.UpdatedOn = created.UpdatedOn
	return nil
}

// List returns one page of posts, newest first
func (r *BlogRepository) List(ctx context.Context, filter model.BlogFilter) ([]*model.Blog, error) {
	query := `SELECT * FROM blog`
	vars := map[string]interface{}{
		"limit": filter.Limit,
		"start": (filter.Page - 1) * filter.Limit,
	}

	if filter.PublishedOnly {
		query += ` WHERE published = true`
	}
	query += ` ORDER BY created_on DESC LIMIT $limit START $start`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := unwrapMany(result)
	blogs := make([]*model.Blog, 0, len(records))
	for _, data := range records {
		blogs = append(blogs, parseBlog(data))
	}
	return blogs, nil
}

// Count returns the number of posts matching the filter
func (r *BlogRepository) Count(ctx context.Context, filter model.BlogFilter) (int, error) {
	query := `SELECT count() FROM blog`
	if filter.PublishedOnly {
		query += ` WHERE published = true`
	}
	query += ` GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return extractCount(result), nil
}

// GetByID retrieves a post by record id. Returns nil without error when absent.
func (r *BlogRepository) GetByID(ctx context.Context, id string) (*model.Blog, error) {
	query := `SELECT * FROM type::record($id)`
	return r.getOne(ctx, query, map[string]interface{}{"id": id})
}

// GetBySlug retrieves a post by slug
func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	query := `SELECT * FROM blog WHERE slug = $slug LIMIT 1`
	return r.getOne(ctx, query, map[string]interface{}{"slug": slug})
}

func (r *BlogRepository) getOne(ctx context.Context, query string, vars map[string]interface{}) (*model.Blog, error) {
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
	return parseBlog(data), nil
}

// SlugExists reports whether another post already uses the slug. The
// excludeID lets updates skip the post being edited.
func (r *BlogRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	query := `SELECT count() FROM blog WHERE slug = $slug`
	vars := map[string]interface{}{"slug": slug}

	if excludeID != "" {
		query += ` AND id != type::record($exclude)`
		vars["exclude"] = excludeID
	}
	query += ` GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return extractCount(result) > 0, nil
}

// Update applies a partial update; nil fields are left untouched
func (r *BlogRepository) Update(ctx context.Context, id string, title, slug, content, excerpt, coverImage *string, published *bool) (*model.Blog, error) {
	sets := []string{"updated_on = time::now()"}
	vars := map[string]interface{}{"id": id}

	if title != nil {
		sets = append(sets, "title = $title")
		vars["title"] = *title
	}
	if slug != nil {
		sets = append(sets, "slug = $slug")
		vars["slug"] = *slug
	}
	if content != nil {
		sets = append(sets, "content = $content")
		vars["content"] = *content
	}
	if excerpt != nil {
		sets = append(sets, "excerpt = $excerpt")
		vars["excerpt"] = *excerpt
	}
	if coverImage != nil {
		sets = append(sets, "cover_image = $cover_image")
		vars["cover_image"] = *coverImage
	}
	if published != nil {
		sets = append(sets, "published = $published")
		vars["published"] = *published
	}

	query := `UPDATE type::record($id) SET ` + strings.Join(sets, ", ") + ` RETURN AFTER`
	return r.getOne(ctx, query, vars)
}

// Delete removes a post by id
func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": id})
}

func parseBlog(data map[string]interface{}) *model.Blog {
	return &model.Blog{
		ID:         extractRecordID(data["id"]),
		Title:      getString(data, "title"),
		Slug:       getString(data, "slug"),
		Content:    getString(data, "content"),
		Excerpt:    getString(data, "excerpt"),
		CoverImage: getString(data, "cover_image"),
		Published:  getBool(data, "published"),
		CreatedOn:  getTime(data, "created_on"),
		UpdatedOn:  getTime(data, "updated_on"),
	}
}
