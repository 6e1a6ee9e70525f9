package repository

import (
	"context"
	"errors"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/database"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
)

// CategoryRepository handles forum category data access. Categories embed
// their subcategories as an array, mirroring the document layout.
type CategoryRepository struct {
	db database.Database
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db database.Database) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Count returns the number of category documents
func (r *CategoryRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT count() FROM forum_category GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return extractCount(result), nil
}

// CreateMany bulk-inserts categories, used to seed the default taxonomy
func (r *CategoryRepository) CreateMany(ctx context.Context, categories []*model.ForumCategory) error {
	query := `
		CREATE forum_category CONTENT {
			name: $name,
			slug: $slug,
			description: $description,
			icon: $icon,
			color: $color,
			sort_order: $sort_order,
			subcategories: $subcategories,
			created_on: time::now()
		}
	`

	for _, c := range categories {
		subs := make([]map[string]interface{}, 0, len(c.Subcategories))
		for _, s := range c.Subcategories {
			subs = append(subs, map[string]interface{}{
				"name":         s.Name,
				"slug":         s.Slug,
				"description":  s.Description,
				"topics_count": s.TopicsCount,
			})
		}

		vars := map[string]interface{}{
			"name":          c.Name,
			"slug":          c.Slug,
			"description":   c.Description,
			"icon":          c.Icon,
			"color":         c.Color,
			"sort_order":    c.Order,
			"subcategories": subs,
		}

		if err := r.db.Execute(ctx, query, vars); err != nil {
			return err
		}
	}
	return nil
}

// List returns all categories ordered by their sort order
func (r *CategoryRepository) List(ctx context.Context) ([]*model.ForumCategory, error) {
	query := `SELECT * FROM forum_category ORDER BY sort_order ASC`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	records := unwrapMany(result)
	categories := make([]*model.ForumCategory, 0, len(records))
	for _, data := range records {
		categories = append(categories, parseCategory(data))
	}
	return categories, nil
}

// GetBySlug retrieves a category by slug. Returns nil without error when absent.
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*model.ForumCategory, error) {
	query := `SELECT * FROM forum_category WHERE slug = $slug LIMIT 1`
	vars := map[string]interface{}{"slug": slug}

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
	return parseCategory(data), nil
}

// IncrementSubcategoryTopics bumps the topic tally of the matching embedded
// subcategory element by one. The update targets the single array element
// whose slug matches, the document-store equivalent of a positional update.
func (r *CategoryRepository) IncrementSubcategoryTopics(ctx context.Context, categorySlug, subcategorySlug string) error {
	query := `
		UPDATE forum_category SET subcategories = subcategories.map(|$s|
			IF $s.slug = $sub THEN
				object::from_entries(array::concat(object::entries($s), [["topics_count", $s.topics_count + 1]]))
			ELSE
				$s
			END
		) WHERE slug = $category
	`

	vars := map[string]interface{}{
		"category": categorySlug,
		"sub":      subcategorySlug,
	}
	return r.db.Execute(ctx, query, vars)
}

func parseCategory(data map[string]interface{}) *model.ForumCategory {
	category := &model.ForumCategory{
		ID:          extractRecordID(data["id"]),
		Name:        getString(data, "name"),
		Slug:        getString(data, "slug"),
		Description: getString(data, "description"),
		Icon:        getString(data, "icon"),
		Color:       getString(data, "color"),
		Order:       getInt(data, "sort_order"),
		CreatedOn:   getTime(data, "created_on"),
	}

	if subs, ok := data["subcategories"].([]interface{}); ok {
		category.Subcategories = make([]model.SubCategory, 0, len(subs))
		for _, s := range subs {
			if m, ok := s.(map[string]interface{}); ok {
				category.Subcategories = append(category.Subcategories, model.SubCategory{
					Name:        getString(m, "name"),
					Slug:        getString(m, "slug"),
					Description: getString(m, "description"),
					TopicsCount: getInt(m, "topics_count"),
				})
			}
		}
	}

	return category
}
