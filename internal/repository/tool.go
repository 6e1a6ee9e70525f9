package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/database"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
)

// ToolRepository handles tools directory data access
type ToolRepository struct {
	db database.Database
}

// NewToolRepository creates a new tool repository
func NewToolRepository(db database.Database) *ToolRepository {
	return &ToolRepository{db: db}
}

// Create adds a new tool entry
func (r *ToolRepository) Create(ctx context.Context, tool *model.Tool) error {
	query := `
		CREATE tool CONTENT {
			name: $name,
			description: $description,
			category: $category,
			external_link: $external_link,
			icon: $icon,
			featured: $featured,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":          tool.Name,
		"description":   tool.Description,
		"category":      string(tool.Category),
		"external_link": tool.ExternalLink,
		"icon":          tool.Icon,
		"featured":      tool.Featured,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return err
	}

	data, err := unwrapOne(result)
	if err != nil {
		return err
	}

	created := parseTool(data)
	tool.ID = created.ID
	tool.CreatedOn = created.CreatedOn
	tool.UpdatedOn = created.UpdatedOn
	return nil
}

// List returns tools matching the filter, featured entries first, then
// alphabetical by name.
func (r *ToolRepository) List(ctx context.Context, filter model.ToolFilter) ([]*model.Tool, error) {
	var conds []string
	vars := map[string]interface{}{}

	if filter.Category != "" {
		conds = append(conds, "category = $category")
		vars["category"] = string(filter.Category)
	}
	if filter.FeaturedOnly {
		conds = append(conds, "featured = true")
	}

	query := `SELECT * FROM tool`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY featured DESC, name ASC`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := unwrapMany(result)
	tools := make([]*model.Tool, 0, len(records))
	for _, data := range records {
		tools = append(tools, parseTool(data))
	}
	return tools, nil
}

// GetByID retrieves a tool by record id. Returns nil without error when absent.
func (r *ToolRepository) GetByID(ctx context.Context, id string) (*model.Tool, error) {
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
	return parseTool(data), nil
}

// Update applies a partial update; nil fields are left untouched
func (r *ToolRepository) Update(ctx context.Context, id string, req *model.UpdateToolRequest) (*model.Tool, error) {
	sets := []string{"updated_on = time::now()"}
	vars := map[string]interface{}{"id": id}

	if req.Name != nil {
		sets = append(sets, "name = $name")
		vars["name"] = *req.Name
	}
	if req.Description != nil {
		sets = append(sets, "description = $description")
		vars["description"] = *req.Description
	}
	if req.Category != nil {
		sets = append(sets, "category = $category")
		vars["category"] = string(*req.Category)
	}
	if req.ExternalLink != nil {
		sets = append(sets, "external_link = $external_link")
		vars["external_link"] = *req.ExternalLink
	}
	if req.Icon != nil {
		sets = append(sets, "icon = $icon")
		vars["icon"] = *req.Icon
	}
	if req.Featured != nil {
		sets = append(sets, "featured = $featured")
		vars["featured"] = *req.Featured
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
	return parseTool(data), nil
}

// Delete removes a tool by id
func (r *ToolRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": id})
}

func parseTool(data map[string]interface{}) *model.Tool {
	return &model.Tool{
		ID:           extractRecordID(data["id"]),
		Name:         getString(data, "name"),
		Description:  getString(data, "description"),
		Category:     model.ToolCategory(getString(data, "category")),
		ExternalLink: getString(data, "external_link"),
		Icon:         getString(data, "icon"),
		Featured:     getBool(data, "featured"),
		CreatedOn:    getTime(data, "created_on"),
		UpdatedOn:    getTime(data, "updated_on"),
	}
}
