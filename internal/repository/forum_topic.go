package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/database"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
)

// TopicRepository handles forum topic data access
type TopicRepository struct {
	db database.Database
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(db database.Database) *TopicRepository {
	return &TopicRepository{db: db}
}

// Create creates a new topic authored by the given member
func (r *TopicRepository) Create(ctx context.Context, topic *model.ForumTopic, authorID string) error {
	query := `
		CREATE forum_topic CONTENT {
			title: $title,
			slug: $slug,
			content: $content,
			author: type::record($author),
			category: $category,
			subcategory: $subcategory,
			views: 0,
			replies_count: 0,
			is_pinned: false,
			is_locked: false,
			last_reply_at: time::now(),
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"title":       topic.Title,
		"slug":        topic.Slug,
		"content":     topic.Content,
		"author":      authorID,
		"category":    topic.Category,
		"subcategory": topic.Subcategory,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return err
	}

	data, err := unwrapOne(result)
	if err != nil {
		return err
	}

	created := parseTopic(data)
	topic.ID = created.ID
	topic.Author = created.Author
	topic.LastReplyAt = created.LastReplyAt
	topic.CreatedOn = created.CreatedOn
	topic.UpdatedOn = created.UpdatedOn
	return nil
}

// List returns one page of topics matching the filter, pinned topics first,
// then most recent reply activity. Authors and last repliers come back
// populated.
func (r *TopicRepository) List(ctx context.Context, filter model.TopicFilter) ([]*model.ForumTopic, error) {
	var conds []string
	vars := map[string]interface{}{
		"limit": filter.Limit,
		"start": (filter.Page - 1) * filter.Limit,
	}

	if filter.Category != "" {
		conds = append(conds, "category = $category")
		vars["category"] = filter.Category
	}
	if filter.Subcategory != "" {
		conds = append(conds, "subcategory = $subcategory")
		vars["subcategory"] = filter.Subcategory
	}

	query := `SELECT * FROM forum_topic`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY is_pinned DESC, last_reply_at DESC LIMIT $limit START $start FETCH author, last_reply_by`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := unwrapMany(result)
	topics := make([]*model.ForumTopic, 0, len(records))
	for _, data := range records {
		topics = append(topics, parseTopic(data))
	}
	return topics, nil
}

// Count returns the number of topics matching the filter
func (r *TopicRepository) Count(ctx context.Context, filter model.TopicFilter) (int, error) {
	var conds []string
	vars := map[string]interface{}{}

	if filter.Category != "" {
		conds = append(conds, "category = $category")
		vars["category"] = filter.Category
	}
	if filter.Subcategory != "" {
		conds = append(conds, "subcategory = $subcategory")
		vars["subcategory"] = filter.Subcategory
	}

	query := `SELECT count() FROM forum_topic`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return extractCount(result), nil
}

// GetBySlugIncrementingViews bumps the view counter and returns the
// updated topic with author and last replier populated. Every fetch
// counts; there is no per-viewer deduplication. FETCH only exists on
// SELECT, so the increment and the read are separate statements.
func (r *TopicRepository) GetBySlugIncrementingViews(ctx context.Context, slug string) (*model.ForumTopic, error) {
	vars := map[string]interface{}{"slug": slug}

	if err := r.db.Execute(ctx, `UPDATE forum_topic SET views += 1 WHERE slug = $slug`, vars); err != nil {
		return nil, err
	}

	query := `SELECT * FROM forum_topic WHERE slug = $slug LIMIT 1 FETCH author, last_reply_by`
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
	return parseTopic(data), nil
}

// GetByID retrieves a topic by record id. Returns nil without error when absent.
func (r *TopicRepository) GetByID(ctx context.Context, id string) (*model.ForumTopic, error) {
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
	return parseTopic(data), nil
}

// RecordReply bumps the topic's reply tally and stamps the last reply
// metadata in a single document update.
func (r *TopicRepository) RecordReply(ctx context.Context, topicID, authorID string) error {
	query := `
		UPDATE type::record($id) SET
			replies_count += 1,
			last_reply_at = time::now(),
			last_reply_by = type::record($author),
			updated_on = time::now()
	`

	vars := map[string]interface{}{
		"id":     topicID,
		"author": authorID,
	}
	return r.db.Execute(ctx, query, vars)
}

// SetModeration updates the pin/lock flags; nil fields are left untouched
func (r *TopicRepository) SetModeration(ctx context.Context, topicID string, isPinned, isLocked *bool) error {
	sets := []string{"updated_on = time::now()"}
	vars := map[string]interface{}{"id": topicID}

	if isPinned != nil {
		sets = append(sets, "is_pinned = $pinned")
		vars["pinned"] = *isPinned
	}
	if isLocked != nil {
		sets = append(sets, "is_locked = $locked")
		vars["locked"] = *isLocked
	}

	query := `UPDATE type::record($id) SET ` + strings.Join(sets, ", ")
	return r.db.Execute(ctx, query, vars)
}

func parseTopic(data map[string]interface{}) *model.ForumTopic {
	return &model.ForumTopic{
		ID:           extractRecordID(data["id"]),
		Title:        getString(data, "title"),
		Slug:         getString(data, "slug"),
		Content:      getString(data, "content"),
		Author:       parseUserSummary(data["author"]),
		Category:     getString(data, "category"),
		Subcategory:  getString(data, "subcategory"),
		Views:        getInt(data, "views"),
		RepliesCount: getInt(data, "replies_count"),
		IsPinned:     getBool(data, "is_pinned"),
		IsLocked:     getBool(data, "is_locked"),
		LastReplyAt:  getTime(data, "last_reply_at"),
		LastReplyBy:  parseUserSummary(data["last_reply_by"]),
		CreatedOn:    getTime(data, "created_on"),
		UpdatedOn:    getTime(data, "updated_on"),
	}
}
