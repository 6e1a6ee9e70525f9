package repository

import (
	"context"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/database"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
)

// ReplyRepository handles forum reply data access
type ReplyRepository struct {
	db database.Database
}

// NewReplyRepository creates a new reply repository
func NewReplyRepository(db database.Database) *ReplyRepository {
	return &ReplyRepository{db: db}
}

// Create creates a new reply on a topic. The returned reply carries the
// fetched author summary so handlers can render it without a second query.
// FETCH only exists on SELECT, so the create and the read are separate
// statements.
func (r *ReplyRepository) Create(ctx context.Context, reply *model.ForumReply, authorID string) error {
	query := `
		CREATE forum_reply CONTENT {
			content: $content,
			author: type::record($author),
			topic: type::record($topic),
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"content": reply.Content,
		"author":  authorID,
		"topic":   reply.TopicID,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return err
	}

	data, err := unwrapOne(result)
	if err != nil {
		return err
	}

	fetched, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id) FETCH author`, map[string]interface{}{
		"id": extractRecordID(data["id"]),
	})
	if err == nil {
		if full, ferr := unwrapOne(fetched); ferr == nil {
			data = full
		}
	}

	created := parseReply(data)
	reply.ID = created.ID
	reply.Author = created.Author
	reply.CreatedOn = created.CreatedOn
	return nil
}

// ListByTopic returns all replies for a topic in ascending creation order
func (r *ReplyRepository) ListByTopic(ctx context.Context, topicID string) ([]*model.ForumReply, error) {
	query := `SELECT * FROM forum_reply WHERE topic = type::record($topic) ORDER BY created_on ASC FETCH author`
	vars := map[string]interface{}{"topic": topicID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := unwrapMany(result)
	replies := make([]*model.ForumReply, 0, len(records))
	for _, data := range records {
		replies = append(replies, parseReply(data))
	}
	return replies, nil
}

func parseReply(data map[string]interface{}) *model.ForumReply {
	return &model.ForumReply{
		ID:        extractRecordID(data["id"]),
		Content:   getString(data, "content"),
		Author:    parseUserSummary(data["author"]),
		TopicID:   extractRecordID(data["topic"]),
		CreatedOn: getTime(data, "created_on"),
	}
}
