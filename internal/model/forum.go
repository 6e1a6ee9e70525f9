package model

import "time"

// ForumCategory is a top-level forum section. The catalog is static
// reference data: it is seeded on first read and has no mutating endpoint.
type ForumCategory struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description,omitempty"`
	Icon          string        `json:"icon"`
	Color         string        `json:"color"`
	Order         int           `json:"order"`
	Subcategories []SubCategory `json:"subcategories"`
	CreatedOn     time.Time     `json:"created_on"`
}

// SubCategory is embedded in its parent category. TopicsCount is maintained
// by targeted increments on topic creation, not recomputed on read.
type SubCategory struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	TopicsCount int    `json:"topics_count"`
}

// FindSubcategory returns the embedded subcategory with the given slug.
func (c *ForumCategory) FindSubcategory(slug string) (SubCategory, bool) {
	for _, s := range c.Subcategories {
		if s.Slug == slug {
			return s, true
		}
	}
	return SubCategory{}, false
}

// ForumTopic is a discussion thread. Category and subcategory are stored as
// denormalized slugs rather than record references.
type ForumTopic struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Slug         string       `json:"slug"`
	Content      string       `json:"content"`
	Author       *UserSummary `json:"author,omitempty"`
	Category     string       `json:"category"`
	Subcategory  string       `json:"subcategory"`
	Views        int          `json:"views"`
	RepliesCount int          `json:"replies_count"`
	IsPinned     bool         `json:"is_pinned"`
	IsLocked     bool         `json:"is_locked"`
	LastReplyAt  time.Time    `json:"last_reply_at"`
	LastReplyBy  *UserSummary `json:"last_reply_by,omitempty"`
	CreatedOn    time.Time    `json:"created_on"`
	UpdatedOn    time.Time    `json:"updated_on"`
}

// ForumReply is a single post inside a topic, ordered by creation time.
type ForumReply struct {
	ID        string       `json:"id"`
	Content   string       `json:"content"`
	Author    *UserSummary `json:"author,omitempty"`
	TopicID   string       `json:"topic_id"`
	CreatedOn time.Time    `json:"created_on"`
}

// TopicDetail is the topic page payload: the (view-incremented) topic with
// its author's profile and all replies in ascending order.
type TopicDetail struct {
	Topic         *ForumTopic   `json:"topic"`
	AuthorProfile *UserProfile  `json:"author_profile,omitempty"`
	Replies       []*ForumReply `json:"replies"`
}

// TopicPage is a paginated topic listing.
type TopicPage struct {
	Topics     []*ForumTopic `json:"topics"`
	Pagination Pagination    `json:"pagination"`
}

// Pagination describes a skip/limit result window.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Topic constraints
const (
	MaxTopicTitleLength  = 200
	MaxTopicSlugLength   = 50
	DefaultTopicPageSize = 20
	MaxTopicPageSize     = 100
	ForumCategoryCount   = 4
)

// TopicFilter is the typed query specification for topic listings. Only the
// enumerated fields are recognized; arbitrary filter keys are not accepted.
type TopicFilter struct {
	Category    string
	Subcategory string
	Page        int
	Limit       int
}

// CreateTopicRequest represents a request to open a new topic.
type CreateTopicRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

// CreateReplyRequest represents a request to reply to a topic.
type CreateReplyRequest struct {
	Content string `json:"content"`
	TopicID string `json:"topic_id"`
}

// ModerateTopicRequest toggles the pin/lock flags on a topic. Locked topics
// reject new replies; no further moderation semantics are implied.
type ModerateTopicRequest struct {
	IsPinned *bool `json:"is_pinned,omitempty"`
	IsLocked *bool `json:"is_locked,omitempty"`
}
