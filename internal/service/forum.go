package service

import (
	"context"
	"strings"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
)

// CategoryRepository defines the interface for forum category storage
type CategoryRepository interface {
	Count(ctx context.Context) (int, error)
	CreateMany(ctx context.Context, categories []*model.ForumCategory) error
	List(ctx context.Context) ([]*model.ForumCategory, error)
	GetBySlug(ctx context.Context, slug string) (*model.ForumCategory, error)
	IncrementSubcategoryTopics(ctx context.Context, categorySlug, subcategorySlug string) error
}

// TopicRepository defines the interface for forum topic storage
type TopicRepository interface {
	Create(ctx context.Context, topic *model.ForumTopic, authorID string) error
	List(ctx context.Context, filter model.TopicFilter) ([]*model.ForumTopic, error)
	Count(ctx context.Context, filter model.TopicFilter) (int, error)
	GetBySlugIncrementingViews(ctx context.Context, slug string) (*model.ForumTopic, error)
	GetByID(ctx context.Context, id string) (*model.ForumTopic, error)
	RecordReply(ctx context.Context, topicID, authorID string) error
	SetModeration(ctx context.Context, topicID string, isPinned, isLocked *bool) error
}

// ReplyRepository defines the interface for forum reply storage
type ReplyRepository interface {
	Create(ctx context.Context, reply *model.ForumReply, authorID string) error
	ListByTopic(ctx context.Context, topicID string) ([]*model.ForumReply, error)
}

// MemberCounterRepository covers the member lookups and counter bumps the
// forum needs. It is a slice of the full user repository.
type MemberCounterRepository interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	IncrementTopicsCount(ctx context.Context, userID string) error
	IncrementRepliesCount(ctx context.Context, userID string) error
}

// ForumService handles the discussion forum: categories, topics, replies,
// and their denormalized counters.
type ForumService struct {
	categoryRepo CategoryRepository
	topicRepo    TopicRepository
	replyRepo    ReplyRepository
	userRepo     MemberCounterRepository
}

// ForumServiceConfig holds configuration for the forum service
type ForumServiceConfig struct {
	CategoryRepo CategoryRepository
	TopicRepo    TopicRepository
	ReplyRepo    ReplyRepository
	UserRepo     MemberCounterRepository
}

// NewForumService creates a new forum service
func NewForumService(cfg ForumServiceConfig) *ForumService {
	return &ForumService{
		categoryRepo: cfg.CategoryRepo,
		topicRepo:    cfg.TopicRepo,
		replyRepo:    cfg.ReplyRepo,
		userRepo:     cfg.UserRepo,
	}
}

// ListCategories returns the forum taxonomy in display order, seeding the
// default catalog when the table is empty.
func (s *ForumService) ListCategories(ctx context.Context) ([]*model.ForumCategory, error) {
	count, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	if count == 0 {
		if err := s.categoryRepo.CreateMany(ctx, defaultForumCategories()); err != nil {
			return nil, err
		}
	}

	return s.categoryRepo.List(ctx)
}

// ListTopics returns one page of topics. Page and limit are clamped to
// sane bounds; unknown filter fields do not exist by construction.
func (s *ForumService) ListTopics(ctx context.Context, filter model.TopicFilter) (*model.TopicPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = model.DefaultTopicPageSize
	}
	if filter.Limit > model.MaxTopicPageSize {
		filter.Limit = model.MaxTopicPageSize
	}

	topics, err := s.topicRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.topicRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &model.TopicPage{
		Topics: topics,
		Pagination: model.Pagination{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: total,
			Pages: pageCount(total, filter.Limit),
		},
	}, nil
}

// CreateTopic opens a new topic for the authenticated member. The slug is
// derived from the title with a millisecond suffix for uniqueness. After
// the topic is stored, the author's and subcategory's topic counters are
// bumped with separate writes; a crash between them leaves the counters
// behind by one rather than rolling back the topic.
func (s *ForumService) CreateTopic(ctx context.Context, userID string, req *model.CreateTopicRequest) (*model.ForumTopic, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)

	if title == "" {
		return nil, ErrTitleRequired
	}
	if len(title) > model.MaxTopicTitleLength {
		return nil, ErrTitleTooLong
	}
	if content == "" {
		return nil, ErrContentRequired
	}
	if req.Category == "" {
		return nil, ErrInvalidCategory
	}
	if req.Subcategory == "" {
		return nil, ErrInvalidSubcategory
	}

	category, err := s.categoryRepo.GetBySlug(ctx, req.Category)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrInvalidCategory
	}
	if _, ok := category.FindSubcategory(req.Subcategory); !ok {
		return nil, ErrInvalidSubcategory
	}

	topic := &model.ForumTopic{
		Title:       title,
		Slug:        topicSlug(title),
		Content:     content,
		Category:    req.Category,
		Subcategory: req.Subcategory,
	}

	if err := s.topicRepo.Create(ctx, topic, userID); err != nil {
		return nil, err
	}

	if err := s.userRepo.IncrementTopicsCount(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.IncrementSubcategoryTopics(ctx, req.Category, req.Subcategory); err != nil {
		return nil, err
	}

	return topic, nil
}

// GetTopicBySlug returns the topic page payload: the topic with its view
// counter already incremented, the author's profile, and all replies in
// ascending order. Every call counts as a view.
func (s *ForumService) GetTopicBySlug(ctx context.Context, slug string) (*model.TopicDetail, error) {
	topic, err := s.topicRepo.GetBySlugIncrementingViews(ctx, slug)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}

	detail := &model.TopicDetail{Topic: topic}

	if topic.Author != nil {
		author, err := s.userRepo.GetByID(ctx, topic.Author.ID)
		if err != nil {
			return nil, err
		}
		if author != nil {
			detail.AuthorProfile = &model.UserProfile{
				ID:          author.ID,
				Username:    author.Username,
				Rank:        author.Rank,
				Avatar:      author.Avatar,
				Bio:         author.Bio,
				TopicsCount: author.TopicsCount,
			}
		}
	}

	replies, err := s.replyRepo.ListByTopic(ctx, topic.ID)
	if err != nil {
		return nil, err
	}
	detail.Replies = replies

	return detail, nil
}

// CreateReply posts a reply to an unlocked topic. The topic's reply
// counter and last-reply metadata, then the author's reply counter, are
// updated with separate writes after the reply is stored.
func (s *ForumService) CreateReply(ctx context.Context, userID string, req *model.CreateReplyRequest) (*model.ForumReply, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrContentRequired
	}
	if req.TopicID == "" {
		return nil, ErrTopicNotFound
	}

	topic, err := s.topicRepo.GetByID(ctx, req.TopicID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}
	if topic.IsLocked {
		return nil, ErrTopicLocked
	}

	reply := &model.ForumReply{
		Content: content,
		TopicID: topic.ID,
	}

	if err := s.replyRepo.Create(ctx, reply, userID); err != nil {
		return nil, err
	}

	if err := s.topicRepo.RecordReply(ctx, topic.ID, userID); err != nil {
		return nil, err
	}

	if err := s.userRepo.IncrementRepliesCount(ctx, userID); err != nil {
		return nil, err
	}

	return reply, nil
}

// ModerateTopic toggles the pin/lock flags on a topic and returns the
// updated topic. Back office only.
func (s *ForumService) ModerateTopic(ctx context.Context, topicID string, req *model.ModerateTopicRequest) (*model.ForumTopic, error) {
	topic, err := s.topicRepo.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}

	if req.IsPinned == nil && req.IsLocked == nil {
		return topic, nil
	}

	if err := s.topicRepo.SetModeration(ctx, topicID, req.IsPinned, req.IsLocked); err != nil {
		return nil, err
	}

	return s.topicRepo.GetByID(ctx, topicID)
}

// pageCount returns the number of pages needed for total items
func pageCount(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
