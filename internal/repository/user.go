package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/database"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
)

// UserRepository handles forum member data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new member account
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE user CONTENT {
			username: $username,
			email: $email,
			hash: $hash,
			rank: $rank,
			avatar: $avatar,
			bio: $bio,
			topics_count: 0,
			replies_count: 0,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"username": user.Username,
		"email":    user.Email,
		"hash":     user.Hash,
		"rank":     user.Rank,
		"avatar":   user.Avatar,
		"bio":      user.Bio,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: username or email already exists", database.ErrDuplicate)
		}
		return err
	}

	created, err := parseUser(result)
	if err != nil {
		return err
	}

	user.ID = created.ID
	user.CreatedOn = created.CreatedOn
	user.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves a member by id. Returns nil without error when absent.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	user, err := parseUser(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// GetByEmail retrieves a member by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOneWhere(ctx, "email = $value", email)
}

// GetByUsername retrieves a member by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getOneWhere(ctx, "username = $value", username)
}

func (r *UserRepository) getOneWhere(ctx context.Context, cond, value string) (*model.User, error) {
	query := `SELECT * FROM user WHERE ` + cond + ` LIMIT 1`
	vars := map[string]interface{}{"value": value}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	user, err := parseUser(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// IncrementTopicsCount bumps the member's topic tally by one
func (r *UserRepository) IncrementTopicsCount(ctx context.Context, userID string) error {
	query := `UPDATE type::record($id) SET topics_count += 1, updated_on = time::now()`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": userID})
}

// IncrementRepliesCount bumps the member's reply tally by one
func (r *UserRepository) IncrementRepliesCount(ctx context.Context, userID string) error {
	query := `UPDATE type::record($id) SET replies_count += 1, updated_on = time::now()`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": userID})
}

func parseUser(result interface{}) (*model.User, error) {
	data, err := unwrapOne(result)
	if err != nil {
		return nil, err
	}

	return &model.User{
		ID:           extractRecordID(data["id"]),
		Username:     getString(data, "username"),
		Email:        getString(data, "email"),
		Hash:         getString(data, "hash"),
		Rank:         getInt(data, "rank"),
		Avatar:       getString(data, "avatar"),
		Bio:          getString(data, "bio"),
		TopicsCount:  getInt(data, "topics_count"),
		RepliesCount: getInt(data, "replies_count"),
		CreatedOn:    getTime(data, "created_on"),
		UpdatedOn:    getTime(data, "updated_on"),
	}, nil
}
