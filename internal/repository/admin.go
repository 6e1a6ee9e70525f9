package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/database"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
)

// AdminRepository handles back office account data access
type AdminRepository struct {
	db database.Database
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db database.Database) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create creates a new admin account
func (r *AdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	query := `
		CREATE admin CONTENT {
			email: $email,
			hash: $hash,
			name: $name,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"email": admin.Email,
		"hash":  admin.Hash,
		"name":  admin.Name,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
		return err
	}

	created, err := parseAdmin(result)
	if err != nil {
		return err
	}

	admin.ID = created.ID
	admin.CreatedOn = created.CreatedOn
	admin.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves an admin by id. Returns nil without error when absent.
func (r *AdminRepository) GetByID(ctx context.Context, id string) (*model.Admin, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	admin, err := parseAdmin(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return admin, nil
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	query := `SELECT * FROM admin WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	admin, err := parseAdmin(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return admin, nil
}

func parseAdmin(result interface{}) (*model.Admin, error) {
	data, err := unwrapOne(result)
	if err != nil {
		return nil, err
	}

	return &model.Admin{
		ID:        extractRecordID(data["id"]),
		Email:     getString(data, "email"),
		Hash:      getString(data, "hash"),
		Name:      getString(data, "name"),
		CreatedOn: getTime(data, "created_on"),
		UpdatedOn: getTime(data, "updated_on"),
	}, nil
}
