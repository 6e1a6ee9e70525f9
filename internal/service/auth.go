package service

import (
	"context"
	"strings"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

const (
	// bcrypt cost factor
	bcryptCost = 10

	// Password constraints
	minPasswordLength = 6
	maxPasswordLength = 128
)

// UserRepository defines the interface for member account storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// AdminRepository defines the interface for back office account storage
type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	GetByID(ctx context.Context, id string) (*model.Admin, error)
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
}

// AuthService handles both identity domains: back office admins and forum
// members. The domains never cross; an admin token does not identify a
// member and vice versa.
type AuthService struct {
	userRepo     UserRepository
	adminRepo    AdminRepository
	tokenService *token.Service
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	UserRepo     UserRepository
	AdminRepo    AdminRepository
	TokenService *token.Service
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo:     cfg.UserRepo,
		adminRepo:    cfg.AdminRepo,
		tokenService: cfg.TokenService,
	}
}

// Register creates a new member account and returns the account with a
// signed member token. New members start at the lowest rank.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, string, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(strings.ToLower(req.Email))

	if len(username) < model.MinUsernameLength || len(username) > model.MaxUsernameLength {
		return nil, "", ErrInvalidUsername
	}
	if !isValidEmail(email) {
		return nil, "", ErrInvalidEmail
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, "", err
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailAlreadyExists
	}

	existing, err = s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUsernameExists
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Hash:     hash,
		Rank:     model.Ranks[0].Level,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	tok, err := s.signMemberToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, tok, nil
}

// LoginMember authenticates a forum member by email and password
func (s *AuthService) LoginMember(ctx context.Context, req *model.LoginRequest) (*model.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Hash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := s.signMemberToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, tok, nil
}

// LoginAdmin authenticates a back office admin by email and password
func (s *AuthService) LoginAdmin(ctx context.Context, req *model.LoginRequest) (*model.Admin, string, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if admin == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Hash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := s.tokenService.Sign(token.Claims{
		Subject: admin.ID,
		Role:    token.RoleAdmin,
		Email:   admin.Email,
	})
	if err != nil {
		return nil, "", err
	}
	return admin, tok, nil
}

// GetMember loads a member account for the "current user" endpoint
func (s *AuthService) GetMember(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetAdmin loads an admin account by id
func (s *AuthService) GetAdmin(ctx context.Context, adminID string) (*model.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrUserNotFound
	}
	return admin, nil
}

// CreateAdmin provisions a back office account, used by the seeding command
func (s *AuthService) CreateAdmin(ctx context.Context, email, password, name string) (*model.Admin, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	existing, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		Email: email,
		Hash:  hash,
		Name:  name,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AuthService) signMemberToken(user *model.User) (string, error) {
	return s.tokenService.Sign(token.Claims{
		Subject:  user.ID,
		Role:     token.RoleMember,
		Email:    user.Email,
		Username: user.Username,
	})
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func validatePassword(password string) error {
	switch {
	case password == "":
		return ErrPasswordRequired
	case len(password) < minPasswordLength:
		return ErrPasswordTooShort
	case len(password) > maxPasswordLength:
		return ErrPasswordTooLong
	}
	return nil
}

func isValidEmail(email string) bool {
	if len(email) < 3 || len(email) > 254 {
		return false
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.Contains(email, " ") {
		return false
	}
	return true
}
