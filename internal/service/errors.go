package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUsernameExists     = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidUsername    = errors.New("username must be 3-20 characters")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
)

// ===== Forum Errors =====
var (
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidSubcategory = errors.New("invalid subcategory")
	ErrTopicNotFound      = errors.New("topic not found")
	ErrTopicLocked        = errors.New("topic is locked")
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title exceeds maximum length")
	ErrContentRequired    = errors.New("content is required")
)

// ===== Blog Errors =====
var (
	ErrBlogNotFound    = errors.New("blog not found")
	ErrBlogTitleExists = errors.New("A blog with this title already exists")
)

// ===== Tool Errors =====
var (
	ErrToolNotFound        = errors.New("tool not found")
	ErrInvalidToolCategory = errors.New("invalid tool category")
	ErrToolNameRequired    = errors.New("tool name is required")
	ErrToolLinkRequired    = errors.New("tool link is required")
)

// ===== Hero Slide Errors =====
var (
	ErrSlideNotFound           = errors.New("hero slide not found")
	ErrImageRequired           = errors.New("image is required")
	ErrUploadFailed            = errors.New("image upload failed")
	ErrImageStoreNotConfigured = errors.New("image store is not configured")
)
