package handler

import (
	"errors"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/database"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrTopicLocked):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrTopicNotFound):
		return model.NewNotFoundError("topic")
	case errors.Is(err, service.ErrBlogNotFound):
		return model.NewNotFoundError("blog")
	case errors.Is(err, service.ErrToolNotFound):
		return model.NewNotFoundError("tool")
	case errors.Is(err, service.ErrSlideNotFound):
		return model.NewNotFoundError("hero slide")

	// ===== Validation Errors → 400 =====
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidUsername),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong),
		errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrUsernameExists),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidSubcategory),
		errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrTitleTooLong),
		errors.Is(err, service.ErrContentRequired),
		errors.Is(err, service.ErrBlogTitleExists),
		errors.Is(err, service.ErrInvalidToolCategory),
		errors.Is(err, service.ErrToolNameRequired),
		errors.Is(err, service.ErrToolLinkRequired),
		errors.Is(err, service.ErrImageRequired):
		return model.NewBadRequestError(err.Error())

	// ===== Conflict Errors → 409 =====
	// A unique index rejected the write after the service pre-checks
	// passed; a concurrent request won the race.
	case errors.Is(err, database.ErrDuplicate):
		return model.NewConflictError("resource already exists")

	// ===== Server Misconfiguration → 500 with a usable detail =====
	case errors.Is(err, service.ErrImageStoreNotConfigured):
		return model.NewInternalError(err.Error())

	// ===== Everything else → 500 =====
	default:
		return model.NewInternalError("")
	}
}
