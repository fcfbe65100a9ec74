package services

import "errors"

// Sentinel errors for mapping to HTTP status codes in the handlers.
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")

	ErrUserNotFound      = errors.New("user not found")
	ErrCourseNotFound    = errors.New("course not found")
	ErrUserInactive      = errors.New("user is deactivated")
	ErrEmailAlreadyInUse = errors.New("email already in use")
)
