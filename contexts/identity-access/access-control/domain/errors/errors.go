package errors

import "errors"

var (
	ErrUnauthenticated        = errors.New("no authenticated principal")
	ErrProfileNotFound        = errors.New("profile not found")
	ErrBanned                 = errors.New("user is banned")
	ErrForbidden              = errors.New("admin access required")
	ErrCannotSelfBan          = errors.New("cannot ban yourself")
	ErrInvalidUserInput       = errors.New("email and password are required")
	ErrInvalidRole            = errors.New("invalid role")
	ErrMissingTargetUser      = errors.New("target user id is required")
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrNoFieldsToUpdate       = errors.New("no fields to update")
)
