package model

import "github.com/festy23/judging_rounds/internal/apperr"

var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = apperr.New(apperr.ErrNotFound, "user not found")
	// ErrUserExists indicates that the user id or email is already taken.
	ErrUserExists = apperr.New(apperr.ErrConstraintViolation, "user_id or email already exists")
	// ErrInvalidUserID indicates that the provided user ID is invalid (e.g., empty).
	ErrInvalidUserID = apperr.New(apperr.ErrInvalidArgument, "user_id must be between 1 and 255 characters")
	// ErrInvalidRole indicates a role other than judge or admin.
	ErrInvalidRole = apperr.New(apperr.ErrInvalidArgument, "role must be one of judge, admin")
)
