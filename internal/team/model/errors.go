package model

import "github.com/festy23/judging_rounds/internal/apperr"

var (
	// ErrTeamExists indicates that a team with the given id already exists.
	ErrTeamExists = apperr.New(apperr.ErrConstraintViolation, "team already exists")
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = apperr.New(apperr.ErrNotFound, "team not found")
	// ErrInvalidTeamID indicates that the provided team id is invalid (e.g., empty).
	ErrInvalidTeamID = apperr.New(apperr.ErrInvalidArgument, "team_id must be between 1 and 255 characters")
	// ErrInvalidTeamName indicates that the provided team name is invalid (e.g., empty).
	ErrInvalidTeamName = apperr.New(apperr.ErrInvalidArgument, "team_name must be between 1 and 255 characters")
	// ErrDuplicateMember indicates that two members of one team share a name.
	ErrDuplicateMember = apperr.New(apperr.ErrConstraintViolation, "member names must be unique within a team")
)
