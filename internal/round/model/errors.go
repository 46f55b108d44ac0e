package model

import "github.com/festy23/judging_rounds/internal/apperr"

var (
	// ErrRoundNotFound indicates that the requested round does not exist.
	ErrRoundNotFound = apperr.New(apperr.ErrNotFound, "round not found")
	// ErrRoundExists indicates that a round with the given id already exists.
	ErrRoundExists = apperr.New(apperr.ErrConstraintViolation, "round already exists")
	// ErrUnknownStatus indicates a status outside open, closed and archived.
	ErrUnknownStatus = apperr.New(apperr.ErrInvalidStatus, "status must be one of open, closed, archived")
	// ErrRoundArchived indicates that an archived round refuses the mutation.
	ErrRoundArchived = apperr.New(apperr.ErrInvalidStatus, "round is archived")
	// ErrInvalidRoundID indicates that the round id is empty or too long.
	ErrInvalidRoundID = apperr.New(apperr.ErrInvalidArgument, "round_id must be between 1 and 255 characters")
	// ErrInvalidRoundName indicates that the round name is empty or too long.
	ErrInvalidRoundName = apperr.New(apperr.ErrInvalidArgument, "name must be between 1 and 255 characters")
	// ErrNegativeCapacity indicates a negative capacity limit.
	ErrNegativeCapacity = apperr.New(apperr.ErrInvalidArgument, "capacities must be non-negative")
)
