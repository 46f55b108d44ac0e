package model

import "github.com/festy23/judging_rounds/internal/apperr"

var (
	// ErrCriterionNotFound indicates that the requested criterion does not exist.
	ErrCriterionNotFound = apperr.New(apperr.ErrNotFound, "criterion not found")
	// ErrCriterionInactive indicates that the criterion is not active in the round.
	ErrCriterionInactive = apperr.New(apperr.ErrNotFound, "criterion is not active in round")
	// ErrCriterionExists indicates that a criterion with the given id already exists.
	ErrCriterionExists = apperr.New(apperr.ErrConstraintViolation, "criterion already exists")
	// ErrInvalidCriterionID indicates that the criterion id is empty or too long.
	ErrInvalidCriterionID = apperr.New(apperr.ErrInvalidArgument, "criterion_id must be between 1 and 255 characters")
	// ErrInvalidMaxScore indicates a non-positive maximum score.
	ErrInvalidMaxScore = apperr.New(apperr.ErrInvalidArgument, "default_max_score must be greater than 0")
	// ErrNegativeWeight indicates a negative criterion weight.
	ErrNegativeWeight = apperr.New(apperr.ErrInvalidArgument, "weight must be non-negative")
)
