package model

import "github.com/festy23/judging_rounds/internal/apperr"

var (
	// ErrNotAllocated indicates that the judge is not allocated to the team in the round.
	ErrNotAllocated = apperr.New(apperr.ErrNotFound, "judge is not allocated to team in round")
	// ErrValueOutOfRange indicates a score outside [0, max score].
	ErrValueOutOfRange = apperr.New(apperr.ErrInvalidArgument, "value must be between 0 and the criterion max score")
	// ErrMissingFields indicates that an identifier or the value is missing.
	ErrMissingFields = apperr.New(apperr.ErrInvalidArgument, "round_id, team_id, judge_id, criterion_id and value are required")
)
