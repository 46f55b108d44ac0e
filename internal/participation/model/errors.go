package model

import "github.com/festy23/judging_rounds/internal/apperr"

var (
	// ErrRoundFull indicates that the round already has max_teams participating teams.
	ErrRoundFull = apperr.New(apperr.ErrConstraintViolation, "round has reached max_teams")
	// ErrMissingIDs indicates that round_id or team_id is empty.
	ErrMissingIDs = apperr.New(apperr.ErrInvalidArgument, "round_id and team_id are required")
)
