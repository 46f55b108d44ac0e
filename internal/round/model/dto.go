package model

// CreateRoundRequest represents the request to create a round.
// Omitted capacities fall back to the configured defaults.
type CreateRoundRequest struct {
	RoundID          string `json:"round_id"            binding:"required"`
	Name             string `json:"name"                binding:"required"`
	MaxTeams         *int   `json:"max_teams"`
	MaxJudgesPerTeam *int   `json:"max_judges_per_team"`
	MaxTeamsPerJudge *int   `json:"max_teams_per_judge"`
}

// SetStatusRequest represents the request to change a round's status.
type SetStatusRequest struct {
	RoundID string `json:"round_id" binding:"required"`
	Status  string `json:"status"   binding:"required"`
}

// DeleteRoundRequest represents the request to delete a round.
type DeleteRoundRequest struct {
	RoundID string `json:"round_id" binding:"required"`
}

// ListRoundsResponse represents the response for listing rounds.
type ListRoundsResponse struct {
	Rounds []Round `json:"rounds"`
}
