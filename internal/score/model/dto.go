package model

// RecordScoreRequest represents a judge's mark for a team on one criterion.
type RecordScoreRequest struct {
	RoundID     string   `json:"round_id"     binding:"required"`
	TeamID      string   `json:"team_id"      binding:"required"`
	JudgeID     string   `json:"judge_id"     binding:"required"`
	CriterionID string   `json:"criterion_id" binding:"required"`
	Value       *float64 `json:"value"        binding:"required"`
}

// ListScoresResponse represents all scores recorded in a round.
type ListScoresResponse struct {
	RoundID string      `json:"round_id"`
	Scores  []ScoreView `json:"scores"`
}
