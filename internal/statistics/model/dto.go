// Package model provides data transfer objects for statistics module.
package model

// JudgeWorkload represents one judge's load in a round.
type JudgeWorkload struct {
	UserID          string `json:"user_id"`
	Username        string `json:"username"`
	AllocationCount int    `json:"allocation_count"`
	ScoreCount      int    `json:"score_count"`
}

// JudgeWorkloadResponse represents response for judge workload statistics.
type JudgeWorkloadResponse struct {
	RoundID string          `json:"round_id"`
	Judges  []JudgeWorkload `json:"judges"`
	Total   int             `json:"total"`
}
