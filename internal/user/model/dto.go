// Package model provides domain models and DTOs for user module.
package model

// AddUserRequest represents the request to register a user.
type AddUserRequest struct {
	UserID   string `json:"user_id"  binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"    binding:"required,email"`
	Role     Role   `json:"role"     binding:"required"`
}

// ListJudgesResponse represents the global judge pool.
type ListJudgesResponse struct {
	Judges []User `json:"judges"`
}

// JudgeAllocation is one team a judge must evaluate.
// Used in GetAllocationsResponse.
type JudgeAllocation struct {
	RoundID     string `json:"round_id"`
	RoundName   string `json:"round_name"`
	RoundStatus string `json:"round_status"`
	TeamID      string `json:"team_id"`
	TeamName    string `json:"team_name"`
}

// GetAllocationsResponse represents the response for getting a judge's allocations.
type GetAllocationsResponse struct {
	UserID      string            `json:"user_id"`
	Allocations []JudgeAllocation `json:"allocations"`
}
