// Package model provides domain models and DTOs for team module.
package model

// TeamMember represents a team member in API responses.
// Used in team creation and retrieval.
type TeamMember struct {
	Name  string `json:"name"  binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}

// AddTeamRequest represents the request to create a team with members.
type AddTeamRequest struct {
	TeamID   string       `json:"team_id"   binding:"required"`
	TeamName string       `json:"team_name" binding:"required"`
	Members  []TeamMember `json:"members"   binding:"dive"`
}

// TeamResponse represents the response after creating or getting a team.
type TeamResponse struct {
	TeamID   string       `json:"team_id"`
	TeamName string       `json:"team_name"`
	Members  []TeamMember `json:"members"`
}

// ListTeamsResponse represents the response for listing teams.
type ListTeamsResponse struct {
	Teams []Team `json:"teams"`
}
