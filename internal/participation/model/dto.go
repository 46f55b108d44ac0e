// Package model provides domain models and DTOs for participation module.
package model

import teamModel "github.com/festy23/judging_rounds/internal/team/model"

// SetParticipationRequest represents the request to opt a team in or out of a round.
type SetParticipationRequest struct {
	RoundID         string `json:"round_id"         binding:"required"`
	TeamID          string `json:"team_id"          binding:"required"`
	IsParticipating *bool  `json:"is_participating" binding:"required"`
}

// ParticipatingTeamsResponse represents the teams taking part in a round.
type ParticipatingTeamsResponse struct {
	RoundID string           `json:"round_id"`
	Teams   []teamModel.Team `json:"teams"`
}
