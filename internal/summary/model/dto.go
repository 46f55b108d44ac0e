// Package model provides DTOs for summary module.
package model

import "github.com/festy23/judging_rounds/internal/summary/aggregator"

// RoundSummaryResponse is the ranking of a round's participating teams.
type RoundSummaryResponse struct {
	RoundID     string                   `json:"round_id"`
	RoundStatus string                   `json:"round_status"`
	Teams       []aggregator.TeamSummary `json:"teams"`
}
