// Package model provides domain models and DTOs for round module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Status is the lifecycle state of a round.
type Status string

// Round statuses. A round starts open.
const (
	StatusOpen     Status = "open"
	StatusClosed   Status = "closed"
	StatusArchived Status = "archived"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusClosed, StatusArchived:
		return true
	}
	return false
}

// Round represents one judging cycle.
// Matches the rounds table schema.
type Round struct {
	RoundID          string     `gorm:"primaryKey;column:round_id"             json:"round_id"`
	Name             string     `gorm:"column:name;not null"                   json:"name"`
	Status           Status     `gorm:"column:status;not null;default:open"    json:"status"`
	ClosedAt         *time.Time `gorm:"column:closed_at"                       json:"closed_at"`
	MaxTeams         int        `gorm:"column:max_teams;not null"              json:"max_teams"`
	MaxJudgesPerTeam int        `gorm:"column:max_judges_per_team;not null"    json:"max_judges_per_team"`
	MaxTeamsPerJudge int        `gorm:"column:max_teams_per_judge;not null"    json:"max_teams_per_judge"`
	CreatedAt        time.Time  `gorm:"column:created_at;not null"             json:"created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;not null"             json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Round) TableName() string {
	return "rounds"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (r *Round) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now().UTC()
	return nil
}
