// Package model provides domain models and DTOs for score module.
package model

import "time"

// Score is one judge's mark for one criterion on an allocated team.
// Matches the scores table schema.
type Score struct {
	ID           int64     `gorm:"primaryKey;column:id;autoIncrement"  json:"id"`
	AllocationID int64     `gorm:"column:allocation_id;not null"       json:"allocation_id"`
	CriterionID  string    `gorm:"column:criterion_id;not null"        json:"criterion_id"`
	Value        float64   `gorm:"column:value;not null"               json:"value"`
	MaxValue     float64   `gorm:"column:max_value;not null"           json:"max_value"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"          json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null"          json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Score) TableName() string {
	return "scores"
}

// ScoreView is a score joined with the allocation it was recorded against.
type ScoreView struct {
	TeamID      string  `json:"team_id"`
	JudgeID     string  `json:"judge_id"`
	CriterionID string  `json:"criterion_id"`
	Value       float64 `json:"value"`
	MaxValue    float64 `json:"max_value"`
}
