// Package model provides domain models and DTOs for allocation module.
package model

import "time"

// Allocation assigns one judge to one team within a round.
// Matches the allocations table schema.
type Allocation struct {
	ID        int64     `gorm:"primaryKey;column:id;autoIncrement"  json:"id"`
	RoundID   string    `gorm:"column:round_id;not null"            json:"round_id"`
	TeamID    string    `gorm:"column:team_id;not null"             json:"team_id"`
	JudgeID   string    `gorm:"column:judge_id;not null"            json:"judge_id"`
	CreatedAt time.Time `gorm:"column:created_at;not null"          json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Allocation) TableName() string {
	return "allocations"
}
