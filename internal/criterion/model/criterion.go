// Package model provides domain models and DTOs for criterion module.
package model

import "time"

// Criterion is a scoring dimension shared by all rounds.
// Matches the criteria table schema.
type Criterion struct {
	CriterionID     string    `gorm:"primaryKey;column:criterion_id"        json:"criterion_id"`
	Description     string    `gorm:"column:description;not null"           json:"description"`
	DefaultMaxScore float64   `gorm:"column:default_max_score;not null"     json:"default_max_score"`
	CreatedAt       time.Time `gorm:"column:created_at;not null"            json:"-"`
}

// TableName specifies the table name for GORM.
func (Criterion) TableName() string {
	return "criteria"
}

// RoundCriterion links a criterion to a round.
// Matches the round_criteria table schema.
type RoundCriterion struct {
	ID          int64   `gorm:"primaryKey;column:id;autoIncrement"  json:"-"`
	RoundID     string  `gorm:"column:round_id;not null"            json:"round_id"`
	CriterionID string  `gorm:"column:criterion_id;not null"        json:"criterion_id"`
	IsActive    bool    `gorm:"column:is_active;not null"           json:"is_active"`
	Weight      float64 `gorm:"column:weight;not null"              json:"weight"`
}

// TableName specifies the table name for GORM.
func (RoundCriterion) TableName() string {
	return "round_criteria"
}

// RoundCriterionView is a round criterion joined with its description and max score.
type RoundCriterionView struct {
	CriterionID     string  `json:"criterion_id"`
	Description     string  `json:"description"`
	DefaultMaxScore float64 `json:"default_max_score"`
	IsActive        bool    `json:"is_active"`
	Weight          float64 `json:"weight"`
}
