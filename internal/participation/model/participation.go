package model

import "time"

// Participation records whether a team takes part in a round.
// A team without a row does not participate. Matches the participations table schema.
type Participation struct {
	ID              int64     `gorm:"primaryKey;column:id;autoIncrement"  json:"-"`
	RoundID         string    `gorm:"column:round_id;not null"            json:"round_id"`
	TeamID          string    `gorm:"column:team_id;not null"             json:"team_id"`
	IsParticipating bool      `gorm:"column:is_participating;not null"    json:"is_participating"`
	CreatedAt       time.Time `gorm:"column:created_at;not null"          json:"-"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null"          json:"-"`
}

// TableName specifies the table name for GORM.
func (Participation) TableName() string {
	return "participations"
}
