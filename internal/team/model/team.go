package model

import (
	"time"

	"gorm.io/gorm"
)

// Team represents a team entity in the system.
// Teams persist across rounds. Matches the teams table schema.
type Team struct {
	TeamID    string    `gorm:"primaryKey;column:team_id"   json:"team_id"`
	TeamName  string    `gorm:"column:team_name;not null"   json:"team_name"`
	CreatedAt time.Time `gorm:"column:created_at;not null"  json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"  json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// Member represents one person on a team roster.
type Member struct {
	ID        int64     `gorm:"primaryKey;column:id;autoIncrement"`
	TeamID    string    `gorm:"column:team_id;not null"`
	Name      string    `gorm:"column:name;not null"`
	Email     string    `gorm:"column:email;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for GORM.
func (Member) TableName() string {
	return "team_members"
}
