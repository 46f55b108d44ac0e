package model

import (
	"time"

	"gorm.io/gorm"
)

// Role is a user's permission level.
type Role string

// User roles. Judges form one pool shared by every round.
const (
	RoleJudge Role = "judge"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleJudge || r == RoleAdmin
}

// User represents a user entity in the system.
// Matches the users table schema.
type User struct {
	UserID    string    `gorm:"primaryKey;column:user_id"  json:"user_id"`
	Username  string    `gorm:"column:username;not null"   json:"username"`
	Email     string    `gorm:"column:email;not null"      json:"email"`
	Role      Role      `gorm:"column:role;not null"       json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
