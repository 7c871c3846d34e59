package models

import "time"

// TeamMember links a user to a team. Exactly one member per team holds the
// owner flag; a user belongs to at most one team per hackathon.
type TeamMember struct {
	TeamID    string    `gorm:"type:uuid;primaryKey;column:team_id" json:"team_id"`
	UserID    string    `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	IsOwner   bool      `gorm:"not null;default:false;column:is_owner" json:"is_owner"`
	JoinedAt  time.Time `gorm:"not null;column:joined_at" json:"joined_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Team      *Team     `gorm:"foreignKey:TeamID" json:"-"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
}
