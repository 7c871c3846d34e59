package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Participant links a user to a hackathon they registered for.
// A user registers at most once per hackathon.
type Participant struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	HackathonID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_hackathon_user;column:hackathon_id" json:"hackathon_id"`
	UserID       string    `gorm:"type:uuid;not null;uniqueIndex:idx_hackathon_user;column:user_id" json:"user_id"`
	RegisteredAt time.Time `gorm:"not null;column:registered_at" json:"registered_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Hackathon    *Hackathon `gorm:"foreignKey:HackathonID" json:"hackathon,omitempty"`
	User         *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (p *Participant) TableName() string {
	return "hackathon_participants"
}

func (p *Participant) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.RegisteredAt.IsZero() {
		p.RegisteredAt = time.Now()
	}
	return nil
}
