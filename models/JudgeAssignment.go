package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JudgeAssignment records which judge evaluates which team within a hackathon
type JudgeAssignment struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	HackathonID string    `gorm:"type:uuid;not null;uniqueIndex:idx_judge_team;column:hackathon_id" json:"hackathon_id"`
	JudgeID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_judge_team;column:judge_id" json:"judge_id"`
	TeamID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_judge_team;column:team_id" json:"team_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Judge       *User     `gorm:"foreignKey:JudgeID" json:"judge,omitempty"`
	Team        *Team     `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

func (a *JudgeAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
