package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission statuses, mirroring the submission_status enum
const (
	SubmissionStatusDraft     = "draft"
	SubmissionStatusSubmitted = "submitted"
)

// Submission represents a team's project record, one per team.
// Fields remain editable after submission; last_submitted_at is stamped on each submit.
type Submission struct {
	ID              string     `gorm:"type:uuid;primary_key" json:"id"`
	TeamID          string     `gorm:"type:uuid;unique;not null;column:team_id" json:"team_id"`
	HackathonID     string     `gorm:"type:uuid;not null;column:hackathon_id" json:"hackathon_id"`
	CategoryID      string     `gorm:"type:uuid;not null;column:category_id" json:"category_id"`
	Name            string     `gorm:"type:varchar(100);not null" json:"name"`
	RepoURL         string     `gorm:"type:varchar(255);not null;column:repo_url" json:"repo_url"`
	DemoURL         *string    `gorm:"type:varchar(255);column:demo_url" json:"demo_url"`
	Summary         *string    `gorm:"type:varchar(2000)" json:"summary"`
	Status          string     `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	LastSubmittedAt *time.Time `gorm:"column:last_submitted_at" json:"last_submitted_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	Team            *Team      `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	Category        *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (s *Submission) TableName() string {
	return "project_submissions"
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
