package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hackathon lifecycle statuses, mirroring the hackathon_status enum
const (
	HackathonStatusDraft    = "DRAFT"
	HackathonStatusOpen     = "OPEN"
	HackathonStatusStarted  = "STARTED"
	HackathonStatusFinished = "FINISHED"
	HackathonStatusCanceled = "CANCELED"
)

// Hackathon represents a timeboxed competitive event with a lifecycle status
type Hackathon struct {
	ID                  string     `gorm:"type:uuid;primary_key" json:"id"`
	Name                string     `gorm:"type:varchar(100);not null" json:"name"`
	Slug                string     `gorm:"type:varchar(100);unique;not null" json:"slug"`
	Description         *string    `gorm:"type:varchar(255)" json:"description"`
	Status              string     `gorm:"type:varchar(20);not null;default:'DRAFT'" json:"status"`
	IsActive            bool       `gorm:"not null;default:false;column:is_active" json:"is_active"`
	StartAt             time.Time  `gorm:"not null;column:start_at" json:"start_at"`
	EndAt               time.Time  `gorm:"not null;column:end_at" json:"end_at"`
	RegistrationOpenAt  *time.Time `gorm:"column:registration_open_at" json:"registration_open_at"`
	RegistrationCloseAt *time.Time `gorm:"column:registration_close_at" json:"registration_close_at"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	Categories          []*Category         `gorm:"foreignKey:HackathonID" json:"categories,omitempty"`
	Criteria            []*JudgingCriterion `gorm:"foreignKey:HackathonID" json:"criteria,omitempty"`
	Teams               []*Team             `gorm:"foreignKey:HackathonID" json:"teams,omitempty"`
}

func (h *Hackathon) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

// ValidStatus checks that a status value is one of the hackathon_status enum values
func ValidStatus(status string) bool {
	switch status {
	case HackathonStatusDraft, HackathonStatusOpen, HackathonStatusStarted,
		HackathonStatusFinished, HackathonStatusCanceled:
		return true
	}
	return false
}
