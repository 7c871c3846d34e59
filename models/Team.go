package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team represents a group of participants collaborating on one submission per hackathon
type Team struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	HackathonID string    `gorm:"type:uuid;not null;column:hackathon_id" json:"hackathon_id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Slug        string    `gorm:"type:varchar(100);not null" json:"slug"`
	Description *string   `gorm:"type:varchar(255)" json:"description"`
	CreatedBy   string    `gorm:"type:uuid;not null;column:created_by" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Hackathon   *Hackathon    `gorm:"foreignKey:HackathonID" json:"hackathon,omitempty"`
	Members     []*TeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
