package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a submission track defined per hackathon
type Category struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	HackathonID  string    `gorm:"type:uuid;not null;column:hackathon_id" json:"hackathon_id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Description  *string   `gorm:"type:varchar(255)" json:"description"`
	DisplayOrder int       `gorm:"not null;default:0;column:display_order" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Hackathon    *Hackathon `gorm:"foreignKey:HackathonID" json:"-"`
}

func (c *Category) TableName() string {
	return "hackathon_categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
