package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JudgingCriterion represents a named, weighted scoring dimension defined per hackathon.
// Weight is a percentage between 1 and 100, validated at the handler level.
type JudgingCriterion struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	HackathonID  string    `gorm:"type:uuid;not null;column:hackathon_id" json:"hackathon_id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Description  *string   `gorm:"type:varchar(255)" json:"description"`
	Weight       int       `gorm:"not null" json:"weight"`
	DisplayOrder int       `gorm:"not null;default:0;column:display_order" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Hackathon    *Hackathon `gorm:"foreignKey:HackathonID" json:"-"`
}

func (jc *JudgingCriterion) TableName() string {
	return "judging_criteria"
}

func (jc *JudgingCriterion) BeforeCreate(tx *gorm.DB) error {
	if jc.ID == "" {
		jc.ID = uuid.NewString()
	}
	return nil
}
