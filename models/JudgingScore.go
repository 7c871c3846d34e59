package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JudgingScore represents a judge's score for a team against one criterion.
// Unique on (hackathon, team, judge, criterion); upserts revise the score in
// place, last write wins, no history retained.
type JudgingScore struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	HackathonID string    `gorm:"type:uuid;not null;uniqueIndex:idx_score_tuple;column:hackathon_id" json:"hackathon_id"`
	TeamID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_score_tuple;column:team_id" json:"team_id"`
	JudgeID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_score_tuple;column:judge_id" json:"judge_id"`
	CriterionID string    `gorm:"type:uuid;not null;uniqueIndex:idx_score_tuple;column:criterion_id" json:"criterion_id"`
	Score       float64   `gorm:"type:numeric(15,2);not null" json:"score"`
	Notes       *string   `gorm:"type:varchar(2000)" json:"notes"`
	SubmittedAt time.Time `gorm:"not null;column:submitted_at" json:"submitted_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Judge       *User             `gorm:"foreignKey:JudgeID" json:"judge,omitempty"`
	Team        *Team             `gorm:"foreignKey:TeamID" json:"-"`
	Criterion   *JudgingCriterion `gorm:"foreignKey:CriterionID" json:"criterion,omitempty"`
}

func (s *JudgingScore) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.SubmittedAt.IsZero() {
		s.SubmittedAt = time.Now()
	}
	return nil
}
