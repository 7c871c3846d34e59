package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invite statuses, mirroring the team_invite_status enum.
// pending is the only non-terminal state.
const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusRejected = "rejected"
)

// TeamInvite represents a pending offer for a user or email to join a team
type TeamInvite struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	TeamID        string    `gorm:"type:uuid;not null;column:team_id" json:"team_id"`
	InviterID     string    `gorm:"type:uuid;not null;column:inviter_id" json:"inviter_id"`
	InviteeEmail  string    `gorm:"type:varchar(255);not null;column:invitee_email" json:"invitee_email"`
	InviteeUserID *string   `gorm:"type:uuid;column:invitee_user_id" json:"invitee_user_id"`
	Token         string    `gorm:"type:varchar(255);unique;not null" json:"token"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Team          *Team     `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

func (i *TeamInvite) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Token == "" {
		i.Token = uuid.NewString()
	}
	return nil
}

// Resolved reports whether the invite has reached a terminal status
func (i *TeamInvite) Resolved() bool {
	return i.Status != InviteStatusPending
}
