package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles, mirroring the user_role enum
const (
	RoleAdmin       = "admin"
	RoleParticipant = "participant"
	RoleJudge       = "judge"
)

// User represents a platform account with its profile information and role
type User struct {
	ID            string     `gorm:"type:uuid;primary_key" json:"id"`
	Email         string     `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password      string     `gorm:"type:varchar(255);not null" json:"-"`
	Firstname     string     `gorm:"type:varchar(100);not null" json:"firstname"`
	Lastname      string     `gorm:"type:varchar(100);not null" json:"lastname"`
	AvatarURL     *string    `gorm:"type:varchar(255);column:avatar_url" json:"avatar_url"`
	Organization  *string    `gorm:"type:varchar(255)" json:"organization"`
	Title         *string    `gorm:"type:varchar(255)" json:"title"`
	Role          string     `gorm:"type:varchar(20);not null;default:'participant'" json:"role"`
	Blocked       bool       `gorm:"not null;default:false" json:"blocked"`
	LastConnected *time.Time `gorm:"column:last_connected" json:"last_connected"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// IsAdmin checks if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsJudge checks if the user has the judge role
func (u *User) IsJudge() bool {
	return u.Role == RoleJudge
}

// DisplayName returns the user's full name for denormalized member listings
func (u *User) DisplayName() string {
	return u.Firstname + " " + u.Lastname
}
