package teams

import (
	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/models"
)

// Constants for error messages
const (
	ErrTeamNotFound          = "Team not found"
	ErrHackathonNotFound     = "Hackathon not found"
	ErrInviteNotFound        = "Invite not found"
	ErrNoPermissionManage    = "Only the team owner can manage the team"
	ErrTeamManagementClosed  = "Team management is closed for this hackathon"
	ErrAlreadyInTeam         = "You already belong to a team in this hackathon"
	ErrNotTeamMember         = "You are not a member of this team"
	ErrPendingInviteExists   = "A pending invite already exists for this email"
	ErrInviteAlreadyResolved = "This invite has already been resolved"
	ErrNotYourInvite         = "This invite is addressed to another user"
	ErrFailedFetchTeam       = "Failed to fetch team"
	ErrFailedCreateTeam      = "Failed to create team"
	ErrFailedUpdateTeam      = "Failed to update team"
	ErrFailedDeleteTeam      = "Failed to delete team"
	ErrFailedFetchMembers    = "Failed to fetch team members"
	ErrFailedFetchInvites    = "Failed to fetch invites"
	ErrFailedCreateInvite    = "Failed to create invite"
	ErrFailedRespondInvite   = "Failed to respond to invite"
	ErrInvalidRequest        = "Invalid request data"
	ErrMissingHackathonID    = "hackathon_id query parameter is required"
)

// CreateTeamRequest model for creating a team
type CreateTeamRequest struct {
	HackathonID string  `json:"hackathon_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

// UpdateTeamRequest model for updating a team
type UpdateTeamRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

// InviteRequest model for inviting a member by email
type InviteRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RespondRequest model for accepting or rejecting an invite
type RespondRequest struct {
	Accept bool `json:"accept"`
}

// fetchTeamWithHackathon loads a team and its hackathon for gating checks
func fetchTeamWithHackathon(teamID string) (*models.Team, error) {
	var team models.Team
	if err := database.DB.Preload("Hackathon").First(&team, "id = ?", teamID).Error; err != nil {
		return nil, err
	}
	return &team, nil
}
