package services

import (
	"errors"
	"log"
	"time"

	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/models"

	"gorm.io/gorm"
)

var (
	ErrAlreadyInTeam     = errors.New("user already belongs to a team in this hackathon")
	ErrInviteResolved    = errors.New("invite has already been resolved")
	ErrPendingInvite     = errors.New("a pending invite already exists for this email")
	ErrNotInvitee        = errors.New("invite is addressed to another user")
)

// CreateTeamWithOwner inserts the team and its owning membership in a single
// transaction so an ownerless team can never be observed. Rejects creation
// when the creator already belongs to a team in the same hackathon.
func CreateTeamWithOwner(team *models.Team) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.TeamMember{}).
			Joins("JOIN teams ON teams.id = team_members.team_id").
			Where("team_members.user_id = ? AND teams.hackathon_id = ?", team.CreatedBy, team.HackathonID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyInTeam
		}

		if err := tx.Create(team).Error; err != nil {
			return err
		}

		owner := models.TeamMember{
			TeamID:   team.ID,
			UserID:   team.CreatedBy,
			IsOwner:  true,
			JoinedAt: time.Now(),
		}
		return tx.Create(&owner).Error
	})
}

// CreateInvite inserts a pending invite after checking that no pending invite
// for the same (team, email) pair exists. The invitee is resolved to an
// existing account best-effort; a missing account leaves invitee_user_id nil.
func CreateInvite(teamID, inviterID, inviteeEmail string) (*models.TeamInvite, error) {
	var pending int64
	if err := database.DB.Model(&models.TeamInvite{}).
		Where("team_id = ? AND invitee_email = ? AND status = ?", teamID, inviteeEmail, models.InviteStatusPending).
		Count(&pending).Error; err != nil {
		return nil, err
	}
	if pending > 0 {
		return nil, ErrPendingInvite
	}

	invite := models.TeamInvite{
		TeamID:       teamID,
		InviterID:    inviterID,
		InviteeEmail: inviteeEmail,
		Status:       models.InviteStatusPending,
	}

	var invitee models.User
	if err := database.DB.Where("email = ?", inviteeEmail).First(&invitee).Error; err == nil {
		invite.InviteeUserID = &invitee.ID
	}

	if err := database.DB.Create(&invite).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

// RespondToInvite resolves a pending invite in a single transaction: the
// status and responder are stamped, and on accept a non-owner membership is
// created. A responder who already has a team in the hackathon rolls the
// whole response back.
func RespondToInvite(inviteID string, responder *models.User, accept bool) (*models.TeamInvite, error) {
	var invite models.TeamInvite

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Team").First(&invite, "id = ?", inviteID).Error; err != nil {
			return err
		}
		if invite.Resolved() {
			return ErrInviteResolved
		}
		if invite.InviteeEmail != responder.Email &&
			(invite.InviteeUserID == nil || *invite.InviteeUserID != responder.ID) {
			return ErrNotInvitee
		}

		status := models.InviteStatusRejected
		if accept {
			status = models.InviteStatusAccepted
		}
		invite.Status = status
		invite.InviteeUserID = &responder.ID
		if err := tx.Save(&invite).Error; err != nil {
			return err
		}

		if !accept {
			return nil
		}

		var count int64
		if err := tx.Model(&models.TeamMember{}).
			Joins("JOIN teams ON teams.id = team_members.team_id").
			Where("team_members.user_id = ? AND teams.hackathon_id = ?", responder.ID, invite.Team.HackathonID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyInTeam
		}

		member := models.TeamMember{
			TeamID:   invite.TeamID,
			UserID:   responder.ID,
			IsOwner:  false,
			JoinedAt: time.Now(),
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

// GetMyTeam resolves the user's single team within a hackathon.
// Returns (nil, nil) when the user has no team, which is not a failure.
func GetMyTeam(userID, hackathonID string) (*models.Team, error) {
	var team models.Team
	err := database.DB.
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ? AND teams.hackathon_id = ?", userID, hackathonID).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

// TeamMemberInfo is a membership row denormalized with profile display fields
type TeamMemberInfo struct {
	models.TeamMember
	FullName  string  `json:"full_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// ListTeamMembers returns the team roster ordered by join time, enriched with
// profile display name and avatar. Profile enrichment is best-effort: when the
// profile fetch fails the members are still returned.
func ListTeamMembers(teamID string) ([]TeamMemberInfo, error) {
	var members []models.TeamMember
	if err := database.DB.
		Where("team_id = ?", teamID).
		Order("joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}

	infos := make([]TeamMemberInfo, len(members))
	for i, m := range members {
		infos[i] = TeamMemberInfo{TeamMember: m}
	}

	userIDs := make([]string, len(members))
	for i, m := range members {
		userIDs[i] = m.UserID
	}

	var users []models.User
	if err := database.DB.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		log.Println("Failed to enrich team members with profiles: ", err)
		return infos, nil
	}

	byID := make(map[string]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	for i := range infos {
		if u, ok := byID[infos[i].UserID]; ok {
			infos[i].FullName = u.DisplayName()
			infos[i].AvatarURL = u.AvatarURL
		}
	}
	return infos, nil
}

// IsTeamOwner checks whether the user holds the owner flag on the team
func IsTeamOwner(userID, teamID string) bool {
	var count int64
	database.DB.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ? AND is_owner = ?", teamID, userID, true).
		Count(&count)
	return count > 0
}

// IsTeamMember checks whether the user belongs to the team
func IsTeamMember(userID, teamID string) bool {
	var count int64
	database.DB.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count)
	return count > 0
}
