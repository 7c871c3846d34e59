package teams

import (
	"errors"
	"log"
	"net/http"

	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/metrics"
	"github.com/tomaspozo/hackathon-platform/middleware"
	"github.com/tomaspozo/hackathon-platform/models"
	"github.com/tomaspozo/hackathon-platform/services"
	"github.com/tomaspozo/hackathon-platform/utils"
	"github.com/tomaspozo/hackathon-platform/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InviteTeamMember creates a pending invite for an email address (owner only)
// @Summary Invite a team member
// @Description Create a pending invite; the invitee is resolved to an account best-effort
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body InviteRequest true "Invitee email"
// @Success 201 {object} models.TeamInvite
// @Failure 400,401,403,404,409,500 {object} map[string]string
// @Router /teams/{id}/invites [post]
// @Security Bearer
func InviteTeamMember(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	team, err := fetchTeamWithHackathon(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, ErrTeamNotFound)
		return
	}

	if !services.IsTeamOwner(user.ID, team.ID) {
		response.Error(c, http.StatusForbidden, ErrNoPermissionManage)
		return
	}
	if !utils.CanManageTeam(team.Hackathon) {
		response.Error(c, http.StatusForbidden, ErrTeamManagementClosed)
		return
	}

	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	invite, err := services.CreateInvite(team.ID, user.ID, req.Email)
	if err != nil {
		if errors.Is(err, services.ErrPendingInvite) {
			response.Error(c, http.StatusConflict, ErrPendingInviteExists)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedCreateInvite)
		return
	}

	metrics.InvitesSent.Inc()

	// Notification is best-effort; the invite stands even if the mail fails
	go func(email, teamName, hackathonName, token string) {
		if err := services.NewEmailService().SendTeamInviteEmail(email, teamName, hackathonName, token); err != nil {
			log.Printf("Failed to send invite email to %s: %v", email, err)
		}
	}(req.Email, team.Name, team.Hackathon.Name, invite.Token)

	c.JSON(http.StatusCreated, invite)
}

// GetTeamInvites lists all invites for a team, newest first (owner only)
// @Summary Get team invites
// @Description Get all invites for the team, newest first
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} models.TeamInvite
// @Failure 401,403,404,500 {object} map[string]string
// @Router /teams/{id}/invites [get]
// @Security Bearer
func GetTeamInvites(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	teamID := c.Param("id")
	if !services.IsTeamOwner(user.ID, teamID) && !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrNoPermissionManage)
		return
	}

	var invites []models.TeamInvite
	if err := database.DB.
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Find(&invites).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchInvites)
		return
	}
	c.JSON(http.StatusOK, invites)
}

// GetMyInvites lists the caller's pending invites, newest first
// @Summary Get my invites
// @Description Get pending invites matching the current user's email or account
// @Tags Teams
// @Produce json
// @Success 200 {array} models.TeamInvite
// @Failure 401,500 {object} map[string]string
// @Router /invites/ [get]
// @Security Bearer
func GetMyInvites(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var invites []models.TeamInvite
	if err := database.DB.
		Preload("Team.Hackathon").
		Where("status = ? AND (invitee_email = ? OR invitee_user_id = ?)",
			models.InviteStatusPending, user.Email, user.ID).
		Order("created_at DESC").
		Find(&invites).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchInvites)
		return
	}
	c.JSON(http.StatusOK, invites)
}

// RespondToInvite accepts or rejects a pending invite
// @Summary Respond to an invite
// @Description Accept or reject a pending invite; accepting joins the team as a non-owner
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Invite ID"
// @Param request body RespondRequest true "Response"
// @Success 200 {object} models.TeamInvite
// @Failure 400,401,403,404,409,500 {object} map[string]string
// @Router /invites/{id}/respond [post]
// @Security Bearer
func RespondToInvite(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	invite, err := services.RespondToInvite(c.Param("id"), user, req.Accept)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, ErrInviteNotFound)
		case errors.Is(err, services.ErrInviteResolved):
			response.Error(c, http.StatusConflict, ErrInviteAlreadyResolved)
		case errors.Is(err, services.ErrNotInvitee):
			response.Error(c, http.StatusForbidden, ErrNotYourInvite)
		case errors.Is(err, services.ErrAlreadyInTeam):
			response.Error(c, http.StatusConflict, ErrAlreadyInTeam)
		default:
			response.Error(c, http.StatusInternalServerError, ErrFailedRespondInvite)
		}
		return
	}
	c.JSON(http.StatusOK, invite)
}

// GetInviteByToken resolves an invite from its token, independent of authentication
// @Summary Get invite by token
// @Description Resolve an invite link token to the invite with team and hackathon names
// @Tags Teams
// @Produce json
// @Param token path string true "Invite token"
// @Success 200 {object} models.TeamInvite
// @Failure 404 {object} map[string]string
// @Router /invites/token/{token} [get]
func GetInviteByToken(c *gin.Context) {
	var invite models.TeamInvite
	if err := database.DB.
		Preload("Team.Hackathon").
		Where("token = ?", c.Param("token")).
		First(&invite).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrInviteNotFound)
		return
	}
	c.JSON(http.StatusOK, invite)
}
