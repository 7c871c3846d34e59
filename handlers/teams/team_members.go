package teams

import (
	"net/http"

	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/middleware"
	"github.com/tomaspozo/hackathon-platform/models"
	"github.com/tomaspozo/hackathon-platform/services"
	"github.com/tomaspozo/hackathon-platform/utils/response"

	"github.com/gin-gonic/gin"
)

// GetTeamMembers lists the team roster ordered by join time
// @Summary Get team members
// @Description Get team members with profile name and avatar, ordered by join time
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} services.TeamMemberInfo
// @Failure 401,404,500 {object} map[string]string
// @Router /teams/{id}/members [get]
// @Security Bearer
func GetTeamMembers(c *gin.Context) {
	if _, err := fetchTeamWithHackathon(c.Param("id")); err != nil {
		response.Error(c, http.StatusNotFound, ErrTeamNotFound)
		return
	}

	members, err := services.ListTeamMembers(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchMembers)
		return
	}
	c.JSON(http.StatusOK, members)
}

// LeaveTeam removes the caller's own membership
// @Summary Leave a team
// @Description Delete the current user's membership row
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} map[string]string
// @Failure 401,404,500 {object} map[string]string
// @Router /teams/{id}/leave [post]
// @Security Bearer
func LeaveTeam(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	result := database.DB.
		Where("team_id = ? AND user_id = ?", c.Param("id"), user.ID).
		Delete(&models.TeamMember{})
	if result.Error != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to leave team")
		return
	}
	if result.RowsAffected == 0 {
		response.Error(c, http.StatusNotFound, ErrNotTeamMember)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Left the team"})
}

// RemoveTeamMember removes a member from the team (owner only)
// @Summary Remove a team member
// @Description Remove a member from the team roster
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Param user_id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 401,403,404,500 {object} map[string]string
// @Router /teams/{id}/members/{user_id} [delete]
// @Security Bearer
func RemoveTeamMember(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	teamID := c.Param("id")
	if !services.IsTeamOwner(user.ID, teamID) && !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrNoPermissionManage)
		return
	}

	result := database.DB.
		Where("team_id = ? AND user_id = ?", teamID, c.Param("user_id")).
		Delete(&models.TeamMember{})
	if result.Error != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to remove team member")
		return
	}
	if result.RowsAffected == 0 {
		response.Error(c, http.StatusNotFound, ErrNotTeamMember)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member removed"})
}
