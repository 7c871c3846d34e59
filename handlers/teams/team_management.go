package teams

import (
	"errors"
	"net/http"

	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/middleware"
	"github.com/tomaspozo/hackathon-platform/models"
	"github.com/tomaspozo/hackathon-platform/services"
	"github.com/tomaspozo/hackathon-platform/utils"
	"github.com/tomaspozo/hackathon-platform/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateTeam creates a team with the caller as its owning member
// @Summary Create a team
// @Description Create a team; the creator becomes the sole owning member
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body CreateTeamRequest true "Team details"
// @Success 201 {object} models.Team
// @Failure 400,401,403,404,409,500 {object} map[string]string
// @Router /teams/ [post]
// @Security Bearer
func CreateTeam(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, "id = ?", req.HackathonID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrHackathonNotFound)
		return
	}
	if !utils.CanManageTeam(&hackathon) {
		response.Error(c, http.StatusForbidden, ErrTeamManagementClosed)
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	team := models.Team{
		HackathonID: hackathon.ID,
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		CreatedBy:   user.ID,
	}
	if err := services.CreateTeamWithOwner(&team); err != nil {
		if errors.Is(err, services.ErrAlreadyInTeam) {
			response.Error(c, http.StatusConflict, ErrAlreadyInTeam)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedCreateTeam)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// GetMyTeam resolves the caller's team within a hackathon
// @Summary Get my team
// @Description Get the current user's team in the given hackathon; null when none
// @Tags Teams
// @Produce json
// @Param hackathon_id query string true "Hackathon ID"
// @Success 200 {object} models.Team
// @Failure 400,401,500 {object} map[string]string
// @Router /teams/my [get]
// @Security Bearer
func GetMyTeam(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	hackathonID := c.Query("hackathon_id")
	if hackathonID == "" {
		response.Error(c, http.StatusBadRequest, ErrMissingHackathonID)
		return
	}

	team, err := services.GetMyTeam(user.ID, hackathonID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchTeam)
		return
	}
	// Having no team yet is not an error
	c.JSON(http.StatusOK, team)
}

// GetTeam returns a team by ID
// @Summary Get a team
// @Description Get a team with its hackathon
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} models.Team
// @Failure 401,404 {object} map[string]string
// @Router /teams/{id} [get]
// @Security Bearer
func GetTeam(c *gin.Context) {
	team, err := fetchTeamWithHackathon(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, ErrTeamNotFound)
		return
	}
	c.JSON(http.StatusOK, team)
}

// UpdateTeam updates team fields (owner or admin)
// @Summary Update a team
// @Description Update the team name, slug or description
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body UpdateTeamRequest true "Fields to update"
// @Success 200 {object} models.Team
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /teams/{id} [put]
// @Security Bearer
func UpdateTeam(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	team, err := fetchTeamWithHackathon(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, ErrTeamNotFound)
		return
	}

	if !services.IsTeamOwner(user.ID, team.ID) && !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrNoPermissionManage)
		return
	}
	if !utils.CanManageTeam(team.Hackathon) && !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrTeamManagementClosed)
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Slug != nil {
		team.Slug = *req.Slug
	}
	if req.Description != nil {
		team.Description = req.Description
	}

	if err := database.DB.Save(team).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedUpdateTeam)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam removes a team (owner or admin)
// @Summary Delete a team
// @Description Delete the team; memberships, invites and the submission cascade
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} map[string]string
// @Failure 401,403,404,500 {object} map[string]string
// @Router /teams/{id} [delete]
// @Security Bearer
func DeleteTeam(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	team, err := fetchTeamWithHackathon(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, ErrTeamNotFound)
		return
	}

	if !services.IsTeamOwner(user.ID, team.ID) && !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrNoPermissionManage)
		return
	}

	// Dependent rows are removed explicitly; the schema carries no ON DELETE
	// CASCADE, so leaving any child behind would violate the FK on postgres
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.JudgingScore{},
			&models.JudgeAssignment{},
			&models.Submission{},
			&models.TeamInvite{},
			&models.TeamMember{},
		} {
			if err := tx.Where("team_id = ?", team.ID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(team).Error
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteTeam)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}
