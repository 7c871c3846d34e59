package judging

import (
	"net/http"
	"strings"

	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/middleware"
	"github.com/tomaspozo/hackathon-platform/models"
	"github.com/tomaspozo/hackathon-platform/utils/response"

	"github.com/gin-gonic/gin"
)

// GetHackathonAssignments lists judge assignments for a hackathon
// @Summary Get judge assignments
// @Description Get all judge assignments for the hackathon with judge and team details
// @Tags Judging
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {array} models.JudgeAssignment
// @Failure 401,403,500 {object} map[string]string
// @Router /hackathons/{id}/assignments [get]
// @Security Bearer
func GetHackathonAssignments(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	hackathonID := c.Param("id")

	query := database.DB.
		Preload("Judge").
		Preload("Team").
		Where("hackathon_id = ?", hackathonID)
	// Judges only see their own assignments
	if !user.IsAdmin() {
		if !user.IsJudge() {
			response.Error(c, http.StatusForbidden, ErrNoPermission)
			return
		}
		query = query.Where("judge_id = ?", user.ID)
	}

	var assignments []models.JudgeAssignment
	if err := query.Order("created_at ASC").Find(&assignments).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// CreateAssignment assigns a judge to a team (admin only)
// @Summary Assign a judge to a team
// @Description Create a judge assignment; the pair is unique per hackathon
// @Tags Judging
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID"
// @Param request body AssignRequest true "Judge and team"
// @Success 201 {object} models.JudgeAssignment
// @Failure 400,401,403,404,409,500 {object} map[string]string
// @Router /hackathons/{id}/assignments [post]
// @Security Bearer
func CreateAssignment(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	hackathonID := c.Param("id")
	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, "id = ?", hackathonID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrHackathonNotFound)
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	var judge models.User
	if err := database.DB.First(&judge, "id = ?", req.JudgeID).Error; err != nil || !judge.IsJudge() {
		response.Error(c, http.StatusBadRequest, ErrNotAJudge)
		return
	}

	var teamCount int64
	database.DB.Model(&models.Team{}).
		Where("id = ? AND hackathon_id = ?", req.TeamID, hackathonID).
		Count(&teamCount)
	if teamCount == 0 {
		response.Error(c, http.StatusBadRequest, ErrTeamNotInHackathon)
		return
	}

	assignment := models.JudgeAssignment{
		HackathonID: hackathonID,
		JudgeID:     req.JudgeID,
		TeamID:      req.TeamID,
	}
	if err := database.DB.Create(&assignment).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			response.Error(c, http.StatusConflict, ErrAssignmentExists)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedSaveAssign)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// DeleteAssignment removes a judge assignment (admin only)
// @Summary Delete a judge assignment
// @Description Remove a judge assignment; already-submitted scores are kept
// @Tags Judging
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} map[string]string
// @Failure 401,403,404,500 {object} map[string]string
// @Router /judging/assignments/{id} [delete]
// @Security Bearer
func DeleteAssignment(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var assignment models.JudgeAssignment
	if err := database.DB.First(&assignment, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrAssignmentNotFound)
		return
	}

	if err := database.DB.Delete(&assignment).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteAssign)
		return
	}
	response.Message(c, http.StatusOK, "Assignment deleted")
}
