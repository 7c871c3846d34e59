package submissions

import (
	"net/http"
	"time"

	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/middleware"
	"github.com/tomaspozo/hackathon-platform/models"
	"github.com/tomaspozo/hackathon-platform/services"
	"github.com/tomaspozo/hackathon-platform/utils"
	"github.com/tomaspozo/hackathon-platform/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetTeamSubmission returns a team's submission, or null when none exists yet
// @Summary Get team submission
// @Description Get the team's project submission with its category; returns null when the team has not saved one
// @Tags Submissions
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} models.Submission
// @Failure 401,403,404,500 {object} map[string]string
// @Router /teams/{id}/submission [get]
// @Security Bearer
func GetTeamSubmission(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	teamID := c.Param("id")
	if !services.IsTeamMember(user.ID, teamID) && !user.IsAdmin() && !user.IsJudge() {
		response.Error(c, http.StatusForbidden, ErrNotTeamMember)
		return
	}

	var submission models.Submission
	err = database.DB.
		Preload("Category").
		Preload("Team").
		Where("team_id = ?", teamID).
		First(&submission).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	c.JSON(http.StatusOK, submission)
}

// UpsertTeamSubmission creates or updates the team's draft submission
// @Summary Save team submission
// @Description Create or update the team's submission; allowed only while the hackathon submission window is open
// @Tags Submissions
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body UpsertSubmissionRequest true "Submission fields"
// @Success 200 {object} models.Submission
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /teams/{id}/submission [put]
// @Security Bearer
func UpsertTeamSubmission(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	teamID := c.Param("id")

	var team models.Team
	if err := database.DB.Preload("Hackathon").First(&team, "id = ?", teamID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrTeamNotFound)
		return
	}

	if !services.IsTeamMember(user.ID, team.ID) {
		response.Error(c, http.StatusForbidden, ErrNotTeamMember)
		return
	}
	if !utils.CanSubmit(team.Hackathon, time.Now()) {
		response.Error(c, http.StatusForbidden, ErrSubmissionWindow)
		return
	}

	var req UpsertSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	var count int64
	database.DB.Model(&models.Category{}).
		Where("id = ? AND hackathon_id = ?", req.CategoryID, team.HackathonID).
		Count(&count)
	if count == 0 {
		response.Error(c, http.StatusBadRequest, ErrInvalidCategory)
		return
	}

	submission := models.Submission{
		TeamID:      team.ID,
		HackathonID: team.HackathonID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		RepoURL:     req.RepoURL,
		DemoURL:     req.DemoURL,
		Summary:     req.Summary,
	}

	// One submission per team: conflicts on team_id update the editable
	// fields only, leaving status and last_submitted_at untouched
	err = database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "team_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"category_id", "name", "repo_url", "demo_url", "summary", "updated_at",
		}),
	}).Create(&submission).Error
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedSave)
		return
	}

	var saved models.Submission
	if err := database.DB.Preload("Category").Where("team_id = ?", team.ID).First(&saved).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// SubmitProject marks a submission as submitted and stamps the submission time
// @Summary Submit project
// @Description Mark the submission as submitted; repeatable, each call refreshes last_submitted_at
// @Tags Submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} models.Submission
// @Failure 401,403,404,500 {object} map[string]string
// @Router /submissions/{id}/submit [post]
// @Security Bearer
func SubmitProject(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var submission models.Submission
	if err := database.DB.First(&submission, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrSubmissionNotFound)
		return
	}

	if !services.IsTeamMember(user.ID, submission.TeamID) {
		response.Error(c, http.StatusForbidden, ErrNotTeamMember)
		return
	}

	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, "id = ?", submission.HackathonID).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	if !utils.CanSubmit(&hackathon, time.Now()) {
		response.Error(c, http.StatusForbidden, ErrSubmissionWindow)
		return
	}

	now := time.Now()
	submission.Status = models.SubmissionStatusSubmitted
	submission.LastSubmittedAt = &now
	if err := database.DB.Model(&submission).Updates(map[string]interface{}{
		"status":            models.SubmissionStatusSubmitted,
		"last_submitted_at": now,
	}).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedSubmit)
		return
	}
	c.JSON(http.StatusOK, submission)
}
