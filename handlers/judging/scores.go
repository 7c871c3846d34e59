package judging

import (
	"net/http"

	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/middleware"
	"github.com/tomaspozo/hackathon-platform/models"
	"github.com/tomaspozo/hackathon-platform/realtime"
	"github.com/tomaspozo/hackathon-platform/services"
	"github.com/tomaspozo/hackathon-platform/utils/response"

	"github.com/gin-gonic/gin"
)

// UpsertScore records or revises a judge's score for a team criterion
// @Summary Save a judging score
// @Description Create or revise a score keyed by (hackathon, team, judge, criterion); last write wins
// @Tags Judging
// @Accept json
// @Produce json
// @Param request body ScoreRequest true "Score"
// @Success 200 {object} models.JudgingScore
// @Failure 400,401,403,500 {object} map[string]string
// @Router /judging/scores [put]
// @Security Bearer
func UpsertScore(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !user.IsJudge() && !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrNotAJudge)
		return
	}

	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}
	if req.Score < 0 || req.Score > 10 {
		response.Error(c, http.StatusBadRequest, ErrScoreOutOfRange)
		return
	}

	if !user.IsAdmin() && !services.IsAssignedJudge(req.HackathonID, user.ID, req.TeamID) {
		response.Error(c, http.StatusForbidden, ErrNotAssigned)
		return
	}

	var criterionCount int64
	database.DB.Model(&models.JudgingCriterion{}).
		Where("id = ? AND hackathon_id = ?", req.CriterionID, req.HackathonID).
		Count(&criterionCount)
	if criterionCount == 0 {
		response.Error(c, http.StatusBadRequest, ErrCriterionMismatch)
		return
	}

	score := models.JudgingScore{
		HackathonID: req.HackathonID,
		TeamID:      req.TeamID,
		JudgeID:     user.ID,
		CriterionID: req.CriterionID,
		Score:       req.Score,
		Notes:       req.Notes,
	}
	if err := services.UpsertJudgingScore(&score); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedSaveScore)
		return
	}

	go realtime.BroadcastScoreUpdate(realtime.ScoreUpdate{
		HackathonID: score.HackathonID,
		Score:       score,
		UpdateType:  "update",
	})

	c.JSON(http.StatusOK, score)
}

// GetMyScores lists the scores the calling judge has submitted for a hackathon
// @Summary Get my scores
// @Description Get the scores the calling judge has submitted for the hackathon
// @Tags Judging
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {array} models.JudgingScore
// @Failure 401,403,500 {object} map[string]string
// @Router /hackathons/{id}/scores/my [get]
// @Security Bearer
func GetMyScores(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !user.IsJudge() && !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrNotAJudge)
		return
	}

	var scores []models.JudgingScore
	if err := database.DB.
		Preload("Criterion").
		Where("hackathon_id = ? AND judge_id = ?", c.Param("id"), user.ID).
		Order("submitted_at DESC").
		Find(&scores).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	c.JSON(http.StatusOK, scores)
}

// DeleteScore removes a judging score (admin, or the judge who wrote it)
// @Summary Delete a judging score
// @Description Remove a score; the leaderboard cache is invalidated
// @Tags Judging
// @Produce json
// @Param id path string true "Score ID"
// @Success 200 {object} map[string]string
// @Failure 401,403,404,500 {object} map[string]string
// @Router /judging/scores/{id} [delete]
// @Security Bearer
func DeleteScore(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var score models.JudgingScore
	if err := database.DB.First(&score, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrScoreNotFound)
		return
	}

	if !user.IsAdmin() && score.JudgeID != user.ID {
		response.Error(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	if err := database.DB.Delete(&score).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteScore)
		return
	}
	services.InvalidateTeamScores(score.HackathonID)
	response.Message(c, http.StatusOK, "Score deleted")
}
