package hackathons

import (
	"net/http"

	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/middleware"
	"github.com/tomaspozo/hackathon-platform/models"
	"github.com/tomaspozo/hackathon-platform/utils/response"

	"github.com/gin-gonic/gin"
)

// GetHackathonCriteria lists the judging criteria of a hackathon
// @Summary Get judging criteria
// @Description Get all judging criteria of a hackathon ordered by display order
// @Tags Hackathons
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {array} models.JudgingCriterion
// @Failure 401,500 {object} map[string]string
// @Router /hackathons/{id}/criteria [get]
// @Security Bearer
func GetHackathonCriteria(c *gin.Context) {
	var criteria []models.JudgingCriterion
	if err := database.DB.
		Where("hackathon_id = ?", c.Param("id")).
		Order("display_order ASC").
		Find(&criteria).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch judging criteria")
		return
	}
	c.JSON(http.StatusOK, criteria)
}

// CreateCriterion adds a judging criterion to a hackathon (admin only)
// @Summary Create a judging criterion
// @Description Add a weighted judging criterion to the hackathon
// @Tags Hackathons
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID"
// @Param request body CriterionRequest true "Criterion details"
// @Success 201 {object} models.JudgingCriterion
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /hackathons/{id}/criteria [post]
// @Security Bearer
func CreateCriterion(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrNoPermissionManage)
		return
	}

	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrHackathonNotFound)
		return
	}

	var req CriterionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}
	if req.Weight < 1 || req.Weight > 100 {
		response.Error(c, http.StatusBadRequest, ErrInvalidWeight)
		return
	}

	criterion := models.JudgingCriterion{
		HackathonID:  hackathon.ID,
		Name:         req.Name,
		Description:  req.Description,
		Weight:       req.Weight,
		DisplayOrder: req.DisplayOrder,
	}
	if err := database.DB.Create(&criterion).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create judging criterion")
		return
	}
	c.JSON(http.StatusCreated, criterion)
}

// UpdateCriterion updates a judging criterion (admin only)
// @Summary Update a judging criterion
// @Description Update a hackathon judging criterion
// @Tags Hackathons
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID"
// @Param criterion_id path string true "Criterion ID"
// @Param request body CriterionRequest true "Criterion details"
// @Success 200 {object} models.JudgingCriterion
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /hackathons/{id}/criteria/{criterion_id} [put]
// @Security Bearer
func UpdateCriterion(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrNoPermissionManage)
		return
	}

	var criterion models.JudgingCriterion
	if err := database.DB.
		Where("id = ? AND hackathon_id = ?", c.Param("criterion_id"), c.Param("id")).
		First(&criterion).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrCriterionNotFound)
		return
	}

	var req CriterionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}
	if req.Weight < 1 || req.Weight > 100 {
		response.Error(c, http.StatusBadRequest, ErrInvalidWeight)
		return
	}

	criterion.Name = req.Name
	criterion.Description = req.Description
	criterion.Weight = req.Weight
	criterion.DisplayOrder = req.DisplayOrder
	if err := database.DB.Save(&criterion).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to update judging criterion")
		return
	}
	c.JSON(http.StatusOK, criterion)
}

// DeleteCriterion removes a judging criterion (admin only)
// @Summary Delete a judging criterion
// @Description Remove a judging criterion from the hackathon
// @Tags Hackathons
// @Produce json
// @Param id path string true "Hackathon ID"
// @Param criterion_id path string true "Criterion ID"
// @Success 200 {object} map[string]string
// @Failure 401,403,404,500 {object} map[string]string
// @Router /hackathons/{id}/criteria/{criterion_id} [delete]
// @Security Bearer
func DeleteCriterion(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrNoPermissionManage)
		return
	}

	result := database.DB.
		Where("id = ? AND hackathon_id = ?", c.Param("criterion_id"), c.Param("id")).
		Delete(&models.JudgingCriterion{})
	if result.Error != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete judging criterion")
		return
	}
	if result.RowsAffected == 0 {
		response.Error(c, http.StatusNotFound, ErrCriterionNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Judging criterion deleted successfully"})
}
