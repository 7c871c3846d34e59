package hackathons

import (
	"net/http"

	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/middleware"
	"github.com/tomaspozo/hackathon-platform/models"
	"github.com/tomaspozo/hackathon-platform/utils"
	"github.com/tomaspozo/hackathon-platform/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetOpenHackathons lists hackathons currently open for registration
// @Summary Get open hackathons
// @Description Get hackathons whose status is OPEN or STARTED, ordered by start date
// @Tags Hackathons
// @Produce json
// @Success 200 {array} models.Hackathon
// @Failure 500 {object} map[string]string
// @Router /hackathons/open [get]
func GetOpenHackathons(c *gin.Context) {
	var hackathons []models.Hackathon
	if err := database.DB.
		Where("status IN ?", []string{models.HackathonStatusOpen, models.HackathonStatusStarted}).
		Order("start_at ASC").
		Find(&hackathons).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchHackathons)
		return
	}
	c.JSON(http.StatusOK, hackathons)
}

// GetActiveHackathon returns the hackathon currently flagged as active
// @Summary Get active hackathon
// @Description Get the single hackathon flagged is_active, null when none
// @Tags Hackathons
// @Produce json
// @Success 200 {object} models.Hackathon
// @Failure 500 {object} map[string]string
// @Router /hackathons/active [get]
func GetActiveHackathon(c *gin.Context) {
	var hackathon models.Hackathon
	err := database.DB.Where("is_active = ?", true).First(&hackathon).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// No active hackathon is not a failure
			c.JSON(http.StatusOK, nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchHackathons)
		return
	}
	c.JSON(http.StatusOK, hackathon)
}

// GetAllHackathons lists every hackathon (admin only)
// @Summary Get all hackathons
// @Description Get all hackathons regardless of status
// @Tags Hackathons
// @Produce json
// @Success 200 {array} models.Hackathon
// @Failure 401,403 {object} map[string]string
// @Router /hackathons/ [get]
// @Security Bearer
func GetAllHackathons(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrNoPermissionManage)
		return
	}

	var hackathons []models.Hackathon
	if err := database.DB.Order("created_at DESC").Find(&hackathons).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchHackathons)
		return
	}
	c.JSON(http.StatusOK, hackathons)
}

// GetHackathon returns one hackathon with its categories and criteria
// @Summary Get a hackathon
// @Description Get a hackathon by ID with categories and judging criteria
// @Tags Hackathons
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {object} models.Hackathon
// @Failure 401,404 {object} map[string]string
// @Router /hackathons/{id} [get]
// @Security Bearer
func GetHackathon(c *gin.Context) {
	var hackathon models.Hackathon
	if err := database.DB.
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC") }).
		Preload("Criteria", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC") }).
		First(&hackathon, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrHackathonNotFound)
		return
	}
	c.JSON(http.StatusOK, hackathon)
}

// CreateHackathon creates a new hackathon in DRAFT status (admin only)
// @Summary Create a hackathon
// @Description Create a new hackathon; status starts as DRAFT
// @Tags Hackathons
// @Accept json
// @Produce json
// @Param request body CreateHackathonRequest true "Hackathon details"
// @Success 201 {object} models.Hackathon
// @Failure 400,401,403,500 {object} map[string]string
// @Router /hackathons/ [post]
// @Security Bearer
func CreateHackathon(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrNoPermissionManage)
		return
	}

	var req CreateHackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	hackathon := models.Hackathon{
		Name:                req.Name,
		Slug:                slug,
		Description:         req.Description,
		Status:              models.HackathonStatusDraft,
		StartAt:             req.StartAt,
		EndAt:               req.EndAt,
		RegistrationOpenAt:  req.RegistrationOpenAt,
		RegistrationCloseAt: req.RegistrationCloseAt,
	}
	if err := database.DB.Create(&hackathon).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedCreateHackathon)
		return
	}
	c.JSON(http.StatusCreated, hackathon)
}

// UpdateHackathon updates hackathon fields (admin only)
// @Summary Update a hackathon
// @Description Update hackathon details; status changes go through /status
// @Tags Hackathons
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID"
// @Param request body UpdateHackathonRequest true "Fields to update"
// @Success 200 {object} models.Hackathon
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /hackathons/{id} [put]
// @Security Bearer
func UpdateHackathon(c *gin.Context) {
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

	var req UpdateHackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if req.Name != nil {
		hackathon.Name = *req.Name
	}
	if req.Slug != nil {
		hackathon.Slug = *req.Slug
	}
	if req.Description != nil {
		hackathon.Description = req.Description
	}
	if req.StartAt != nil {
		hackathon.StartAt = *req.StartAt
	}
	if req.EndAt != nil {
		hackathon.EndAt = *req.EndAt
	}
	if req.RegistrationOpenAt != nil {
		hackathon.RegistrationOpenAt = req.RegistrationOpenAt
	}
	if req.RegistrationCloseAt != nil {
		hackathon.RegistrationCloseAt = req.RegistrationCloseAt
	}

	if err := database.DB.Save(&hackathon).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedUpdateHackathon)
		return
	}
	c.JSON(http.StatusOK, hackathon)
}

// UpdateHackathonStatus changes the lifecycle status (admin only).
// Transitions are admin-driven and unordered.
// @Summary Update hackathon status
// @Description Set the hackathon lifecycle status
// @Tags Hackathons
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} models.Hackathon
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /hackathons/{id}/status [put]
// @Security Bearer
func UpdateHackathonStatus(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrNoPermissionManage)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}
	if !models.ValidStatus(req.Status) {
		response.Error(c, http.StatusBadRequest, ErrInvalidStatus)
		return
	}

	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrHackathonNotFound)
		return
	}

	hackathon.Status = req.Status
	if err := database.DB.Save(&hackathon).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedUpdateHackathon)
		return
	}
	c.JSON(http.StatusOK, hackathon)
}

// ActivateHackathon flags a hackathon as the single active one (admin only).
// Clearing the previous flag and setting the new one happen in one
// transaction so at most one hackathon is ever active.
// @Summary Activate a hackathon
// @Description Make this hackathon the active one, clearing any other active flag
// @Tags Hackathons
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {object} models.Hackathon
// @Failure 401,403,404,500 {object} map[string]string
// @Router /hackathons/{id}/activate [put]
// @Security Bearer
func ActivateHackathon(c *gin.Context) {
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

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Hackathon{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&hackathon).Update("is_active", true).Error
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedActivateHackathon)
		return
	}

	hackathon.IsActive = true
	c.JSON(http.StatusOK, hackathon)
}

// DeleteHackathon removes a hackathon (admin only)
// @Summary Delete a hackathon
// @Description Delete a hackathon by ID
// @Tags Hackathons
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {object} map[string]string
// @Failure 401,403,404,500 {object} map[string]string
// @Router /hackathons/{id} [delete]
// @Security Bearer
func DeleteHackathon(c *gin.Context) {
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

	// The whole subtree goes in one transaction: team-scoped children first,
	// then teams, then the hackathon-scoped rows. The schema has no ON DELETE
	// CASCADE, so any row left behind would violate an FK on postgres.
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var teamIDs []string
		if err := tx.Model(&models.Team{}).
			Where("hackathon_id = ?", hackathon.ID).
			Pluck("id", &teamIDs).Error; err != nil {
			return err
		}

		if len(teamIDs) > 0 {
			for _, model := range []interface{}{
				&models.JudgingScore{},
				&models.JudgeAssignment{},
				&models.Submission{},
				&models.TeamInvite{},
				&models.TeamMember{},
			} {
				if err := tx.Where("team_id IN ?", teamIDs).Delete(model).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("id IN ?", teamIDs).Delete(&models.Team{}).Error; err != nil {
				return err
			}
		}

		for _, model := range []interface{}{
			&models.Participant{},
			&models.JudgingCriterion{},
			&models.Category{},
		} {
			if err := tx.Where("hackathon_id = ?", hackathon.ID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&hackathon).Error
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteHackathon)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hackathon deleted successfully"})
}
