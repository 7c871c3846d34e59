package hackathons

import (
	"net/http"
	"strings"

	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/middleware"
	"github.com/tomaspozo/hackathon-platform/models"
	"github.com/tomaspozo/hackathon-platform/utils"
	"github.com/tomaspozo/hackathon-platform/utils/response"

	"github.com/gin-gonic/gin"
)

// RegisterForHackathon registers the authenticated user as a participant
// @Summary Register for a hackathon
// @Description Register the current user for the hackathon; once per hackathon
// @Tags Hackathons
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 201 {object} models.Participant
// @Failure 401,403,404,409,500 {object} map[string]string
// @Router /hackathons/{id}/registration [post]
// @Security Bearer
func RegisterForHackathon(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrHackathonNotFound)
		return
	}

	if !utils.CanRegister(&hackathon) {
		response.Error(c, http.StatusForbidden, ErrRegistrationClosed)
		return
	}

	participant := models.Participant{
		HackathonID: hackathon.ID,
		UserID:      user.ID,
	}
	if err := database.DB.Create(&participant).Error; err != nil {
		// The unique (hackathon, user) pair surfaces duplicates as a constraint error
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			response.Error(c, http.StatusConflict, ErrAlreadyRegistered)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrFailedRegister)
		return
	}
	c.JSON(http.StatusCreated, participant)
}

// LeaveHackathon removes the authenticated user's registration
// @Summary Leave a hackathon
// @Description Delete the current user's registration for the hackathon
// @Tags Hackathons
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {object} map[string]string
// @Failure 401,404,500 {object} map[string]string
// @Router /hackathons/{id}/registration [delete]
// @Security Bearer
func LeaveHackathon(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	result := database.DB.
		Where("hackathon_id = ? AND user_id = ?", c.Param("id"), user.ID).
		Delete(&models.Participant{})
	if result.Error != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to leave hackathon")
		return
	}
	if result.RowsAffected == 0 {
		response.Error(c, http.StatusNotFound, ErrNotRegistered)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registration removed"})
}

// CheckIfRegistered reports whether the current user is registered
// @Summary Check registration
// @Description Check if the current user is registered for the hackathon
// @Tags Hackathons
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Router /hackathons/{id}/registration [get]
// @Security Bearer
func CheckIfRegistered(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var count int64
	database.DB.Model(&models.Participant{}).
		Where("hackathon_id = ? AND user_id = ?", c.Param("id"), user.ID).
		Count(&count)
	c.JSON(http.StatusOK, gin.H{"registered": count > 0})
}

// GetMyHackathons lists the hackathons the current user registered for
// @Summary Get my hackathons
// @Description Get the current user's registrations with hackathon details, newest first
// @Tags Hackathons
// @Produce json
// @Success 200 {array} models.Participant
// @Failure 401,500 {object} map[string]string
// @Router /hackathons/registered [get]
// @Security Bearer
func GetMyHackathons(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var registrations []models.Participant
	if err := database.DB.
		Preload("Hackathon").
		Where("user_id = ?", user.ID).
		Order("registered_at DESC").
		Find(&registrations).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchHackathons)
		return
	}
	c.JSON(http.StatusOK, registrations)
}
