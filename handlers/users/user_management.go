package users

import (
	"net/http"

	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/middleware"
	"github.com/tomaspozo/hackathon-platform/models"
	"github.com/tomaspozo/hackathon-platform/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllUsers lists all platform accounts (admin only)
// @Summary Get all users
// @Description Get all users with their roles and block status
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users [get]
// @Security Bearer
func GetAllUsers(c *gin.Context) {
	// Optional ?role= filter to list judges or participants
	query := database.DB.Order("created_at ASC")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToGetUsers)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ChangeUserRole assigns a platform role to a user (admin only)
// @Summary Change user role
// @Description Assign the admin, participant or judge role to a user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body ChangeRoleRequest true "New role"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/{id}/role [put]
// @Security Bearer
func ChangeUserRole(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}
	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	switch req.Role {
	case models.RoleAdmin, models.RoleParticipant, models.RoleJudge:
	default:
		response.Error(c, http.StatusBadRequest, ErrInvalidRole)
		return
	}

	targetID := c.Param("id")
	// An admin stripping their own role could lock the platform out of
	// administration entirely
	if targetID == user.ID {
		response.Error(c, http.StatusBadRequest, ErrCannotDemoteSelf)
		return
	}

	var target models.User
	if err := database.DB.First(&target, "id = ?", targetID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.Error(c, http.StatusNotFound, ErrUserNotFound)
		} else {
			response.Error(c, http.StatusInternalServerError, ErrFailedToGetUsers)
		}
		return
	}

	if err := database.DB.Model(&target).Update("role", req.Role).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateUser)
		return
	}
	target.Role = req.Role
	c.JSON(http.StatusOK, target)
}

// ToggleBlockUser flips a user's blocked flag (admin only)
// @Summary Toggle user block status
// @Description Block or unblock a user; blocked users cannot authenticate
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/{id}/block [put]
// @Security Bearer
func ToggleBlockUser(c *gin.Context) {
	var target models.User
	if err := database.DB.First(&target, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrUserNotFound)
		return
	}

	if err := database.DB.Model(&target).Update("blocked", !target.Blocked).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToUpdateUser)
		return
	}
	target.Blocked = !target.Blocked
	c.JSON(http.StatusOK, target)
}

// DeleteUser removes a user account (admin only)
// @Summary Delete user
// @Description Delete a user account; team memberships are removed with it
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/{id} [delete]
// @Security Bearer
func DeleteUser(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}
	// Admins cannot remove their own account
	if user.ID == c.Param("id") {
		response.Error(c, http.StatusForbidden, ErrNoPermissionDelete)
		return
	}

	var target models.User
	if err := database.DB.First(&target, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrUserNotFound)
		return
	}

	// Judge-scoped rows and password resets have FKs on users too; the schema
	// has no ON DELETE CASCADE, so everything is removed in one transaction
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("judge_id = ?", target.ID).Delete(&models.JudgingScore{}).Error; err != nil {
			return err
		}
		if err := tx.Where("judge_id = ?", target.ID).Delete(&models.JudgeAssignment{}).Error; err != nil {
			return err
		}
		for _, model := range []interface{}{
			&models.TeamMember{},
			&models.Participant{},
			&models.PasswordReset{},
		} {
			if err := tx.Where("user_id = ?", target.ID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&target).Error
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedToDeleteUser)
		return
	}
	response.Message(c, http.StatusOK, "User deleted")
}
