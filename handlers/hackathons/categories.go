package hackathons

import (
	"net/http"

	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/middleware"
	"github.com/tomaspozo/hackathon-platform/models"
	"github.com/tomaspozo/hackathon-platform/utils/response"

	"github.com/gin-gonic/gin"
)

// GetHackathonCategories lists the categories of a hackathon
// @Summary Get hackathon categories
// @Description Get all categories of a hackathon ordered by display order
// @Tags Hackathons
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {array} models.Category
// @Failure 401,500 {object} map[string]string
// @Router /hackathons/{id}/categories [get]
// @Security Bearer
func GetHackathonCategories(c *gin.Context) {
	var categories []models.Category
	if err := database.DB.
		Where("hackathon_id = ?", c.Param("id")).
		Order("display_order ASC").
		Find(&categories).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory adds a category to a hackathon (admin only)
// @Summary Create a category
// @Description Add a category to the hackathon
// @Tags Hackathons
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID"
// @Param request body CategoryRequest true "Category details"
// @Success 201 {object} models.Category
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /hackathons/{id}/categories [post]
// @Security Bearer
func CreateCategory(c *gin.Context) {
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

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	category := models.Category{
		HackathonID:  hackathon.ID,
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	}
	if err := database.DB.Create(&category).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory updates a category (admin only)
// @Summary Update a category
// @Description Update a hackathon category
// @Tags Hackathons
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID"
// @Param category_id path string true "Category ID"
// @Param request body CategoryRequest true "Category details"
// @Success 200 {object} models.Category
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /hackathons/{id}/categories/{category_id} [put]
// @Security Bearer
func UpdateCategory(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrNoPermissionManage)
		return
	}

	var category models.Category
	if err := database.DB.
		Where("id = ? AND hackathon_id = ?", c.Param("category_id"), c.Param("id")).
		First(&category).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrCategoryNotFound)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	category.Name = req.Name
	category.Description = req.Description
	category.DisplayOrder = req.DisplayOrder
	if err := database.DB.Save(&category).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category (admin only)
// @Summary Delete a category
// @Description Remove a category from the hackathon
// @Tags Hackathons
// @Produce json
// @Param id path string true "Hackathon ID"
// @Param category_id path string true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 401,403,404,500 {object} map[string]string
// @Router /hackathons/{id}/categories/{category_id} [delete]
// @Security Bearer
func DeleteCategory(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrNoPermissionManage)
		return
	}

	result := database.DB.
		Where("id = ? AND hackathon_id = ?", c.Param("category_id"), c.Param("id")).
		Delete(&models.Category{})
	if result.Error != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	if result.RowsAffected == 0 {
		response.Error(c, http.StatusNotFound, ErrCategoryNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
