package judging

import (
	"fmt"
	"log"
	"net/http"

	"github.com/tomaspozo/hackathon-platform/database"
	"github.com/tomaspozo/hackathon-platform/middleware"
	"github.com/tomaspozo/hackathon-platform/models"
	"github.com/tomaspozo/hackathon-platform/realtime"
	"github.com/tomaspozo/hackathon-platform/services"
	"github.com/tomaspozo/hackathon-platform/utils"
	"github.com/tomaspozo/hackathon-platform/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GetLeaderboard returns the aggregated per-team scores for a hackathon
// @Summary Get leaderboard
// @Description Get the aggregated team scores, ordered by total score descending
// @Tags Judging
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {array} services.TeamScore
// @Failure 401,404,500 {object} map[string]string
// @Router /hackathons/{id}/leaderboard [get]
// @Security Bearer
func GetLeaderboard(c *gin.Context) {
	if _, err := middleware.GetUserFromRequest(c); err != nil {
		return
	}

	hackathonID := c.Param("id")
	var count int64
	database.DB.Model(&models.Hackathon{}).Where("id = ?", hackathonID).Count(&count)
	if count == 0 {
		response.Error(c, http.StatusNotFound, ErrHackathonNotFound)
		return
	}

	scores, err := services.CachedTeamScores(c.Request.Context(), hackathonID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedLeaderboard)
		return
	}
	c.JSON(http.StatusOK, scores)
}

// ExportLeaderboard streams the leaderboard as an Excel file (admin only)
// @Summary Export leaderboard
// @Description Download the leaderboard as an .xlsx spreadsheet
// @Tags Judging
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Hackathon ID"
// @Success 200 {file} binary
// @Failure 401,403,404,500 {object} map[string]string
// @Router /hackathons/{id}/leaderboard/export [get]
// @Security Bearer
func ExportLeaderboard(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrHackathonNotFound)
		return
	}

	scores, err := services.ListTeamScores(hackathon.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedLeaderboard)
		return
	}

	buf, err := services.ExportTeamScoresExcel(hackathon.Name, scores)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedExport)
		return
	}

	filename := fmt.Sprintf("%s-leaderboard.xlsx", utils.Slugify(hackathon.Name))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// LeaderboardWebSocket streams live score updates for a hackathon
func LeaderboardWebSocket(c *gin.Context) {
	hackathonID := c.Param("id")

	var count int64
	database.DB.Model(&models.Hackathon{}).Where("id = ?", hackathonID).Count(&count)
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrHackathonNotFound})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	realtime.RegisterClient(hackathonID, conn)
	defer func() {
		realtime.UnregisterClient(hackathonID, conn)
		conn.Close()
	}()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
