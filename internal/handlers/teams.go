package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetTeams handles GET /api/v1/teams/:leagueID
func (h *Handler) GetTeams(c *gin.Context) {
	leagueID := c.Param("leagueID")
	if h.Provider == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No team provider configured"})
		return
	}
	teams, err := h.Provider.LeagueTeams(c.Request.Context(), leagueID)
	if err != nil {
		h.Log.Warn("league fetch failed", zap.String("league_id", leagueID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Sleeper fetch failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"league_id": leagueID, "teams": teams})
}

// GetDrawing handles GET /api/v1/drawing
func (h *Handler) GetDrawing(c *gin.Context) {
	if h.Drawing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No drawing preset configured"})
		return
	}
	c.JSON(http.StatusOK, h.Drawing)
}
