package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schne867/FFLottery/internal/odds"
)

// oddsRequest is the JSON payload for an odds preview. The same team list
// shape as lottery creation; trials and seed are optional, and a fixed
// seed makes the estimate reproducible.
type oddsRequest struct {
	Teams        []TeamEntry `json:"teams" binding:"required"`
	Distribution string      `json:"distribution,omitempty"`
	Total        int         `json:"total,omitempty"`
	Trials       int         `json:"trials,omitempty"`
	Seed         *uint64     `json:"seed,omitempty"`
}

// PreviewOdds handles POST /api/v1/odds
func (h *Handler) PreviewOdds(c *gin.Context) {
	var req oddsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload: " + err.Error()})
		return
	}

	entries, _, err := assembleEntries(req.Teams, req.Distribution, req.Total)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var seed uint64
	if req.Seed != nil {
		seed = *req.Seed
	}
	report, err := odds.Estimate(entries, req.Trials, seed)
	if err != nil {
		h.drawError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
