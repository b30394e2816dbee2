// Package handlers exposes the lottery service over gin: league teams,
// drawing presets, lottery creation with its reveal stream, and odds
// previews.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/schne867/FFLottery/internal/drawing"
	"github.com/schne867/FFLottery/internal/models"
	"github.com/schne867/FFLottery/internal/reveal"
)

// TeamProvider fetches the teams of a league, worst record first.
type TeamProvider interface {
	LeagueTeams(ctx context.Context, leagueID string) ([]models.Team, error)
}

// Handler carries the wiring the routes need.
type Handler struct {
	Provider TeamProvider
	Manager  *reveal.Manager
	Drawing  *drawing.Config
	Log      *zap.Logger
}

// New builds a Handler. Drawing may be nil when no preset file is
// configured; the preset routes then answer 404.
func New(provider TeamProvider, manager *reveal.Manager, preset *drawing.Config, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		Provider: provider,
		Manager:  manager,
		Drawing:  preset,
		Log:      log,
	}
}

// Register mounts every route on g, typically the /api/v1 group.
func (h *Handler) Register(g *gin.RouterGroup) {
	g.GET("/teams/:leagueID", h.GetTeams)
	g.GET("/drawing", h.GetDrawing)
	g.POST("/lotteries", h.CreateLottery)
	g.GET("/lotteries/:id", h.GetLottery)
	g.POST("/lotteries/:id/skip", h.SkipLottery)
	g.GET("/lotteries/:id/ws", h.StreamLottery)
	g.POST("/odds", h.PreviewOdds)
}
