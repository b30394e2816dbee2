package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/schne867/FFLottery/internal/lottery"
	"github.com/schne867/FFLottery/internal/models"
	"github.com/schne867/FFLottery/internal/reveal"
	"github.com/schne867/FFLottery/internal/weights"
)

// TeamEntry is one entrant in a lottery request, listed worst record
// first. Weight is only consulted for the custom distribution.
type TeamEntry struct {
	ID     string `json:"id" binding:"required"`
	Name   string `json:"name,omitempty"`
	Weight *int   `json:"weight,omitempty"`
}

// createLotteryRequest is the JSON payload for starting a lottery. Either
// preset is true and the configured drawing file supplies the entrants, or
// teams carries them inline.
type createLotteryRequest struct {
	Preset       bool        `json:"preset,omitempty"`
	Name         string      `json:"name,omitempty"`
	Distribution string      `json:"distribution,omitempty"`
	Total        int         `json:"total,omitempty"`
	PacingMS     int         `json:"pacing_ms,omitempty"`
	Teams        []TeamEntry `json:"teams,omitempty"`
}

// upgrader allows any origin: the browser frontend is served from a
// different origin and CORS policy is enforced on the REST routes.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// CreateLottery handles POST /api/v1/lotteries
func (h *Handler) CreateLottery(c *gin.Context) {
	var req createLotteryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload: " + err.Error()})
		return
	}

	// 1) Resolve entrants and weights, from the preset file or the payload.
	var (
		entries []lottery.Entry
		teams   []models.Team
		name    = req.Name
		pacing  = req.PacingMS
		err     error
	)
	if req.Preset {
		if h.Drawing == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No drawing preset configured"})
			return
		}
		entries, err = h.Drawing.Assign()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		teams = h.Drawing.Teams()
		if name == "" {
			name = h.Drawing.Name
		}
		if pacing == 0 {
			pacing = h.Drawing.PacingMS
		}
	} else {
		entries, teams, err = assembleEntries(req.Teams, req.Distribution, req.Total)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	// 2) Run the full drawing up front; the reveal only paces publication.
	result, err := lottery.Run(entries, lottery.Options{})
	if err != nil {
		h.drawError(c, err)
		return
	}

	// 3) Register the reveal session and start its countdown.
	sess := reveal.NewSession(name, result, teams, time.Duration(pacing)*time.Millisecond, h.Log)
	h.Manager.Add(sess)
	sess.Start()

	c.JSON(http.StatusCreated, sess.Snapshot())
}

// GetLottery handles GET /api/v1/lotteries/:id
func (h *Handler) GetLottery(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot())
}

// SkipLottery handles POST /api/v1/lotteries/:id/skip
func (h *Handler) SkipLottery(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	sess.Skip()
	c.JSON(http.StatusOK, gin.H{"skipped": true})
}

// StreamLottery handles GET /api/v1/lotteries/:id/ws
func (h *Handler) StreamLottery(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.Log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	sess.Attach(conn)
}

// session resolves the :id parameter, answering the error itself when the
// ID is malformed or unknown.
func (h *Handler) session(c *gin.Context) (*reveal.Session, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lottery ID"})
		return nil, false
	}
	sess, ok := h.Manager.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lottery not found"})
		return nil, false
	}
	return sess, true
}

// assembleEntries turns inline team entries into weighted lottery entries:
// custom distributions take the listed weights, every other distribution
// is generated for the team count.
func assembleEntries(reqTeams []TeamEntry, distribution string, total int) ([]lottery.Entry, []models.Team, error) {
	if len(reqTeams) == 0 {
		return nil, nil, lottery.ErrEmptyInput
	}
	if distribution == "" {
		distribution = string(weights.FixedTable)
	}
	dist, err := weights.Parse(distribution)
	if err != nil {
		return nil, nil, err
	}
	if total <= 0 {
		total = weights.DefaultTotal
	}

	var ws []int
	if dist == weights.Custom {
		ws = make([]int, len(reqTeams))
		for i, te := range reqTeams {
			if te.Weight == nil {
				return nil, nil, errors.New("team " + te.ID + " needs a weight for the custom distribution")
			}
			ws[i] = *te.Weight
		}
	} else {
		for _, te := range reqTeams {
			if te.Weight != nil {
				return nil, nil, errors.New("team " + te.ID + " sets a weight but distribution is " + string(dist))
			}
		}
		ws, err = weights.ForCount(dist, len(reqTeams), total)
		if err != nil {
			return nil, nil, err
		}
	}
	if err := weights.ValidateAssignment(ws); err != nil {
		return nil, nil, err
	}

	entries := make([]lottery.Entry, len(reqTeams))
	teams := make([]models.Team, len(reqTeams))
	seen := make(map[string]struct{}, len(reqTeams))
	for i, te := range reqTeams {
		if te.ID == "" {
			return nil, nil, errors.New("every team needs an id")
		}
		if _, ok := seen[te.ID]; ok {
			return nil, nil, errors.New("duplicate team id " + te.ID)
		}
		seen[te.ID] = struct{}{}
		name := te.Name
		if name == "" {
			name = te.ID
		}
		entries[i] = lottery.Entry{ID: te.ID, Weight: ws[i]}
		teams[i] = models.Team{ID: te.ID, Name: name}
	}
	return entries, teams, nil
}

// drawError maps engine failures: bad input answers 400 with the engine's
// message, anything else is an internal fault that must be logged.
func (h *Handler) drawError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lottery.ErrEmptyInput),
		errors.Is(err, lottery.ErrNegativeWeight),
		errors.Is(err, lottery.ErrZeroTotalWeight):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.Log.Error("lottery run failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lottery failed: " + err.Error()})
	}
}
