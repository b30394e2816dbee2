// Package reveal replays a finished lottery one pick at a time. The draw
// itself happens before a session starts; a session only controls when
// each already-decided pick becomes visible, counting down from the last
// pick to the first, with an optional delay between reveals and a skip
// that flushes the rest immediately.
package reveal

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/schne867/FFLottery/internal/lottery"
	"github.com/schne867/FFLottery/internal/models"
)

// DefaultDelay paces reveals when a session does not choose its own.
const DefaultDelay = 2 * time.Second

// Event is one message on the reveal stream.
type Event struct {
	// Type is "pick" while picks are being revealed and "complete" once
	// the full order is public.
	Type string `json:"type"`

	// PickNumber is the draft position being revealed; DisplayPosition is
	// where the event sits in the countdown (1 is revealed first).
	PickNumber      int          `json:"pick_number,omitempty"`
	DisplayPosition int          `json:"display_position,omitempty"`
	Team            *models.Team `json:"team,omitempty"`
}

// Snapshot is the catch-up view of a session: everything revealed so far.
type Snapshot struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Done       bool    `json:"done"`
	TotalPicks int     `json:"total_picks"`
	PacingMS   int     `json:"pacing_ms"`
	Events     []Event `json:"events"`
}

// Session replays one lottery result. All fields are fixed at creation;
// only the revealed prefix advances.
type Session struct {
	ID    uuid.UUID
	Name  string
	delay time.Duration
	picks []Event
	hub   *Hub
	log   *zap.Logger

	mu       sync.Mutex
	revealed []Event
	backlog  [][]byte
	finished bool

	skipOnce sync.Once
	skipc    chan struct{}
	done     chan struct{}
}

// NewSession prepares a reveal for res. Teams supplies the display record
// for each entry ID; entries without a team still reveal, just without
// one. A non-positive delay falls back to DefaultDelay; Skip can always
// collapse it.
func NewSession(name string, res lottery.Result, teams []models.Team, delay time.Duration, log *zap.Logger) *Session {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if log == nil {
		log = zap.NewNop()
	}

	byID := make(map[string]models.Team, len(teams))
	for _, t := range teams {
		byID[t.ID] = t
	}

	picks := make([]Event, 0, len(res))
	for _, p := range res.InDisplayOrder() {
		ev := Event{
			Type:            "pick",
			PickNumber:      p.Number,
			DisplayPosition: res.DisplayPosition(p.Number),
		}
		if t, ok := byID[p.Entry.ID]; ok {
			ev.Team = &t
		} else {
			ev.Team = &models.Team{ID: p.Entry.ID, Name: p.Entry.ID}
		}
		picks = append(picks, ev)
	}

	return &Session{
		ID:    uuid.New(),
		Name:  name,
		delay: delay,
		picks: picks,
		hub:   newHub(len(picks)+2, log),
		log:   log,
		skipc: make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Start begins the countdown in the background. Call it once.
func (s *Session) Start() {
	s.log.Info("reveal started",
		zap.String("session_id", s.ID.String()),
		zap.Int("picks", len(s.picks)),
		zap.Duration("delay", s.delay))
	go s.run()
}

func (s *Session) run() {
	for _, ev := range s.picks {
		select {
		case <-time.After(s.delay):
		case <-s.skipc:
		}
		s.publish(ev)
	}
	s.publish(Event{Type: "complete"})
	close(s.done)
	s.log.Info("reveal complete", zap.String("session_id", s.ID.String()))
}

// Skip flushes every remaining reveal immediately. Safe to call more than
// once and at any point in the countdown.
func (s *Session) Skip() {
	s.skipOnce.Do(func() {
		s.log.Info("reveal skipped", zap.String("session_id", s.ID.String()))
		close(s.skipc)
	})
}

// Done is closed once the complete event has been published.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Snapshot reports the revealed prefix for catch-up over plain HTTP.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := make([]Event, len(s.revealed))
	copy(events, s.revealed)
	return Snapshot{
		ID:         s.ID.String(),
		Name:       s.Name,
		Done:       s.finished,
		TotalPicks: len(s.picks),
		PacingMS:   int(s.delay / time.Millisecond),
		Events:     events,
	}
}

// Attach subscribes conn to the stream: the backlog is replayed first,
// then live events follow with no gap or duplication.
func (s *Session) Attach(conn *websocket.Conn) {
	s.mu.Lock()
	backlog := make([][]byte, len(s.backlog))
	copy(backlog, s.backlog)
	s.hub.attach(conn, backlog)
	s.mu.Unlock()
}

func (s *Session) publish(ev Event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		s.log.Error("marshal reveal event", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.revealed = append(s.revealed, ev)
	s.backlog = append(s.backlog, msg)
	if ev.Type == "complete" {
		s.finished = true
	}
	s.hub.broadcast(msg)
	s.mu.Unlock()

	if ev.Type == "pick" {
		s.log.Debug("revealed pick",
			zap.String("session_id", s.ID.String()),
			zap.Int("pick", ev.PickNumber),
			zap.String("team", ev.Team.ID))
	}
}

func (s *Session) shutdown() {
	s.Skip()
	s.hub.shutdown()
}

// Manager keeps recent sessions in memory, evicting the oldest once the
// capacity is reached. There is no persistence; a restart forgets every
// drawing, which is acceptable for a tool that runs one night a year.
type Manager struct {
	log *zap.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	order    []uuid.UUID
	capacity int
}

// DefaultCapacity bounds how many sessions a Manager retains.
const DefaultCapacity = 32

// NewManager builds a Manager holding at most capacity sessions.
func NewManager(capacity int, log *zap.Logger) *Manager {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		log:      log,
		sessions: make(map[uuid.UUID]*Session),
		capacity: capacity,
	}
}

// Add registers a session, evicting the oldest one over capacity.
func (m *Manager) Add(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	m.order = append(m.order, s.ID)
	for len(m.order) > m.capacity {
		oldest := m.order[0]
		m.order = m.order[1:]
		if old, ok := m.sessions[oldest]; ok {
			delete(m.sessions, oldest)
			old.shutdown()
			m.log.Info("evicted reveal session", zap.String("session_id", oldest.String()))
		}
	}
}

// Get looks a session up by ID.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}
