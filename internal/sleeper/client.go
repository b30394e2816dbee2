// Package sleeper is a read-only client for the public Sleeper fantasy
// API, the team data provider for drawings. It fetches league rosters and
// users and joins them into the flat team records the rest of the service
// consumes.
package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/schne867/FFLottery/internal/models"
)

const (
	// DefaultBaseURL is the public Sleeper API host.
	DefaultBaseURL = "https://api.sleeper.app"

	// avatarBase resolves Sleeper avatar IDs to image URLs.
	avatarBase = "https://sleepercdn.com/avatars/"

	requestTimeout = 15 * time.Second
)

// Client talks to one Sleeper-compatible API host. It never retries: the
// provider is expected to return a clean list or an error.
type Client struct {
	base string
	http *http.Client
	log  *zap.Logger
}

// NewClient builds a client for baseURL, or for the public Sleeper API
// when baseURL is empty.
func NewClient(baseURL string, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: requestTimeout},
		log:  log,
	}
}

// League is the subset of GET /v1/league/{id} the service uses.
type League struct {
	ID           string `json:"league_id"`
	Name         string `json:"name"`
	Season       string `json:"season"`
	Status       string `json:"status"`
	TotalRosters int    `json:"total_rosters"`
}

// RosterSettings carries a roster's record. Sleeper splits fantasy points
// into an integer part and a two-digit decimal part.
type RosterSettings struct {
	Wins               int `json:"wins"`
	Losses             int `json:"losses"`
	Ties               int `json:"ties"`
	FPTS               int `json:"fpts"`
	FPTSDecimal        int `json:"fpts_decimal"`
	FPTSAgainst        int `json:"fpts_against"`
	FPTSAgainstDecimal int `json:"fpts_against_decimal"`
}

// Roster is one slot in a league. OwnerID may be empty for abandoned
// rosters, which is why RosterID is the stable team identity.
type Roster struct {
	RosterID int            `json:"roster_id"`
	OwnerID  string         `json:"owner_id"`
	Settings RosterSettings `json:"settings"`
}

// User is a league member. Metadata may carry a custom team name.
type User struct {
	UserID      string            `json:"user_id"`
	DisplayName string            `json:"display_name"`
	Avatar      string            `json:"avatar"`
	Metadata    map[string]string `json:"metadata"`
}

// League fetches league metadata.
func (c *Client) League(ctx context.Context, leagueID string) (League, error) {
	var lg League
	if err := c.get(ctx, "/v1/league/"+leagueID, &lg); err != nil {
		return League{}, err
	}
	return lg, nil
}

// Rosters fetches the league's rosters.
func (c *Client) Rosters(ctx context.Context, leagueID string) ([]Roster, error) {
	var rosters []Roster
	if err := c.get(ctx, "/v1/league/"+leagueID+"/rosters", &rosters); err != nil {
		return nil, err
	}
	return rosters, nil
}

// Users fetches the league's members.
func (c *Client) Users(ctx context.Context, leagueID string) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/v1/league/"+leagueID+"/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// LeagueTeams joins rosters to their owners and returns flat team records
// sorted worst record first, the order the weight tables expect.
func (c *Client) LeagueTeams(ctx context.Context, leagueID string) ([]models.Team, error) {
	rosters, err := c.Rosters(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("fetch rosters: %w", err)
	}
	users, err := c.Users(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	byID := make(map[string]User, len(users))
	for _, u := range users {
		byID[u.UserID] = u
	}

	teams := make([]models.Team, 0, len(rosters))
	for _, r := range rosters {
		owner := byID[r.OwnerID]
		name := owner.Metadata["team_name"]
		if name == "" {
			name = owner.DisplayName
		}
		if name == "" {
			name = "Team " + strconv.Itoa(r.RosterID)
		}
		avatar := ""
		if owner.Avatar != "" {
			avatar = avatarBase + owner.Avatar
		}
		pa := points(r.Settings.FPTSAgainst, r.Settings.FPTSAgainstDecimal)
		teams = append(teams, models.Team{
			ID:            strconv.Itoa(r.RosterID),
			Name:          name,
			Avatar:        avatar,
			Wins:          r.Settings.Wins,
			Losses:        r.Settings.Losses,
			Ties:          r.Settings.Ties,
			PointsFor:     points(r.Settings.FPTS, r.Settings.FPTSDecimal),
			PointsAgainst: &pa,
		})
	}

	sort.SliceStable(teams, func(i, j int) bool {
		wi := 2*teams[i].Wins + teams[i].Ties
		wj := 2*teams[j].Wins + teams[j].Ties
		if wi != wj {
			return wi < wj
		}
		return teams[i].PointsFor < teams[j].PointsFor
	})

	c.log.Info("fetched league teams",
		zap.String("league_id", leagueID),
		zap.Int("teams", len(teams)))
	return teams, nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("sleeper: build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sleeper: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sleeper: GET %s: unexpected status %s", path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("sleeper: decode %s: %w", path, err)
	}
	return nil
}

func points(whole, decimal int) float64 {
	return float64(whole) + float64(decimal)/100
}
