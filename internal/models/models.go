package models

import "fmt"

// Team is one league member as reported by the team data provider. The
// lottery engine only ever looks at ID; everything else is carried through
// untouched for presentation.
type Team struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Avatar        string   `json:"avatar,omitempty"`
	Wins          int      `json:"wins"`
	Losses        int      `json:"losses"`
	Ties          int      `json:"ties"`
	PointsFor     float64  `json:"points_for"`
	PointsAgainst *float64 `json:"points_against,omitempty"`
}

// Record renders the win-loss(-tie) line the way league pages print it.
func (t Team) Record() string {
	if t.Ties > 0 {
		return fmt.Sprintf("%d-%d-%d", t.Wins, t.Losses, t.Ties)
	}
	return fmt.Sprintf("%d-%d", t.Wins, t.Losses)
}
