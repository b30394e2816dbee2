// Package drawing loads the drawing preset file: a YAML description of
// the entrants and the weight scheme for a planned lottery, so a draw can
// be configured once and re-run without rebuilding the request by hand.
package drawing

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/schne867/FFLottery/internal/lottery"
	"github.com/schne867/FFLottery/internal/models"
	"github.com/schne867/FFLottery/internal/weights"
)

// EntryConfig is one entrant in the preset, listed worst record first.
// Weight is only consulted for the custom distribution.
type EntryConfig struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Weight *int   `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// Config is a parsed preset file.
type Config struct {
	Name         string        `yaml:"name" json:"name"`
	Total        int           `yaml:"total" json:"total"`
	Distribution string        `yaml:"distribution" json:"distribution"`
	PacingMS     int           `yaml:"pacing_ms" json:"pacing_ms"`
	Entries      []EntryConfig `yaml:"entries" json:"entries"`
}

// Load reads and validates a preset file, applying defaults.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("drawing: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("drawing: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("drawing: %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the preset and fills in defaults. It is safe to call on
// a hand-built Config.
func (c *Config) Validate() error {
	if len(c.Entries) == 0 {
		return errors.New("no entries")
	}
	if c.Total < 0 {
		return fmt.Errorf("total %d is negative", c.Total)
	}
	if c.Total == 0 {
		c.Total = weights.DefaultTotal
	}
	if c.PacingMS < 0 {
		return fmt.Errorf("pacing_ms %d is negative", c.PacingMS)
	}
	if c.Distribution == "" {
		c.Distribution = string(weights.FixedTable)
	}
	dist, err := weights.Parse(c.Distribution)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(c.Entries))
	for i, e := range c.Entries {
		if e.ID == "" {
			return fmt.Errorf("entry %d has no id", i)
		}
		if _, ok := seen[e.ID]; ok {
			return fmt.Errorf("duplicate entry id %q", e.ID)
		}
		seen[e.ID] = struct{}{}

		if dist == weights.Custom {
			if e.Weight == nil {
				return fmt.Errorf("entry %q needs a weight for the custom distribution", e.ID)
			}
		} else if e.Weight != nil {
			return fmt.Errorf("entry %q sets a weight but distribution is %q", e.ID, dist)
		}
	}

	if dist == weights.Custom {
		ws := make([]int, len(c.Entries))
		for i, e := range c.Entries {
			ws[i] = *e.Weight
		}
		if err := weights.ValidateAssignment(ws); err != nil {
			return err
		}
	}
	return nil
}

// Assign produces the lottery entries the preset describes: custom presets
// use the listed weights, every other distribution is generated for the
// entry count.
func (c *Config) Assign() ([]lottery.Entry, error) {
	dist, err := weights.Parse(c.Distribution)
	if err != nil {
		return nil, err
	}

	entries := make([]lottery.Entry, len(c.Entries))
	if dist == weights.Custom {
		for i, e := range c.Entries {
			if e.Weight == nil {
				return nil, fmt.Errorf("entry %q has no weight", e.ID)
			}
			entries[i] = lottery.Entry{ID: e.ID, Weight: *e.Weight}
		}
		return entries, nil
	}

	ws, err := weights.ForCount(dist, len(c.Entries), c.Total)
	if err != nil {
		return nil, err
	}
	if err := weights.ValidateAssignment(ws); err != nil {
		return nil, err
	}
	for i, e := range c.Entries {
		entries[i] = lottery.Entry{ID: e.ID, Weight: ws[i]}
	}
	return entries, nil
}

// Teams exposes the preset entrants as team records for reveal displays.
func (c *Config) Teams() []models.Team {
	teams := make([]models.Team, len(c.Entries))
	for i, e := range c.Entries {
		name := e.Name
		if name == "" {
			name = e.ID
		}
		teams[i] = models.Team{ID: e.ID, Name: name}
	}
	return teams
}
