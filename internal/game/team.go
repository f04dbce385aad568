package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TeamFile represents the top-level YAML structure.
type TeamFile struct {
	Teams []TeamEntry `yaml:"teams"`
}

// TeamEntry represents a single team in the YAML file.
type TeamEntry struct {
	Name    string        `yaml:"name"`
	Members []MemberEntry `yaml:"members"`
}

// MemberEntry is one team slot. Moves may be omitted to draw from the pool.
type MemberEntry struct {
	Species string   `yaml:"species"`
	Level   int      `yaml:"level"`
	Moves   []string `yaml:"moves"`
}

// ParseTeamFile decodes a YAML team file.
func ParseTeamFile(data []byte) (TeamFile, error) {
	var tf TeamFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return tf, fmt.Errorf("parse team YAML: %w", err)
	}
	return tf, nil
}

// LoadTeamFile reads and decodes a YAML team file.
func LoadTeamFile(path string) (TeamFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TeamFile{}, err
	}
	return ParseTeamFile(data)
}

// Build creates fresh combatants for the entry.
func (e TeamEntry) Build(rng RNG) ([]*Combatant, error) {
	if len(e.Members) == 0 || len(e.Members) > MaxTeamSize {
		return nil, fmt.Errorf("team %q needs 1-%d members, got %d", e.Name, MaxTeamSize, len(e.Members))
	}
	members := make([]*Combatant, 0, len(e.Members))
	for _, m := range e.Members {
		c, err := BuildCombatant(m.Species, m.Level, m.Moves, rng)
		if err != nil {
			return nil, fmt.Errorf("team %q: %w", e.Name, err)
		}
		members = append(members, c)
	}
	return members, nil
}

// TeamByNumber returns the Nth team (1-indexed) from the team file.
func TeamByNumber(path string, n int, rng RNG) (string, []*Combatant, error) {
	tf, err := LoadTeamFile(path)
	if err != nil {
		return "", nil, err
	}
	if n < 1 || n > len(tf.Teams) {
		return "", nil, fmt.Errorf("team %d not found (have %d teams)", n, len(tf.Teams))
	}
	entry := tf.Teams[n-1]
	members, err := entry.Build(rng)
	if err != nil {
		return "", nil, err
	}
	return entry.Name, members, nil
}
