package net

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

// Team 1 sweeps team 2 in one hit; team 3 is a two-member roster.
const testTeams = `
teams:
  - name: "Sweeper"
    members:
      - species: mewtwo
        level: 100
        moves: [psychic, recover]
  - name: "Fodder"
    members:
      - species: machamp
        level: 5
        moves: [karate-chop]
  - name: "Pair"
    members:
      - species: snorlax
        moves: [body-slam, slack-off]
      - species: lapras
        moves: [surf, ice-beam]
`

func writeTeams(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teams.yaml")
	if err := os.WriteFile(path, []byte(testTeams), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestSession(t *testing.T, team, cpuTeam int) *Session {
	t.Helper()
	sess, err := NewSession(SessionConfig{
		TeamFile: writeTeams(t),
		Team:     team,
		CPUTeam:  cpuTeam,
		Seed:     11,
		Diag:     zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return sess
}
