package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleTeams = `
teams:
  - name: "Kanto Starters"
    members:
      - species: venusaur
        moves: [giga-drain, sludge-bomb, sleep-powder, toxic]
      - species: charizard
        level: 55
        moves: [flamethrower, air-slash]
  - name: "Random Pair"
    members:
      - species: pikachu
      - species: machamp
`

func TestParseTeamFile(t *testing.T) {
	tf, err := ParseTeamFile([]byte(sampleTeams))
	if err != nil {
		t.Fatalf("ParseTeamFile: %v", err)
	}
	if len(tf.Teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(tf.Teams))
	}

	members, err := tf.Teams[0].Build(newScriptedRNG(0.5))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if members[0].Name != "Venusaur" || members[0].Level != DefaultLevel || len(members[0].Moves) != 4 {
		t.Errorf("venusaur built wrong: %+v", members[0])
	}
	if members[1].Level != 55 || len(members[1].Moves) != 2 {
		t.Errorf("charizard built wrong: level=%d moves=%d", members[1].Level, len(members[1].Moves))
	}

	random, err := tf.Teams[1].Build(newScriptedRNG(0.5))
	if err != nil {
		t.Fatalf("Build random: %v", err)
	}
	for _, c := range random {
		if len(c.Moves) != MaxMoves {
			t.Errorf("%s: expected %d pool moves, got %d", c.Name, MaxMoves, len(c.Moves))
		}
	}
}

func TestTeamBuildErrors(t *testing.T) {
	entry := TeamEntry{Name: "bad", Members: []MemberEntry{{Species: "mewthree"}}}
	if _, err := entry.Build(newScriptedRNG(0.5)); err == nil {
		t.Error("expected unknown species error")
	}

	entry = TeamEntry{Name: "bad", Members: []MemberEntry{{Species: "pikachu", Moves: []string{"splash-zap"}}}}
	if _, err := entry.Build(newScriptedRNG(0.5)); err == nil {
		t.Error("expected unknown move error")
	}

	if _, err := (TeamEntry{Name: "empty"}).Build(newScriptedRNG(0.5)); err == nil {
		t.Error("expected empty team error")
	}
}

func TestTeamByNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.yaml")
	if err := os.WriteFile(path, []byte(sampleTeams), 0o644); err != nil {
		t.Fatal(err)
	}

	name, members, err := TeamByNumber(path, 2, newScriptedRNG(0.5))
	if err != nil {
		t.Fatalf("TeamByNumber: %v", err)
	}
	if name != "Random Pair" || len(members) != 2 {
		t.Errorf("got %q with %d members", name, len(members))
	}

	if _, _, err := TeamByNumber(path, 3, newScriptedRNG(0.5)); err == nil {
		t.Error("expected out-of-range error")
	}
	if _, _, err := TeamByNumber(filepath.Join(t.TempDir(), "missing.yaml"), 1, newScriptedRNG(0.5)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestRandomTeam(t *testing.T) {
	members, err := RandomTeam(6, newScriptedRNG(0.5).queueInts(3, 1, 4, 1, 5, 9))
	if err != nil {
		t.Fatalf("RandomTeam: %v", err)
	}
	if len(members) != 6 {
		t.Fatalf("expected 6 members, got %d", len(members))
	}
	seen := map[string]bool{}
	for _, c := range members {
		if seen[c.Species.Name] {
			t.Errorf("duplicate species %s", c.Species.Name)
		}
		seen[c.Species.Name] = true
	}
}
