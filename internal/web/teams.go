package web

import (
	"net/http"

	"github.com/peterkuimelis/monbattle/internal/game"
)

// TeamInfo is the JSON representation of a team for /api/teams.
type TeamInfo struct {
	Number  int          `json:"number"`
	Name    string       `json:"name"`
	Members []MemberInfo `json:"members"`
}

// MemberInfo is one team slot. Moves is empty when drawn at random.
type MemberInfo struct {
	Species string   `json:"species"`
	Level   int      `json:"level"`
	Moves   []string `json:"moves,omitempty"`
}

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	tf, err := game.LoadTeamFile(s.teamsFile)
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.teamsFile).Msg("load teams")
		http.Error(w, "could not read teams file", http.StatusInternalServerError)
		return
	}

	teams := make([]TeamInfo, 0, len(tf.Teams))
	for i, t := range tf.Teams {
		ti := TeamInfo{Number: i + 1, Name: t.Name}
		for _, m := range t.Members {
			level := m.Level
			if level <= 0 {
				level = game.DefaultLevel
			}
			ti.Members = append(ti.Members, MemberInfo{
				Species: game.DisplayName(m.Species),
				Level:   level,
				Moves:   m.Moves,
			})
		}
		teams = append(teams, ti)
	}
	writeJSON(w, teams)
}
