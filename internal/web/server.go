package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/peterkuimelis/monbattle/internal/game"
	battlenet "github.com/peterkuimelis/monbattle/internal/net"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:embed static
var staticFiles embed.FS

// SpeciesInfo is the JSON representation of a species for /api/species.
type SpeciesInfo struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Display   string         `json:"display"`
	Types     []string       `json:"types"`
	BaseStats map[string]int `json:"baseStats"`
	Abilities []string       `json:"abilities"`
	MovePool  []string       `json:"movePool"`
}

// Server is the monbattle web UI server. Every websocket connection plays
// its own battle against the CPU.
type Server struct {
	// Playback paces streamed events (zero value = net.DefaultDelay).
	Playback battlenet.Playback

	teamsFile string
	log       zerolog.Logger
	mux       *http.ServeMux
}

// NewServer creates a new web server.
func NewServer(teamsFile string, logger zerolog.Logger) *Server {
	s := &Server{
		teamsFile: teamsFile,
		log:       logger,
		mux:       http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f.(io.Reader))
	})

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	s.mux.HandleFunc("GET /api/species", s.handleSpecies)
	s.mux.HandleFunc("GET /api/teams", s.handleTeams)

	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) handleSpecies(w http.ResponseWriter, r *http.Request) {
	var species []SpeciesInfo
	for _, name := range game.SpeciesNames() {
		sp := game.SpeciesRegistry[name]
		stats := make(map[string]int, len(sp.BaseStats))
		for stat, v := range sp.BaseStats {
			stats[string(stat)] = v
		}
		species = append(species, SpeciesInfo{
			ID:        sp.ID,
			Name:      sp.Name,
			Display:   game.DisplayName(sp.Name),
			Types:     lo.Map(sp.Types, func(t game.Element, _ int) string { return string(t) }),
			BaseStats: stats,
			Abilities: sp.Abilities,
			MovePool:  sp.MovePool,
		})
	}
	writeJSON(w, species)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket accept")
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()

	var join battlenet.ClientMessage
	if err := wsjson.Read(ctx, conn, &join); err != nil || join.Type != battlenet.MsgJoin {
		conn.Close(websocket.StatusPolicyViolation, "expected join message")
		return
	}

	sess, err := battlenet.NewSession(battlenet.SessionConfig{
		TeamFile: s.teamsFile,
		Team:     join.Team,
		CPUTeam:  join.CPUTeam,
		Seed:     join.Seed,
		Diag:     s.log,
	})
	if err != nil {
		wsjson.Write(ctx, conn, battlenet.ServerMessage{Type: battlenet.MsgError, Error: err.Error()})
		conn.Close(websocket.StatusNormalClosure, "could not start battle")
		return
	}
	logger := s.log.With().Str("session", sess.ID).Str("remote", r.RemoteAddr).Logger()
	logger.Info().Msg("browser connected")

	if err := s.stream(ctx, conn, sess.Welcome()); err != nil {
		logger.Debug().Err(err).Msg("websocket write")
		return
	}

	for {
		var msg battlenet.ClientMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				logger.Info().Msg("browser left")
			default:
				if !errors.Is(err, context.Canceled) {
					logger.Debug().Err(err).Msg("websocket read")
				}
			}
			return
		}
		if err := s.stream(ctx, conn, sess.Handle(msg)); err != nil {
			logger.Debug().Err(err).Msg("websocket write")
			return
		}
	}
}

// stream sends reply's events one message at a time with playback pacing,
// then the reply itself without them.
func (s *Server) stream(ctx context.Context, conn *websocket.Conn, reply battlenet.ServerMessage) error {
	err := s.Playback.Play(ctx, reply.Events, func(ev battlenet.EventView) error {
		return wsjson.Write(ctx, conn, battlenet.ServerMessage{
			Type:    battlenet.MsgEvents,
			Session: reply.Session,
			Events:  []battlenet.EventView{ev},
		})
	})
	if err != nil {
		return err
	}
	if reply.Type == battlenet.MsgEvents && reply.State != nil {
		reply.Type = battlenet.MsgState
	}
	reply.Events = nil
	return wsjson.Write(ctx, conn, reply)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
