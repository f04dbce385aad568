package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/peterkuimelis/monbattle/internal/game"
	"github.com/peterkuimelis/monbattle/internal/log"
	"github.com/rs/zerolog"
)

// RandomTeamSize is the roster size drawn when no team number is given.
const RandomTeamSize = 3

// SessionConfig describes a new battle session.
type SessionConfig struct {
	TeamFile string
	Team     int   // 1-indexed team number for the player; 0 = random
	CPUTeam  int   // 1-indexed team number for the CPU; 0 = random
	Seed     int64 // 0 = time-based
	Diag     zerolog.Logger
}

// Session owns one battle against the CPU. Intents are serialised by mu.
type Session struct {
	ID          string
	TeamName    string
	CPUTeamName string

	mu     sync.Mutex
	battle *game.Battle
	events *log.MemoryLogger
	diag   zerolog.Logger
}

// NewSession loads both teams and starts the battle.
func NewSession(cfg SessionConfig) (*Session, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	teamName, player, err := loadTeam(cfg.TeamFile, cfg.Team, rng)
	if err != nil {
		return nil, fmt.Errorf("load player team: %w", err)
	}
	cpuName, cpu, err := loadTeam(cfg.TeamFile, cfg.CPUTeam, rng)
	if err != nil {
		return nil, fmt.Errorf("load cpu team: %w", err)
	}

	id := uuid.NewString()
	diag := cfg.Diag.With().Str("session", id).Logger()
	events := log.NewMemoryLogger()
	b, err := game.NewBattle(game.BattleConfig{
		Player: player,
		CPU:    cpu,
		Logger: events,
		RNG:    rng,
		Diag:   diag,
	})
	if err != nil {
		return nil, err
	}

	diag.Info().
		Str("team", teamName).
		Str("cpu_team", cpuName).
		Int64("seed", seed).
		Msg("session started")

	return &Session{
		ID:          id,
		TeamName:    teamName,
		CPUTeamName: cpuName,
		battle:      b,
		events:      events,
		diag:        diag,
	}, nil
}

func loadTeam(path string, n int, rng game.RNG) (string, []*game.Combatant, error) {
	if n <= 0 || path == "" {
		members, err := game.RandomTeam(RandomTeamSize, rng)
		return "Random", members, err
	}
	return game.TeamByNumber(path, n, rng)
}

// Welcome returns the opening message: the send-out narration and the state.
func (s *Session) Welcome() ServerMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ServerMessage{
		Type:    MsgState,
		Session: s.ID,
		Events:  EventViews(s.events.Events()),
		State:   BuildStateView(s.battle),
	}
}

// State returns the current state view.
func (s *Session) State() *StateView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BuildStateView(s.battle)
}

// Over reports whether the current battle has ended.
func (s *Session) Over() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.battle.State.Over
}

// Handle applies one client message and returns the reply. Engine refusals
// come back as error messages; the battle is unchanged by them.
func (s *Session) Handle(msg ClientMessage) ServerMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch msg.Type {
	case MsgState, MsgJoin:
		return ServerMessage{Type: MsgState, Session: s.ID, State: BuildStateView(s.battle)}
	case MsgRematch:
		mark := len(s.events.Events())
		if err := s.battle.Rematch(); err != nil {
			return s.refuse(msg, err)
		}
		s.diag.Info().Msg("rematch")
		return ServerMessage{
			Type:    MsgEvents,
			Session: s.ID,
			Events:  EventViews(s.events.Events()[mark:]),
			State:   BuildStateView(s.battle),
		}
	}

	in, err := msg.Intent()
	if err != nil {
		return s.refuse(msg, err)
	}
	res, err := s.battle.Submit(in)
	if err != nil {
		return s.refuse(msg, err)
	}

	out := ServerMessage{
		Type:    MsgEvents,
		Session: s.ID,
		Events:  EventViews(res.Events),
		State:   BuildStateView(s.battle),
	}
	if res.Phase == game.PhaseEnded {
		out.Type = MsgBattleOver
		out.Winner = out.State.Winner
		out.Result = out.State.Result
		s.diag.Info().
			Str("winner", res.Winner.String()).
			Int("turns", s.battle.State.Turn).
			Msg("battle over")
	}
	return out
}

func (s *Session) refuse(msg ClientMessage, err error) ServerMessage {
	s.diag.Debug().Err(err).Str("type", msg.Type).Msg("intent refused")
	return ServerMessage{Type: MsgError, Session: s.ID, Error: err.Error(), State: BuildStateView(s.battle)}
}

// Play runs battles over conn with a NetworkController until the client
// declines a rematch or disconnects. dec, if non-nil, is a decoder that
// already read from conn.
func (s *Session) Play(ctx context.Context, conn net.Conn, dec *json.Decoder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctrl := NewNetworkController(conn, dec, s.battle)
	for {
		winner, err := s.battle.Run(ctx, ctrl)
		if err != nil {
			return err
		}
		s.diag.Info().
			Str("winner", winner.String()).
			Int("turns", s.battle.State.Turn).
			Msg("battle over")

		if err := ctrl.SendBattleOver(); err != nil {
			return err
		}
		again, err := ctrl.AwaitRematch()
		if errors.Is(err, io.EOF) || (err == nil && !again) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.battle.Rematch(); err != nil {
			return err
		}
		s.diag.Info().Msg("rematch")
	}
}
