package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/rs/zerolog"
)

// Server hosts battles against the CPU for TCP clients. Each connection
// gets its own session.
type Server struct {
	TeamFile string
	Port     string
	Log      zerolog.Logger
}

// Run listens until ctx is cancelled, serving every accepted connection.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	s.Log.Info().Str("addr", ln.Addr().String()).Msg("waiting for players")

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		go s.handleConn(ctx, conn)
	}
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	logger := s.Log.With().Str("remote", conn.RemoteAddr().String()).Logger()
	logger.Info().Msg("player connected")

	// Read the player's team choice
	dec := json.NewDecoder(conn)
	var join ClientMessage
	if err := dec.Decode(&join); err != nil {
		logger.Warn().Err(err).Msg("read join message")
		return
	}
	if err := s.serve(ctx, conn, dec, join); err != nil {
		logger.Warn().Err(err).Msg("session ended with error")
		return
	}
	logger.Info().Msg("player left")
}

// serve runs a session for an already-joined connection. dec is the decoder
// that read the join, or nil.
func (s *Server) serve(ctx context.Context, conn net.Conn, dec *json.Decoder, join ClientMessage) error {
	sess, err := NewSession(SessionConfig{
		TeamFile: s.TeamFile,
		Team:     join.Team,
		CPUTeam:  join.CPUTeam,
		Seed:     join.Seed,
		Diag:     s.Log,
	})
	if err != nil {
		_ = json.NewEncoder(conn).Encode(ServerMessage{Type: MsgError, Error: err.Error()})
		return err
	}
	return sess.Play(ctx, conn, dec)
}

// Play runs a local battle: the REPL client talks to an in-process
// session over a pipe.
func (s *Server) Play(ctx context.Context, join ClientMessage, client *Client) error {
	clientConn, serverConn := net.Pipe()
	client.conn = clientConn

	errCh := make(chan error, 1)
	go func() {
		defer serverConn.Close()
		errCh <- s.serve(ctx, serverConn, nil, join)
	}()

	err := client.RunREPL(ctx)
	clientConn.Close()
	if srvErr := <-errCh; srvErr != nil && !errors.Is(srvErr, io.EOF) && !errors.Is(srvErr, io.ErrClosedPipe) {
		s.Log.Debug().Err(srvErr).Msg("local session ended")
	}
	return err
}
