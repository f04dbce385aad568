package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	battlenet "github.com/peterkuimelis/monbattle/internal/net"
	"github.com/rs/zerolog"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "play":
		runPlay(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	case "join":
		runJoin(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  monbattle play  [--team N] [--cpu-team N] [--teams FILE] [--seed S] [--fast]")
	fmt.Println("  monbattle serve [--port P] [--teams FILE] [--debug]")
	fmt.Println("  monbattle join  [--team N] [--cpu-team N] [--addr ADDR] [--fast]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  play    Battle the CPU in this terminal")
	fmt.Println("  serve   Host CPU battles for remote players")
	fmt.Println("  join    Connect to a server and battle its CPU")
	fmt.Println()
	fmt.Println("Team 0 picks a random team.")
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

func playback(fast bool) battlenet.Playback {
	if fast {
		return battlenet.Instant
	}
	return battlenet.Playback{}
}

func runPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	team := fs.Int("team", 1, "your team number (from teams.yaml)")
	cpuTeam := fs.Int("cpu-team", 2, "the CPU's team number (from teams.yaml)")
	teamsFile := fs.String("teams", "teams.yaml", "path to teams file")
	seed := fs.Int64("seed", 0, "RNG seed (0 for random)")
	fast := fs.Bool("fast", false, "print narration without pauses")
	debug := fs.Bool("debug", false, "log engine diagnostics to stderr")
	fs.Parse(args)

	logger := zerolog.Nop()
	if *debug {
		logger = newLogger(true)
	}
	srv := &battlenet.Server{TeamFile: *teamsFile, Log: logger}
	client := battlenet.NewClient(os.Stdin, os.Stdout, playback(*fast))
	join := battlenet.ClientMessage{Type: battlenet.MsgJoin, Team: *team, CPUTeam: *cpuTeam, Seed: *seed}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := srv.Play(ctx, join, client); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	port := fs.String("port", "9000", "TCP port to listen on")
	teamsFile := fs.String("teams", "teams.yaml", "path to teams file")
	debug := fs.Bool("debug", false, "log engine diagnostics")
	fs.Parse(args)

	srv := &battlenet.Server{
		TeamFile: *teamsFile,
		Port:     *port,
		Log:      newLogger(*debug),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := srv.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runJoin(args []string) {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	team := fs.Int("team", 1, "your team number (from the server's teams.yaml)")
	cpuTeam := fs.Int("cpu-team", 2, "the CPU's team number")
	addr := fs.String("addr", "localhost:9000", "server address to connect to")
	seed := fs.Int64("seed", 0, "RNG seed (0 for random)")
	fast := fs.Bool("fast", false, "print narration without pauses")
	fs.Parse(args)

	client := battlenet.NewClient(os.Stdin, os.Stdout, playback(*fast))
	join := battlenet.ClientMessage{Team: *team, CPUTeam: *cpuTeam, Seed: *seed}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := battlenet.Connect(ctx, *addr, join, client); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
