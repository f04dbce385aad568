package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	battlemcp "github.com/peterkuimelis/monbattle/internal/mcp"
	"github.com/rs/zerolog"
)

func main() {
	teams := flag.String("teams", "teams.yaml", "path to teams YAML file")
	debug := flag.Bool("debug", false, "log session diagnostics to stderr")
	flag.Parse()

	// stdout carries the MCP protocol, so diagnostics go to stderr.
	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	battlemcp.SetLogger(zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger())
	battlemcp.SetTeamsFile(*teams)

	s := server.NewMCPServer("monbattle", "1.0.0")
	battlemcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
