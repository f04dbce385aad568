package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/peterkuimelis/monbattle/internal/web"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	teamsFile := flag.String("teams", "teams.yaml", "path to teams YAML file")
	debug := flag.Bool("debug", false, "log engine diagnostics")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	logger := zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	srv := web.NewServer(*teamsFile, logger)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info().Msgf("monbattle web UI listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
