// Command filler-bot plays a single game of filler over stdin/stdout,
// following the referee's line protocol (spec §6). All diagnostics go
// to stderr; stdout carries only protocol replies.
package main

import (
	"bufio"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/korjavin/filler/internal/engine"
	"github.com/korjavin/filler/internal/protocol"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	os.Exit(run())
}

func run() int {
	driver := protocol.NewDriver(bufio.NewReader(os.Stdin), bufio.NewWriter(os.Stdout))

	roles, err := driver.Handshake()
	if err != nil {
		log.Error().Err(err).Msg("handshake failed")
		_ = driver.WriteReply(nil)
		return 1
	}
	log.Info().Str("our", string(rune(roles.Our))).Msg("handshake resolved")

	var track engine.OpponentTrack
	turn := 0
	for {
		header, err := driver.AwaitTurn()
		if err != nil {
			// End of input is the normal way a game ends.
			return 0
		}

		board, piece, err := driver.ReadTurn(header)
		if err != nil {
			log.Error().Err(err).Int("turn", turn).Msg("malformed turn")
			return 2
		}

		anchor := engine.ChooseMove(board, piece, roles, &track)
		if anchor == nil {
			log.Warn().Int("turn", turn).Msg("no legal placement, forfeiting turn")
		}
		if err := driver.WriteReply(anchor); err != nil {
			log.Error().Err(err).Int("turn", turn).Msg("failed to write reply")
			return 2
		}
		turn++
	}
}
