// Command arena runs filler-bot matches and serves a websocket
// spectator feed, adapted from
// _examples/korjavin-virusgame/backend/main.go's hub-plus-http-server
// wiring.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/korjavin/filler/internal/arena"
	"github.com/korjavin/filler/internal/config"
	"github.com/korjavin/filler/internal/matchdb"
	"github.com/korjavin/filler/internal/names"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	cfg := config.Load()

	db, err := matchdb.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open match database")
	}
	defer db.Close()

	broadcaster := arena.NewBroadcaster()
	go broadcaster.Run()

	http.HandleFunc("/ws/", broadcaster.ServeWS)
	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("spectator server listening")
		if err := http.ListenAndServe(cfg.ListenAddr, nil); err != nil {
			log.Fatal().Err(err).Msg("spectator server failed")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("shutting down")
		cancel()
	}()

	if err := runMatch(ctx, cfg, db, broadcaster); err != nil {
		log.Error().Err(err).Msg("match failed")
		os.Exit(1)
	}
}

func runMatch(ctx context.Context, cfg config.Config, db *matchdb.DB, broadcaster *arena.Broadcaster) error {
	id := uuid.New().String()
	p1Name, p2Name := names.Generate(), names.Generate()

	log.Info().Str("match", id).Str("p1", p1Name).Str("p2", p2Name).
		Int("width", cfg.BoardWidth).Int("height", cfg.BoardHeight).
		Msg("starting match")

	m, err := arena.NewMatch(ctx, id, cfg.BotPath, cfg.BoardWidth, cfg.BoardHeight, p1Name, p2Name, broadcaster)
	if err != nil {
		return err
	}

	started := time.Now()
	result := m.Run()
	ended := time.Now()

	log.Info().Str("match", id).Int("winner", result.Winner).Int("turns", result.Turns).
		Str("termination", result.Termination).Msg("match finished")

	return db.SaveMatch(matchdb.Match{
		ID:          id,
		StartedAt:   started,
		EndedAt:     ended,
		Width:       cfg.BoardWidth,
		Height:      cfg.BoardHeight,
		Player1:     p1Name,
		Player2:     p2Name,
		Winner:      result.Winner,
		Turns:       result.Turns,
		Termination: result.Termination,
		Moves:       result.Moves,
	})
}
