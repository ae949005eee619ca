// Package config loads cmd/arena's settings from the environment,
// adapted from
// _examples/korjavin-virusgame/backend/cmd/bot-hoster/config.go's
// getEnv-with-default pattern.
package config

import (
	"os"
	"strconv"
)

// Config holds everything cmd/arena needs to run one or more matches.
type Config struct {
	ListenAddr string
	DBPath     string
	BotPath    string
	BoardWidth  int
	BoardHeight int
}

// Load reads FILLER_* environment variables, falling back to
// development-friendly defaults.
func Load() Config {
	width, _ := strconv.Atoi(getEnv("FILLER_BOARD_WIDTH", "20"))
	height, _ := strconv.Atoi(getEnv("FILLER_BOARD_HEIGHT", "20"))
	if width <= 0 {
		width = 20
	}
	if height <= 0 {
		height = 20
	}

	return Config{
		ListenAddr:  getEnv("FILLER_LISTEN_ADDR", ":8080"),
		DBPath:      getEnv("FILLER_DB_PATH", "./data/matches.db"),
		BotPath:     getEnv("FILLER_BOT_PATH", "./filler-bot"),
		BoardWidth:  width,
		BoardHeight: height,
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
