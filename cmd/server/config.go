package main

import (
	"fmt"
	"strconv"

	"github.com/Mshel/gridsnake/internal/game"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "6996"

	defaultMaxConnectionsPerIP = 2
)

type serverConfig struct {
	Host                string
	Port                string
	PrivateKeyPath      string
	MaxConnectionsPerIP int
	LogLevel            string
	Game                game.Config
}

func loadServerConfig(getenv func(string) string) (serverConfig, error) {
	cfg := serverConfig{
		Host:                defaultHost,
		Port:                defaultPort,
		PrivateKeyPath:      getenv("SNAKE_PRIVATE_KEY_PATH"),
		MaxConnectionsPerIP: defaultMaxConnectionsPerIP,
		LogLevel:            getenv("SNAKE_LOG_LEVEL"),
	}
	if host := getenv("SNAKE_HOST"); host != "" {
		cfg.Host = host
	}
	if port := getenv("SNAKE_PORT"); port != "" {
		cfg.Port = port
	}
	if raw := getenv("SNAKE_MAX_CONNECTIONS_PER_IP"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return cfg, fmt.Errorf("SNAKE_MAX_CONNECTIONS_PER_IP=%q: must be a positive integer", raw)
		}
		cfg.MaxConnectionsPerIP = limit
	}

	gameCfg, err := game.ConfigFromEnv(getenv)
	if err != nil {
		return cfg, fmt.Errorf("game config: %w", err)
	}
	cfg.Game = gameCfg
	return cfg, nil
}
