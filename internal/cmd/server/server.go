// Package server parses dice server flags and launches the service.
package server

import (
	"context"
	"flag"

	"github.com/louisbranch/dicebox/internal/app"
	entrypoint "github.com/louisbranch/dicebox/internal/platform/cmd"
)

// Config holds dice server command configuration.
type Config struct {
	Port int `env:"DICEBOX_PORT" envDefault:"8090"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The dice gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the dice gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceServer, func(context.Context) error {
		return app.Run(ctx, cfg.Port)
	})
}
