// Package main runs the dice client command.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	rollcmd "github.com/louisbranch/dicebox/internal/cmd/roll"
	"github.com/louisbranch/dicebox/internal/platform/config"
)

func main() {
	cfg, err := rollcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("roll: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rollcmd.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("roll: %v", err)
	}
}
