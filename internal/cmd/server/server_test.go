package server

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 8090 {
		t.Fatalf("port = %d, want 8090", cfg.Port)
	}
}

func TestParseConfigEnvOverride(t *testing.T) {
	t.Setenv("DICEBOX_PORT", "9191")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 9191 {
		t.Fatalf("port = %d, want 9191", cfg.Port)
	}
}

func TestParseConfigFlagBeatsEnv(t *testing.T) {
	t.Setenv("DICEBOX_PORT", "9191")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-port", "7007"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 7007 {
		t.Fatalf("port = %d, want 7007", cfg.Port)
	}
}
