package roll

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"
	"time"

	dicev1 "github.com/louisbranch/dicebox/api/gen/go/dice/v1"
	"github.com/louisbranch/dicebox/internal/app"
	"github.com/louisbranch/dicebox/internal/dice"
)

func TestParseConfigNotation(t *testing.T) {
	fs := flag.NewFlagSet("roll", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"2d6", "d20"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	want := []dice.DieType{dice.D6, dice.D6, dice.D20}
	if len(cfg.Dice) != len(want) {
		t.Fatalf("dice len = %d, want %d", len(cfg.Dice), len(want))
	}
	for i, die := range cfg.Dice {
		if die != want[i] {
			t.Fatalf("dice[%d] = %v, want %v", i, die, want[i])
		}
	}
	if cfg.Addr != "localhost:8090" {
		t.Fatalf("addr = %q, want localhost:8090", cfg.Addr)
	}
}

func TestParseConfigRejectsMissingNotation(t *testing.T) {
	fs := flag.NewFlagSet("roll", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error for missing notation")
	}
}

func TestParseConfigRejectsBadNotation(t *testing.T) {
	fs := flag.NewFlagSet("roll", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"d7"}); err == nil {
		t.Fatal("expected error for unknown die")
	}
}

func TestParseConfigGetMode(t *testing.T) {
	fs := flag.NewFlagSet("roll", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-get", "roll-1"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.RollID != "roll-1" {
		t.Fatalf("roll id = %q, want roll-1", cfg.RollID)
	}
	if len(cfg.Dice) != 0 {
		t.Fatalf("dice len = %d, want 0", len(cfg.Dice))
	}
}

func TestParseConfigGetRejectsNotation(t *testing.T) {
	fs := flag.NewFlagSet("roll", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-get", "roll-1", "d20"}); err == nil {
		t.Fatal("expected error for -get with notation")
	}
}

func TestPrintRoll(t *testing.T) {
	var buf bytes.Buffer
	printRoll(&buf, "roll-1", []*dicev1.RolledDie{
		{Die: dicev1.DieType_DIE_TYPE_D6, Value: 3},
		{Die: dicev1.DieType_DIE_TYPE_D20, Value: 17},
	}, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))

	out := buf.String()
	for _, want := range []string{"roll roll-1 d6 d20", "d6: 3", "d20: 17", "total: 20 (min 2, max 26)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunRollsAgainstServer(t *testing.T) {
	t.Setenv("DICEBOX_DB_PATH", app.DBPathMemory)

	srv, err := app.NewWithAddr("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	runCtx, runCancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() { serveDone <- srv.Serve(runCtx) }()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Fatalf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for server shutdown")
		}
	})

	fs := flag.NewFlagSet("roll", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-addr", srv.Addr(), "2d6"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}

	var buf bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := Run(ctx, cfg, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(buf.String(), "total:") {
		t.Fatalf("output missing total:\n%s", buf.String())
	}
}
