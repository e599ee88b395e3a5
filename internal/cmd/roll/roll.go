// Package roll implements the dice client command: it rolls dice notation
// against a running dice server or fetches a previous roll by identifier.
package roll

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	dicev1 "github.com/louisbranch/dicebox/api/gen/go/dice/v1"
	"github.com/louisbranch/dicebox/internal/dice"
	entrypoint "github.com/louisbranch/dicebox/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/dicebox/internal/platform/grpc"
)

var domainToProtoDie = map[dice.DieType]dicev1.DieType{
	dice.D3:   dicev1.DieType_DIE_TYPE_D3,
	dice.D4:   dicev1.DieType_DIE_TYPE_D4,
	dice.D6:   dicev1.DieType_DIE_TYPE_D6,
	dice.D8:   dicev1.DieType_DIE_TYPE_D8,
	dice.D10:  dicev1.DieType_DIE_TYPE_D10,
	dice.D12:  dicev1.DieType_DIE_TYPE_D12,
	dice.D20:  dicev1.DieType_DIE_TYPE_D20,
	dice.D100: dicev1.DieType_DIE_TYPE_D100,
}

var protoToDomainDie = func() map[dicev1.DieType]dice.DieType {
	out := make(map[dicev1.DieType]dice.DieType, len(domainToProtoDie))
	for domain, proto := range domainToProtoDie {
		out[proto] = domain
	}
	return out
}()

// Config holds roll command configuration.
type Config struct {
	Addr    string `env:"DICEBOX_ADDR" envDefault:"localhost:8090"`
	Timeout time.Duration
	RollID  string
	Dice    []dice.DieType
}

// ParseConfig parses environment, flags and dice notation arguments.
//
// Positional arguments are dice notation terms such as "2d6" or "d20";
// with -get no notation is expected.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "dice server address")
	fs.DurationVar(&cfg.Timeout, "timeout", 5*time.Second, "per-call timeout")
	fs.StringVar(&cfg.RollID, "get", "", "fetch an existing roll by identifier instead of rolling")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	notation := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if cfg.RollID != "" {
		if notation != "" {
			return Config{}, errors.New("-get does not take dice notation")
		}
		return cfg, nil
	}
	if notation == "" {
		return Config{}, errors.New("dice notation is required, e.g. \"2d6 d20\"")
	}
	requested, err := dice.ParseNotation(notation)
	if err != nil {
		return Config{}, err
	}
	cfg.Dice = requested
	return cfg, nil
}

// Run executes the roll command against the configured server.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRoll, func(ctx context.Context) error {
		conn, err := platformgrpc.DialWithHealth(ctx, nil, cfg.Addr, dicev1.DiceService_ServiceDesc.ServiceName,
			cfg.Timeout, nil, platformgrpc.DefaultClientDialOptions()...)
		if err != nil {
			return fmt.Errorf("connect to dice server: %w", err)
		}
		defer conn.Close()

		client := dicev1.NewDiceServiceClient(conn)
		callCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()

		if cfg.RollID != "" {
			resp, err := client.GetDiceRoll(callCtx, &dicev1.GetDiceRollRequest{RollId: cfg.RollID})
			if err != nil {
				return fmt.Errorf("get dice roll: %w", err)
			}
			printRoll(out, resp.GetRollId(), resp.GetResults(), resp.GetCreatedAt().AsTime())
			return nil
		}

		requested := make([]dicev1.DieType, 0, len(cfg.Dice))
		for _, die := range cfg.Dice {
			requested = append(requested, domainToProtoDie[die])
		}
		resp, err := client.RollDice(callCtx, &dicev1.RollDiceRequest{Dice: requested})
		if err != nil {
			return fmt.Errorf("roll dice: %w", err)
		}
		printRoll(out, resp.GetRollId(), resp.GetResults(), resp.GetCreatedAt().AsTime())
		return nil
	})
}

func printRoll(out io.Writer, rollID string, protoResults []*dicev1.RolledDie, createdAt time.Time) {
	results := make([]dice.RolledDie, 0, len(protoResults))
	for _, result := range protoResults {
		results = append(results, dice.RolledDie{
			Die:   protoToDomainDie[result.GetDie()],
			Value: int(result.GetValue()),
		})
	}

	requested := make([]dice.DieType, len(results))
	for i, result := range results {
		requested[i] = result.Die
	}

	fmt.Fprintf(out, "roll %s %s (%s)\n", rollID, dice.FormatNotation(requested), createdAt.Local().Format(time.RFC3339))
	for _, result := range results {
		fmt.Fprintf(out, "  %s: %d\n", result.Die, result.Value)
	}
	low, high := dice.Bounds(requested)
	fmt.Fprintf(out, "total: %d (min %d, max %d)\n", dice.Total(results), low, high)
}
