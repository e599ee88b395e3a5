// Package dice implements the dice domain model and roll resolution.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"sync"
)

// ErrNoDice indicates a roll request had no dice specified.
var ErrNoDice = errors.New("no dice specified")

// ErrUnknownDieType indicates a die type outside the supported set.
var ErrUnknownDieType = errors.New("unknown die type")

// DieType identifies one of the supported die shapes. The numeric value is
// the side count.
type DieType int

const (
	D3   DieType = 3
	D4   DieType = 4
	D6   DieType = 6
	D8   DieType = 8
	D10  DieType = 10
	D12  DieType = 12
	D20  DieType = 20
	D100 DieType = 100
)

// Types lists every supported die type in ascending side order.
func Types() []DieType {
	return []DieType{D3, D4, D6, D8, D10, D12, D20, D100}
}

// Sides returns the number of faces on the die.
func (d DieType) Sides() int {
	return int(d)
}

// Valid reports whether the die type belongs to the supported set.
func (d DieType) Valid() bool {
	switch d {
	case D3, D4, D6, D8, D10, D12, D20, D100:
		return true
	default:
		return false
	}
}

// String renders the die in standard notation, e.g. "d20".
func (d DieType) String() string {
	if !d.Valid() {
		return fmt.Sprintf("d?(%d)", int(d))
	}
	return fmt.Sprintf("d%d", int(d))
}

// ParseDieType parses standard die notation such as "d20".
func ParseDieType(value string) (DieType, error) {
	switch value {
	case "d3":
		return D3, nil
	case "d4":
		return D4, nil
	case "d6":
		return D6, nil
	case "d8":
		return D8, nil
	case "d10":
		return D10, nil
	case "d12":
		return D12, nil
	case "d20":
		return D20, nil
	case "d100":
		return D100, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDieType, value)
	}
}

// RolledDie is the outcome of rolling a single die. Value is always within
// [1, Die.Sides()].
type RolledDie struct {
	Die   DieType
	Value int
}

// Roller produces a uniformly distributed face value in [1, die.Sides()] for
// a die from the supported set. Implementations never see unknown die types;
// validation happens before any Roller call.
type Roller interface {
	Roll(die DieType) int
}

// Resolve rolls the requested dice in order, calling the roller exactly once
// per die. The result preserves positional correspondence with the input:
// out[i].Die == dice[i].
//
// An empty request returns ErrNoDice and an unknown die type returns
// ErrUnknownDieType; in both cases the roller is never called.
func Resolve(dice []DieType, roller Roller) ([]RolledDie, error) {
	if len(dice) == 0 {
		return nil, ErrNoDice
	}
	for _, die := range dice {
		if !die.Valid() {
			return nil, fmt.Errorf("%w: %d sides", ErrUnknownDieType, int(die))
		}
	}

	results := make([]RolledDie, len(dice))
	for i, die := range dice {
		results[i] = RolledDie{Die: die, Value: roller.Roll(die)}
	}
	return results, nil
}

// Total sums the face values of rolled dice.
func Total(results []RolledDie) int {
	total := 0
	for _, r := range results {
		total += r.Value
	}
	return total
}

// Bounds reports the lowest and highest totals the dice can produce (all
// ones and all maximum faces).
func Bounds(dice []DieType) (low, high int) {
	for _, die := range dice {
		low++
		high += die.Sides()
	}
	return low, high
}

// SeededRoller is a Roller backed by a math/rand generator. The generator is
// guarded by a mutex, so a single SeededRoller instance is safe for use by
// concurrent requests.
type SeededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRoller creates a SeededRoller seeded from crypto/rand.
func NewRoller() (*SeededRoller, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return NewRollerFromSeed(int64(binary.LittleEndian.Uint64(b[:]))), nil
}

// NewRollerFromSeed creates a deterministic SeededRoller for tests.
func NewRollerFromSeed(seed int64) *SeededRoller {
	return &SeededRoller{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a uniform face value in [1, die.Sides()].
func (r *SeededRoller) Roll(die DieType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(die.Sides()) + 1
}
