// Package storage defines persistence contracts for dice roll records.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/dicebox/internal/dice"
)

var (
	// ErrNotFound indicates no roll record exists for the identifier.
	ErrNotFound = errors.New("roll not found")
	// ErrAlreadyExists indicates a roll record with the identifier is already
	// persisted. Identifiers are generated to be unique, so this signals an
	// upstream bug rather than a normal race.
	ErrAlreadyExists = errors.New("roll already exists")
	// ErrUnavailable indicates the store cannot be reached or the write was
	// not durably committed.
	ErrUnavailable = errors.New("storage unavailable")
)

// DiceRoll is the write-once record of one resolved roll. Results preserve
// request order; once saved the record is never updated or deleted.
type DiceRoll struct {
	ID        string
	Results   []dice.RolledDie
	CreatedAt time.Time
}

// Requested returns the ordered die types the roll was created from.
func (r DiceRoll) Requested() []dice.DieType {
	requested := make([]dice.DieType, len(r.Results))
	for i, result := range r.Results {
		requested[i] = result.Die
	}
	return requested
}

// RollStore persists dice roll records keyed by identifier. Both operations
// are atomic per record: a reader never observes a roll with partial results.
type RollStore interface {
	// SaveRoll persists a roll exactly once. It returns ErrAlreadyExists on
	// an identifier collision and ErrUnavailable when the write cannot be
	// durably committed.
	SaveRoll(ctx context.Context, roll DiceRoll) error
	// GetRoll returns a previously saved roll, ErrNotFound when no record
	// exists, or ErrUnavailable on storage failures.
	GetRoll(ctx context.Context, id string) (DiceRoll, error)
}
