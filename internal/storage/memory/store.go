// Package memory provides an in-memory roll store for tests and for running
// the service without a configured database.
package memory

import (
	"context"
	"sync"

	"github.com/louisbranch/dicebox/internal/dice"
	"github.com/louisbranch/dicebox/internal/storage"
)

// Store keeps roll records in a mutex-guarded map.
type Store struct {
	mu    sync.RWMutex
	rolls map[string]storage.DiceRoll
}

// NewStore creates an empty in-memory roll store.
func NewStore() *Store {
	return &Store{rolls: make(map[string]storage.DiceRoll)}
}

// SaveRoll stores a copy of the roll record.
func (s *Store) SaveRoll(ctx context.Context, roll storage.DiceRoll) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rolls[roll.ID]; ok {
		return storage.ErrAlreadyExists
	}
	s.rolls[roll.ID] = cloneRoll(roll)
	return nil
}

// GetRoll returns a copy of the stored roll record.
func (s *Store) GetRoll(ctx context.Context, id string) (storage.DiceRoll, error) {
	if err := ctx.Err(); err != nil {
		return storage.DiceRoll{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	roll, ok := s.rolls[id]
	if !ok {
		return storage.DiceRoll{}, storage.ErrNotFound
	}
	return cloneRoll(roll), nil
}

// cloneRoll copies the results slice so callers cannot mutate stored state.
func cloneRoll(roll storage.DiceRoll) storage.DiceRoll {
	results := make([]dice.RolledDie, len(roll.Results))
	copy(results, roll.Results)
	roll.Results = results
	return roll
}

var _ storage.RollStore = (*Store)(nil)
