// Package roll implements the create and fetch use cases for dice rolls.
//
// The service depends only on ports: a dice.Roller for randomness, a
// storage.RollStore for persistence, an IDSource for identifiers and an
// observability emitter for events. Concrete adapters are injected at
// composition time.
package roll

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/louisbranch/dicebox/internal/dice"
	"github.com/louisbranch/dicebox/internal/observability"
	"github.com/louisbranch/dicebox/internal/storage"
)

const (
	useCaseCreateRoll = "create_roll"
	useCaseGetRoll    = "get_roll"
)

// ErrIDConflict indicates a freshly generated identifier collided with a
// persisted roll. Identifiers are generated to avoid this, so a conflict is
// an internal invariant violation; the service never retries with a new
// identifier because that would silently change the returned outcome.
var ErrIDConflict = errors.New("roll id conflict")

// IDSource produces fresh, time-sortable, collision-resistant identifiers.
type IDSource interface {
	NewID() (string, error)
}

// Service orchestrates roll creation and retrieval.
type Service struct {
	store   storage.RollStore
	roller  dice.Roller
	ids     IDSource
	emitter *observability.Emitter
	clock   func() time.Time
}

// NewService creates a roll service from its ports. The emitter may be nil.
func NewService(store storage.RollStore, roller dice.Roller, ids IDSource, emitter *observability.Emitter) *Service {
	return &Service{
		store:   store,
		roller:  roller,
		ids:     ids,
		emitter: emitter,
		clock:   time.Now,
	}
}

// CreateRoll resolves the requested dice, persists the outcome under a fresh
// identifier and returns the stored record.
//
// Validation failures (no dice, unknown die type) surface dice package
// errors and touch neither the roller nor the store. Persistence failures
// surface storage.ErrUnavailable as-is so callers can decide whether to
// retry; this service never retries on its own.
func (s *Service) CreateRoll(ctx context.Context, requested []dice.DieType) (storage.DiceRoll, error) {
	start := s.now()

	results, err := dice.Resolve(requested, s.roller)
	if err != nil {
		s.emit(ctx, observability.Event{
			UseCase:  useCaseCreateRoll,
			Outcome:  observability.OutcomeValidationFailure,
			Duration: s.now().Sub(start),
		})
		return storage.DiceRoll{}, err
	}

	rollID, err := s.ids.NewID()
	if err != nil {
		s.emit(ctx, observability.Event{
			UseCase:  useCaseCreateRoll,
			Outcome:  observability.OutcomePersistenceFailure,
			Duration: s.now().Sub(start),
		})
		return storage.DiceRoll{}, fmt.Errorf("generate roll id: %w", err)
	}

	// Creation time is millisecond precision so it round-trips exactly
	// through stores that persist Unix millis.
	record := storage.DiceRoll{
		ID:        rollID,
		Results:   results,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.store.SaveRoll(ctx, record); err != nil {
		s.emit(ctx, observability.Event{
			UseCase:  useCaseCreateRoll,
			Outcome:  observability.OutcomePersistenceFailure,
			Duration: s.now().Sub(start),
			RollID:   rollID,
		})
		if errors.Is(err, storage.ErrAlreadyExists) {
			log.Printf("roll id conflict for %s: %v", rollID, err)
			return storage.DiceRoll{}, fmt.Errorf("%w: %s", ErrIDConflict, rollID)
		}
		return storage.DiceRoll{}, fmt.Errorf("save roll: %w", err)
	}

	s.emit(ctx, observability.Event{
		UseCase:  useCaseCreateRoll,
		Outcome:  observability.OutcomeSuccess,
		Duration: s.now().Sub(start),
		RollID:   rollID,
		Results:  results,
	})
	return record, nil
}

// GetRoll returns a previously created roll unchanged. Absence surfaces
// storage.ErrNotFound; storage failures surface storage.ErrUnavailable.
func (s *Service) GetRoll(ctx context.Context, rollID string) (storage.DiceRoll, error) {
	start := s.now()

	record, err := s.store.GetRoll(ctx, rollID)
	if err != nil {
		outcome := observability.OutcomePersistenceFailure
		if errors.Is(err, storage.ErrNotFound) {
			outcome = observability.OutcomeNotFound
		}
		s.emit(ctx, observability.Event{
			UseCase:  useCaseGetRoll,
			Outcome:  outcome,
			Duration: s.now().Sub(start),
			RollID:   rollID,
		})
		return storage.DiceRoll{}, fmt.Errorf("get roll: %w", err)
	}

	s.emit(ctx, observability.Event{
		UseCase:  useCaseGetRoll,
		Outcome:  observability.OutcomeSuccess,
		Duration: s.now().Sub(start),
		RollID:   rollID,
	})
	return record, nil
}

func (s *Service) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock()
}

func (s *Service) emit(ctx context.Context, evt observability.Event) {
	s.emitter.Emit(ctx, evt)
}
