// Package observability emits best-effort use-case events from the roll
// service. Emission never affects use-case outcomes: a nil emitter or nil
// sink is a no-op.
package observability

import (
	"context"
	"time"

	"github.com/louisbranch/dicebox/internal/dice"
)

// Outcome classifies how a use case ended.
type Outcome string

const (
	OutcomeSuccess            Outcome = "success"
	OutcomeValidationFailure  Outcome = "validation_failure"
	OutcomePersistenceFailure Outcome = "persistence_failure"
	OutcomeNotFound           Outcome = "not_found"
)

// Event describes one completed use-case invocation.
type Event struct {
	UseCase   string
	Outcome   Outcome
	Duration  time.Duration
	RollID    string
	Results   []dice.RolledDie
	Timestamp time.Time
}

// Sink accepts events; implementations must not block on slow exporters.
type Sink interface {
	Record(ctx context.Context, evt Event)
}

// Emitter records use-case events through a sink.
type Emitter struct {
	sink  Sink
	clock func() time.Time
}

// NewEmitter creates a new event emitter.
func NewEmitter(sink Sink) *Emitter {
	return &Emitter{sink: sink, clock: time.Now}
}

// Emit records an event. It is a no-op when the emitter or sink is nil.
func (e *Emitter) Emit(ctx context.Context, evt Event) {
	if e == nil || e.sink == nil {
		return
	}
	if evt.Timestamp.IsZero() {
		if e.clock == nil {
			evt.Timestamp = time.Now().UTC()
		} else {
			evt.Timestamp = e.clock().UTC()
		}
	}
	e.sink.Record(ctx, evt)
}
