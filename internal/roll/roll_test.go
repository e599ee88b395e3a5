package roll

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/dicebox/internal/dice"
	"github.com/louisbranch/dicebox/internal/observability"
	"github.com/louisbranch/dicebox/internal/storage"
	"github.com/louisbranch/dicebox/internal/storage/memory"
	"github.com/louisbranch/dicebox/internal/storage/sqlite"
)

type stubRoller struct {
	values []int
	calls  int
}

func (r *stubRoller) Roll(die dice.DieType) int {
	value := r.values[r.calls%len(r.values)]
	r.calls++
	return value
}

type seqIDSource struct {
	mu   sync.Mutex
	next int
}

func (s *seqIDSource) NewID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("roll-%04d", s.next), nil
}

type failingStore struct {
	saveErr error
	getErr  error
	saves   int
}

func (s *failingStore) SaveRoll(context.Context, storage.DiceRoll) error {
	s.saves++
	return s.saveErr
}

func (s *failingStore) GetRoll(context.Context, string) (storage.DiceRoll, error) {
	return storage.DiceRoll{}, s.getErr
}

type captureSink struct {
	mu     sync.Mutex
	events []observability.Event
}

func (s *captureSink) Record(_ context.Context, evt observability.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
}

func newTestService(store storage.RollStore, roller dice.Roller, sink observability.Sink) *Service {
	return NewService(store, roller, &seqIDSource{}, observability.NewEmitter(sink))
}

// TestCreateRollStubbedScenario pins the request/result correspondence with a
// scripted roller: d6, d6, d20 resolved to 3, 5, 17.
func TestCreateRollStubbedScenario(t *testing.T) {
	store := memory.NewStore()
	sink := &captureSink{}
	svc := newTestService(store, &stubRoller{values: []int{3, 5, 17}}, sink)

	requested := []dice.DieType{dice.D6, dice.D6, dice.D20}
	created, err := svc.CreateRoll(context.Background(), requested)
	if err != nil {
		t.Fatalf("create roll: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	want := []dice.RolledDie{{Die: dice.D6, Value: 3}, {Die: dice.D6, Value: 5}, {Die: dice.D20, Value: 17}}
	if len(created.Results) != len(want) {
		t.Fatalf("results length = %d, want %d", len(created.Results), len(want))
	}
	for i, result := range created.Results {
		if result != want[i] {
			t.Fatalf("results[%d] = %+v, want %+v", i, result, want[i])
		}
	}

	fetched, err := svc.GetRoll(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get roll: %v", err)
	}
	if fetched.ID != created.ID || !fetched.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("fetched %+v, want %+v", fetched, created)
	}
	for i := range fetched.Results {
		if fetched.Results[i] != created.Results[i] {
			t.Fatalf("fetched results[%d] = %+v, want %+v", i, fetched.Results[i], created.Results[i])
		}
	}
	if got := fetched.Requested(); len(got) != len(requested) {
		t.Fatalf("requested len = %d, want %d", len(got), len(requested))
	} else {
		for i, die := range got {
			if die != requested[i] {
				t.Fatalf("requested[%d] = %v, want %v", i, die, requested[i])
			}
		}
	}

	if len(sink.events) != 2 {
		t.Fatalf("events = %d, want 2", len(sink.events))
	}
	if sink.events[0].Outcome != observability.OutcomeSuccess || sink.events[0].UseCase != "create_roll" {
		t.Fatalf("unexpected create event: %+v", sink.events[0])
	}
	if sink.events[0].RollID != created.ID {
		t.Fatalf("event roll id = %q, want %q", sink.events[0].RollID, created.ID)
	}
}

// TestCreateRollRejectsEmptyRequest verifies no port is touched on validation failure.
func TestCreateRollRejectsEmptyRequest(t *testing.T) {
	roller := &stubRoller{values: []int{1}}
	store := &failingStore{saveErr: errors.New("must not be called")}
	sink := &captureSink{}
	svc := newTestService(store, roller, sink)

	_, err := svc.CreateRoll(context.Background(), nil)
	if !errors.Is(err, dice.ErrNoDice) {
		t.Fatalf("error = %v, want %v", err, dice.ErrNoDice)
	}
	if roller.calls != 0 {
		t.Fatalf("roller calls = %d, want 0", roller.calls)
	}
	if store.saves != 0 {
		t.Fatalf("store saves = %d, want 0", store.saves)
	}
	if len(sink.events) != 1 || sink.events[0].Outcome != observability.OutcomeValidationFailure {
		t.Fatalf("unexpected events: %+v", sink.events)
	}
}

func TestCreateRollRejectsUnknownDieType(t *testing.T) {
	roller := &stubRoller{values: []int{1}}
	svc := newTestService(memory.NewStore(), roller, nil)

	_, err := svc.CreateRoll(context.Background(), []dice.DieType{dice.D6, dice.DieType(5)})
	if !errors.Is(err, dice.ErrUnknownDieType) {
		t.Fatalf("error = %v, want %v", err, dice.ErrUnknownDieType)
	}
	if roller.calls != 0 {
		t.Fatalf("roller calls = %d, want 0", roller.calls)
	}
}

func TestCreateRollSurfacesUnavailable(t *testing.T) {
	store := &failingStore{saveErr: storage.ErrUnavailable}
	sink := &captureSink{}
	svc := newTestService(store, &stubRoller{values: []int{4}}, sink)

	_, err := svc.CreateRoll(context.Background(), []dice.DieType{dice.D6})
	if !errors.Is(err, storage.ErrUnavailable) {
		t.Fatalf("error = %v, want %v", err, storage.ErrUnavailable)
	}
	if len(sink.events) != 1 || sink.events[0].Outcome != observability.OutcomePersistenceFailure {
		t.Fatalf("unexpected events: %+v", sink.events)
	}
}

func TestCreateRollTreatsIDConflictAsInternal(t *testing.T) {
	store := &failingStore{saveErr: storage.ErrAlreadyExists}
	svc := newTestService(store, &stubRoller{values: []int{4}}, nil)

	_, err := svc.CreateRoll(context.Background(), []dice.DieType{dice.D6})
	if !errors.Is(err, ErrIDConflict) {
		t.Fatalf("error = %v, want %v", err, ErrIDConflict)
	}
	// One save attempt only: never retried with a regenerated identifier.
	if store.saves != 1 {
		t.Fatalf("store saves = %d, want 1", store.saves)
	}
}

func TestGetRollMissingSurfacesNotFound(t *testing.T) {
	svc := newTestService(memory.NewStore(), &stubRoller{values: []int{1}}, nil)

	_, err := svc.GetRoll(context.Background(), "never-created")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestGetRollSurfacesUnavailable(t *testing.T) {
	store := &failingStore{getErr: storage.ErrUnavailable}
	svc := newTestService(store, &stubRoller{values: []int{1}}, nil)

	_, err := svc.GetRoll(context.Background(), "roll-0001")
	if !errors.Is(err, storage.ErrUnavailable) {
		t.Fatalf("error = %v, want %v", err, storage.ErrUnavailable)
	}
}

func TestGetRollIsIdempotent(t *testing.T) {
	svc := newTestService(memory.NewStore(), &stubRoller{values: []int{2, 9}}, nil)
	created, err := svc.CreateRoll(context.Background(), []dice.DieType{dice.D4, dice.D10})
	if err != nil {
		t.Fatalf("create roll: %v", err)
	}

	var previous storage.DiceRoll
	for i := 0; i < 5; i++ {
		got, err := svc.GetRoll(context.Background(), created.ID)
		if err != nil {
			t.Fatalf("get %d: %v", i, err)
		}
		if i > 0 {
			if got.ID != previous.ID || !got.CreatedAt.Equal(previous.CreatedAt) {
				t.Fatalf("read %d differs: %+v vs %+v", i, got, previous)
			}
			for j := range got.Results {
				if got.Results[j] != previous.Results[j] {
					t.Fatalf("read %d results differ at %d", i, j)
				}
			}
		}
		previous = got
	}
}

// TestConcurrentCreateRollsAreIndependent runs many concurrent creates and
// checks that every invocation gets a distinct identifier and its own results.
func TestConcurrentCreateRollsAreIndependent(t *testing.T) {
	store := memory.NewStore()
	roller, err := dice.NewRoller()
	if err != nil {
		t.Fatalf("new roller: %v", err)
	}
	svc := newTestService(store, roller, &captureSink{})

	const workers = 16
	var wg sync.WaitGroup
	ids := make([]string, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			created, err := svc.CreateRoll(context.Background(), []dice.DieType{dice.D20, dice.D6})
			if err != nil {
				errs[i] = err
				return
			}
			ids[i] = created.ID
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, workers)
	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("worker %d: %v", i, errs[i])
		}
		if seen[ids[i]] {
			t.Fatalf("duplicate id %q", ids[i])
		}
		seen[ids[i]] = true
	}
}

type failingIDSource struct{}

func (failingIDSource) NewID() (string, error) {
	return "", errors.New("entropy exhausted")
}

func TestCreateRollIDFailureEmitsEvent(t *testing.T) {
	t.Parallel()

	store := &failingStore{}
	sink := &captureSink{}
	svc := NewService(store, &stubRoller{values: []int{1}}, failingIDSource{}, observability.NewEmitter(sink))

	_, err := svc.CreateRoll(context.Background(), []dice.DieType{dice.D6})
	if err == nil {
		t.Fatal("expected id generation error")
	}
	if store.saves != 0 {
		t.Fatalf("store saves = %d, want 0", store.saves)
	}
	if len(sink.events) != 1 {
		t.Fatalf("events = %d, want 1", len(sink.events))
	}
	if sink.events[0].Outcome != observability.OutcomePersistenceFailure {
		t.Fatalf("event outcome = %q, want %q", sink.events[0].Outcome, observability.OutcomePersistenceFailure)
	}
}

func TestCreateRollRoundTripsThroughSQLite(t *testing.T) {
	t.Parallel()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "rolls.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := store.Close(); closeErr != nil {
			t.Fatalf("close store: %v", closeErr)
		}
	})

	svc := newTestService(store, &stubRoller{values: []int{3, 5, 17}}, nil)

	created, err := svc.CreateRoll(context.Background(), []dice.DieType{dice.D6, dice.D6, dice.D20})
	if err != nil {
		t.Fatalf("create roll: %v", err)
	}

	fetched, err := svc.GetRoll(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get roll: %v", err)
	}
	if fetched.ID != created.ID {
		t.Fatalf("fetched id = %q, want %q", fetched.ID, created.ID)
	}
	if !fetched.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("created_at round trip lost precision: created=%v fetched=%v", created.CreatedAt, fetched.CreatedAt)
	}
	for i := range fetched.Results {
		if fetched.Results[i] != created.Results[i] {
			t.Fatalf("fetched results[%d] = %+v, want %+v", i, fetched.Results[i], created.Results[i])
		}
	}
}

func TestCreateRollTimestampsAreUTC(t *testing.T) {
	svc := newTestService(memory.NewStore(), &stubRoller{values: []int{1}}, nil)
	now := time.Date(2026, time.March, 3, 23, 59, 0, 0, time.FixedZone("JST", 9*3600))
	svc.clock = func() time.Time { return now }

	created, err := svc.CreateRoll(context.Background(), []dice.DieType{dice.D6})
	if err != nil {
		t.Fatalf("create roll: %v", err)
	}
	if created.CreatedAt.Location() != time.UTC {
		t.Fatalf("created_at location = %v, want UTC", created.CreatedAt.Location())
	}
	if !created.CreatedAt.Equal(now) {
		t.Fatalf("created_at = %v, want %v", created.CreatedAt, now)
	}
}
