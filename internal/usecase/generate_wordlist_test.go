package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Pepsisalvaje/WordlistCraft/internal/domain"
	"github.com/Pepsisalvaje/WordlistCraft/internal/ports"
)

// --- fakes ---

type memorySink struct {
	path      string
	lines     []string
	committed bool
	aborted   bool
	failAfter int
	commitErr error
}

func (s *memorySink) WriteLine(line string) error {
	if s.failAfter > 0 && len(s.lines) == s.failAfter {
		return errors.New("disk full")
	}
	s.lines = append(s.lines, line)
	return nil
}

func (s *memorySink) Commit() (domain.RunStats, error) {
	if s.commitErr != nil {
		return domain.RunStats{}, s.commitErr
	}
	s.committed = true
	var n int64
	for _, l := range s.lines {
		n += int64(len(l)) + 1
	}
	return domain.RunStats{Path: s.path, Lines: int64(len(s.lines)), Bytes: n}, nil
}

func (s *memorySink) Abort() error {
	s.aborted = true
	return nil
}

type fakeSinks struct {
	sink    *memorySink
	created int
	err     error
}

func (f *fakeSinks) Create(path string) (ports.WordlistSink, error) {
	f.created++
	if f.err != nil {
		return nil, f.err
	}
	if f.sink == nil {
		f.sink = &memorySink{}
	}
	f.sink.path = path
	return f.sink, nil
}

type fakeStore struct {
	saved bool
	last  domain.RunSummary
	err   error
}

func (s *fakeStore) SaveRun(run domain.RunSummary) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = true
	s.last = run
	return "run-123", nil
}

func intPtr(v int) *int { return &v }

func fixedClock() func() time.Time {
	t := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func generate(t *testing.T, opts domain.Options) []string {
	t.Helper()
	sinks := &fakeSinks{}
	uc := NewGenerateWordlist(sinks, nil, WithClock(fixedClock()))
	if _, _, err := uc.Execute(context.Background(), opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sinks.sink.committed {
		t.Fatalf("expected sink to be committed")
	}
	return sinks.sink.lines
}

// --- scenarios ---

func TestGenerate_SingleBaseNoFlags(t *testing.T) {
	got := generate(t, domain.Options{Bases: []string{"ok"}, Output: "out.txt"})
	if len(got) != 1 || got[0] != "ok" {
		t.Fatalf("expected [ok], got %v", got)
	}
}

func TestGenerate_FallbackPermutations(t *testing.T) {
	got := generate(t, domain.Options{Bases: []string{"a", "b"}, Output: "out.txt"})
	want := []string{"a", "b", "ab", "ba"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestGenerate_NumbersDedupAcrossBases(t *testing.T) {
	got := generate(t, domain.Options{
		Bases:         []string{"cat", "dog"},
		NumberPattern: "1",
		Output:        "out.txt",
	})

	count := 0
	for _, l := range got {
		if l == "cat1" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected cat1 exactly once, got %d in %v", count, got)
	}
	if len(got) != 6 {
		t.Fatalf("expected 6 lines, got %v", got)
	}
}

func TestGenerate_CapitalizeThenSpecials(t *testing.T) {
	got := generate(t, domain.Options{
		Bases:           []string{"cat"},
		CapitalizeIndex: intPtr(2),
		Specials:        []string{"!"},
		Output:          "out.txt",
	})
	want := []string{"cAt", "cAt!", "!cAt"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestGenerate_FixedLengthNumbers(t *testing.T) {
	got := generate(t, domain.Options{
		Bases:        []string{"x"},
		NumberLength: 2,
		Output:       "out.txt",
	})
	// x, then x00/00x .. x99/99x
	if len(got) != 1+200 {
		t.Fatalf("expected 201 lines, got %d", len(got))
	}
	if got[1] != "x00" || got[2] != "00x" {
		t.Fatalf("unexpected start %v", got[:3])
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := domain.Options{
		Bases:    []string{"admin", "root"},
		Leet:     true,
		Audibles: true,
		Specials: []string{"!"},
		Output:   "out.txt",
	}
	a := generate(t, opts)
	b := generate(t, opts)
	if len(a) != len(b) {
		t.Fatalf("runs differ in size: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs differ at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

// --- errors ---

func TestGenerate_ConflictBeforeSinkCreated(t *testing.T) {
	sinks := &fakeSinks{}
	uc := NewGenerateWordlist(sinks, nil)

	_, _, err := uc.Execute(context.Background(), domain.Options{
		Bases:           []string{"cat"},
		ToggleCase:      true,
		CapitalizeIndex: intPtr(1),
		Output:          "out.txt",
	})
	if !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if sinks.created != 0 {
		t.Fatalf("expected no sink to be created, got %d", sinks.created)
	}
}

func TestGenerate_OutOfRangeIndex(t *testing.T) {
	sinks := &fakeSinks{}
	uc := NewGenerateWordlist(sinks, nil)

	_, _, err := uc.Execute(context.Background(), domain.Options{
		Bases:           []string{"cat"},
		CapitalizeIndex: intPtr(5),
		Output:          "out.txt",
	})
	if !domain.IsKind(err, domain.KindOutOfRange) {
		t.Fatalf("expected out_of_range, got %v", err)
	}
	if sinks.created != 0 {
		t.Fatalf("expected no sink to be created")
	}
}

func TestGenerate_SinkCreateError(t *testing.T) {
	createErr := &domain.OpError{Op: "sink.create", Kind: domain.KindIO, Err: domain.ErrIO}
	uc := NewGenerateWordlist(&fakeSinks{err: createErr}, nil)

	_, _, err := uc.Execute(context.Background(), domain.Options{Bases: []string{"a"}, Output: "x"})
	if !errors.Is(err, createErr) {
		t.Fatalf("expected create error, got %v", err)
	}
}

func TestGenerate_WriteErrorAbortsSink(t *testing.T) {
	sink := &memorySink{failAfter: 2}
	uc := NewGenerateWordlist(&fakeSinks{sink: sink}, nil)

	_, _, err := uc.Execute(context.Background(), domain.Options{
		Bases:         []string{"a"},
		NumberPattern: "@",
		Output:        "x",
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !sink.aborted || sink.committed {
		t.Fatalf("expected abort without commit (aborted=%v committed=%v)", sink.aborted, sink.committed)
	}
}

func TestGenerate_ContextCanceled(t *testing.T) {
	sinks := &fakeSinks{}
	uc := NewGenerateWordlist(sinks, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	run, _, err := uc.Execute(ctx, domain.Options{Bases: []string{"a"}, Leet: true, Output: "x"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if sinks.created != 0 {
		t.Fatalf("expected no sink for a canceled run")
	}
	if run.End.IsZero() {
		t.Fatalf("expected End set")
	}
}

// --- summary store ---

func TestGenerate_StoreNil(t *testing.T) {
	uc := NewGenerateWordlist(&fakeSinks{}, nil, WithClock(fixedClock()))

	run, id, err := uc.Execute(context.Background(), domain.Options{Bases: []string{"a"}, Leet: true, Output: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty id when store is nil, got %q", id)
	}
	if run.Mode != domain.ModeCombine {
		t.Fatalf("expected combine mode, got %s", run.Mode)
	}
	if run.Lines != 3 {
		t.Fatalf("expected 3 lines, got %d", run.Lines)
	}
}

func TestGenerate_StoreCalled(t *testing.T) {
	store := &fakeStore{}
	uc := NewGenerateWordlist(&fakeSinks{}, store, WithClock(fixedClock()))

	run, id, err := uc.Execute(context.Background(), domain.Options{
		Bases:      []string{"ab"},
		ToggleCase: true,
		Output:     "list.txt",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "run-123" || run.ID != "run-123" {
		t.Fatalf("expected id=run-123, got %q / %q", id, run.ID)
	}
	if !store.saved {
		t.Fatal("expected SaveRun to be called")
	}
	if store.last.Lines != 4 || store.last.Output != "list.txt" {
		t.Fatalf("unexpected summary %+v", store.last)
	}
	if len(store.last.Stages) != 1 || store.last.Stages[0] != "toggle_case" {
		t.Fatalf("unexpected stages %v", store.last.Stages)
	}
	if !store.last.End.After(store.last.Start) {
		t.Fatalf("expected End after Start")
	}
}

func TestGenerate_StoreErrorKeepsWordlist(t *testing.T) {
	sinks := &fakeSinks{}
	store := &fakeStore{err: errors.New("read-only")}
	uc := NewGenerateWordlist(sinks, store)

	_, _, err := uc.Execute(context.Background(), domain.Options{Bases: []string{"a"}, Leet: true, Output: "x"})
	if err == nil {
		t.Fatalf("expected store error")
	}
	if !sinks.sink.committed {
		t.Fatalf("expected the wordlist to stay committed")
	}
}
