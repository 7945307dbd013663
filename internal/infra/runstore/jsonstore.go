package runstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Pepsisalvaje/WordlistCraft/internal/domain"
	"github.com/Pepsisalvaje/WordlistCraft/internal/ports"
)

const defaultRunsDir = "runs"
const maskValue = "********"

type JSONStore struct {
	rootDir     string
	runsDirName string
	redact      bool
	writeIndex  bool
	now         func() time.Time
	newID       func() string
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: runs/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithIDFunc overrides run id generation.
func WithIDFunc(fn func() string) Option {
	return func(s *JSONStore) { s.newID = fn }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	runsDir := cfg.Paths.RunsDir
	if strings.TrimSpace(runsDir) == "" {
		runsDir = defaultRunsDir
	}

	s := &JSONStore{
		rootDir:     root,
		runsDirName: runsDir,
		redact:      cfg.Summary.RedactBases,
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.RunStore = (*JSONStore)(nil)

func (s *JSONStore) SaveRun(run domain.RunSummary) (string, error) {
	dir := filepath.Join(s.rootDir, s.runsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindIO,
			Path: dir,
			Err:  err,
		}
	}

	ts := run.Start
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := run
	toSave.ID = s.newID()
	if toSave.Start.IsZero() {
		toSave.Start = ts
	}

	// The output name may carry a base word ({{first}}), so it stays out of
	// the file name when redacting.
	slug := ""
	if s.redact {
		toSave = redactSummary(toSave)
	} else {
		slug = slugify(strings.TrimSuffix(filepath.Base(run.Output), filepath.Ext(run.Output)))
	}
	if slug == "" {
		slug = "wordlist"
	}

	filename := fmt.Sprintf("%s_%s.json", ts.Format("20060102T150405Z"), slug)
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindIO,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, filename, toSave)
	}

	return toSave.ID, nil
}

func (s *JSONStore) appendIndex(dir, filename string, run domain.RunSummary) error {
	type idx struct {
		ID        string      `json:"id"`
		File      string      `json:"file"`
		Output    string      `json:"output"`
		Mode      domain.Mode `json:"mode"`
		Lines     int64       `json:"lines"`
		StartedAt time.Time   `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:        run.ID,
		File:      filename,
		Output:    run.Output,
		Mode:      run.Mode,
		Lines:     run.Lines,
		StartedAt: run.Start,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

// redactSummary returns a copy with base words, specials and the output path
// masked. Base words are usually personal details (names, pets, dates) of the
// target.
func redactSummary(run domain.RunSummary) domain.RunSummary {
	out := run
	if run.Output != "" {
		out.Output = maskValue
	}
	out.Options.Bases = maskAll(run.Options.Bases)
	out.Options.Specials = maskAll(run.Options.Specials)
	if run.Options.NumberPattern != "" {
		out.Options.NumberPattern = maskValue
	}
	return out
}

func maskAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i := range out {
		out[i] = maskValue
	}
	return out
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
