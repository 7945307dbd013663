package filesink

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/Pepsisalvaje/WordlistCraft/internal/domain"
	"github.com/Pepsisalvaje/WordlistCraft/internal/ports"
)

const bufferSize = 256 << 10

// Factory creates file-backed sinks. Lines go to a temporary sibling of the
// destination which is renamed into place on Commit, so a failed run never
// leaves a truncated wordlist behind nor clobbers an existing one.
type Factory struct {
	perm os.FileMode
}

type Option func(*Factory)

func WithPerm(perm os.FileMode) Option {
	return func(f *Factory) { f.perm = perm }
}

func NewFactory(opts ...Option) *Factory {
	f := &Factory{perm: 0o644}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.SinkFactory = (*Factory)(nil)

func (f *Factory) Create(path string) (ports.WordlistSink, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, ioError("sink.create", path, err)
	}

	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, ioError("sink.mkdir", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(abs)+".*.tmp")
	if err != nil {
		return nil, ioError("sink.create", abs, err)
	}

	return &Sink{
		path: abs,
		perm: f.perm,
		file: tmp,
		w:    bufio.NewWriterSize(tmp, bufferSize),
	}, nil
}

// Sink writes one line per call. It is not safe for concurrent use.
type Sink struct {
	path string
	perm os.FileMode
	file *os.File
	w    *bufio.Writer

	lines int64
	bytes int64
	done  bool
}

var _ ports.WordlistSink = (*Sink)(nil)

func (s *Sink) WriteLine(line string) error {
	n, err := s.w.WriteString(line)
	if err == nil {
		err = s.w.WriteByte('\n')
		n++
	}
	if err != nil {
		return ioError("sink.write", s.file.Name(), err)
	}
	s.lines++
	s.bytes += int64(n)
	return nil
}

func (s *Sink) Commit() (domain.RunStats, error) {
	if s.done {
		return domain.RunStats{}, ioError("sink.commit", s.path, os.ErrClosed)
	}
	s.done = true
	tmp := s.file.Name()

	if err := s.w.Flush(); err != nil {
		s.discard()
		return domain.RunStats{}, ioError("sink.flush", tmp, err)
	}
	if err := s.file.Chmod(s.perm); err != nil {
		s.discard()
		return domain.RunStats{}, ioError("sink.chmod", tmp, err)
	}
	if err := s.file.Close(); err != nil {
		_ = os.Remove(tmp)
		return domain.RunStats{}, ioError("sink.close", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return domain.RunStats{}, ioError("sink.rename", s.path, err)
	}

	return domain.RunStats{Path: s.path, Lines: s.lines, Bytes: s.bytes}, nil
}

// Abort drops everything written so far. It is a no-op after Commit.
func (s *Sink) Abort() error {
	if s.done {
		return nil
	}
	s.done = true
	return s.discard()
}

func (s *Sink) discard() error {
	_ = s.file.Close()
	if err := os.Remove(s.file.Name()); err != nil && !os.IsNotExist(err) {
		return ioError("sink.remove", s.file.Name(), err)
	}
	return nil
}

func ioError(op, path string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindIO,
		Path: path,
		Err:  err,
	}
}
