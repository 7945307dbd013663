package ports

import "github.com/Pepsisalvaje/WordlistCraft/internal/domain"

// WordlistSink receives generated lines in order. Nothing is visible at the
// destination until Commit succeeds; Abort discards everything written.
type WordlistSink interface {
	WriteLine(line string) error
	Commit() (domain.RunStats, error)
	Abort() error
}

// SinkFactory opens a sink for an output path.
type SinkFactory interface {
	Create(path string) (WordlistSink, error)
}
