package usecase

import (
	"context"

	"github.com/Pepsisalvaje/WordlistCraft/internal/domain"
)

// Estimate describes what a run would produce without writing anything.
type Estimate struct {
	Mode     domain.Mode
	Stages   []string
	Words    int
	Numbers  int
	Specials int
	// MaxLines is an upper bound; deduplication can only lower it.
	MaxLines int64
}

type ValidateOptions struct{}

func NewValidateOptions() *ValidateOptions {
	return &ValidateOptions{}
}

// Execute checks opts the same way a generation run does and expands the
// working word set to size the run. No file is touched.
func (uc *ValidateOptions) Execute(ctx context.Context, opts domain.Options) (Estimate, error) {
	if err := opts.Validate(); err != nil {
		return Estimate{}, err
	}
	if err := ctx.Err(); err != nil {
		return Estimate{}, err
	}

	p := newPlan(opts, nil)
	return Estimate{
		Mode:     p.mode,
		Stages:   p.stages,
		Words:    len(p.words),
		Numbers:  len(p.numbers),
		Specials: len(p.specials),
		MaxLines: p.maxLines(),
	}, nil
}
