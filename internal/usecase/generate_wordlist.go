package usecase

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/Pepsisalvaje/WordlistCraft/internal/domain"
	"github.com/Pepsisalvaje/WordlistCraft/internal/ports"
	"github.com/Pepsisalvaje/WordlistCraft/internal/usecase/assemble"
	"github.com/Pepsisalvaje/WordlistCraft/internal/usecase/expand"
)

type GenerateWordlist struct {
	sinks  ports.SinkFactory
	store  ports.RunStore
	logger *slog.Logger
	now    func() time.Time
}

type GenerateOption func(*GenerateWordlist)

func WithLogger(l *slog.Logger) GenerateOption {
	return func(uc *GenerateWordlist) {
		if l != nil {
			uc.logger = l
		}
	}
}

// WithClock overrides time.Now (useful for tests).
func WithClock(now func() time.Time) GenerateOption {
	return func(uc *GenerateWordlist) { uc.now = now }
}

// NewGenerateWordlist wires the use case. store may be nil, in which case no
// run summary is persisted.
func NewGenerateWordlist(sinks ports.SinkFactory, store ports.RunStore, opts ...GenerateOption) *GenerateWordlist {
	uc := &GenerateWordlist{
		sinks:  sinks,
		store:  store,
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute validates opts, generates the wordlist into opts.Output and returns
// the run summary plus the id under which it was stored (empty without a store).
// Options are validated before the output is touched.
func (uc *GenerateWordlist) Execute(ctx context.Context, opts domain.Options) (domain.RunSummary, string, error) {
	if err := opts.Validate(); err != nil {
		return domain.RunSummary{}, "", err
	}

	run := domain.RunSummary{
		Output:  opts.Output,
		Start:   uc.now(),
		Options: opts.Snapshot(),
	}

	p := newPlan(opts, func(stage string, words int) {
		uc.logger.Debug("generate.stage", "stage", stage, "words", words)
	})
	run.Mode = p.mode
	run.Stages = p.stages
	run.Words = len(p.words)

	uc.logger.Info("generate.start",
		"mode", p.mode,
		"output", opts.Output,
		"words", len(p.words),
		"numbers", len(p.numbers),
		"specials", len(p.specials),
	)

	if err := ctx.Err(); err != nil {
		run.End = uc.now()
		return run, "", err
	}

	sink, err := uc.sinks.Create(opts.Output)
	if err != nil {
		run.End = uc.now()
		return run, "", err
	}

	if err := p.assemble(ctx, sink.WriteLine); err != nil {
		_ = sink.Abort()
		run.End = uc.now()
		uc.logger.Error("generate.failed", "output", opts.Output, "err", err)
		return run, "", err
	}

	stats, err := sink.Commit()
	run.End = uc.now()
	if err != nil {
		uc.logger.Error("generate.failed", "output", opts.Output, "err", err)
		return run, "", err
	}
	run.Output = stats.Path
	run.Lines = stats.Lines
	run.Bytes = stats.Bytes

	uc.logger.Info("generate.done",
		"output", stats.Path,
		"lines", stats.Lines,
		"bytes", stats.Bytes,
		"elapsed", run.End.Sub(run.Start).String(),
	)

	if uc.store == nil {
		return run, "", nil
	}

	id, err := uc.store.SaveRun(run)
	if err != nil {
		// The wordlist itself is already committed.
		return run, "", err
	}
	run.ID = id
	uc.logger.Info("summary.saved", "id", id)
	return run, id, nil
}

// plan is the resolved shape of a run: which assembler, over which inputs.
type plan struct {
	mode     domain.Mode
	stages   []string
	bases    []string
	words    []string
	numbers  []string
	specials []string
}

func newPlan(opts domain.Options, hook func(stage string, words int)) plan {
	if !opts.Transforming() {
		return plan{
			mode:  domain.ModePermute,
			bases: opts.Bases,
			words: domain.NewWordSet(opts.Bases...).Words(),
		}
	}

	pipeline := expand.NewPipeline(opts)
	p := plan{
		mode:     domain.ModeCombine,
		stages:   pipeline.Names(),
		bases:    opts.Bases,
		words:    pipeline.Apply(opts.Bases, hook).Words(),
		specials: opts.SpecialSet(),
	}

	switch {
	case opts.NumberLength > 0:
		p.numbers = expand.FixedLength(opts.NumberLength)
	case opts.NumberPattern != "":
		p.numbers = expand.Pattern(opts.NumberPattern)
	}
	return p
}

func (p plan) assemble(ctx context.Context, emit assemble.Emit) error {
	if p.mode == domain.ModePermute {
		return assemble.Permute(ctx, p.bases, emit)
	}
	return assemble.Combine(ctx, p.words, p.numbers, p.specials, emit)
}

// maxLines is an upper bound on the number of lines the plan can emit.
func (p plan) maxLines() int64 {
	if p.mode == domain.ModePermute {
		n := int64(len(p.words))
		var total, perm int64 = 0, 1
		for r := int64(1); r <= n; r++ {
			if perm > math.MaxInt64/(n-r+1) {
				return math.MaxInt64
			}
			perm *= n - r + 1
			if total > math.MaxInt64-perm {
				return math.MaxInt64
			}
			total += perm
		}
		return total
	}

	w := int64(len(p.words))
	n := int64(len(p.numbers))
	s := int64(len(p.specials))
	return w * (1 + 2*n + 2*s + 4*n*s)
}
