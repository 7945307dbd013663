package expand

import "github.com/Pepsisalvaje/WordlistCraft/internal/domain"

// Stage is one optional transformation of the working word set.
type Stage struct {
	Name   string
	Expand func(string) []string
}

// Run expands every word of in and pools the variants into a new set.
func (s Stage) Run(in *domain.WordSet) *domain.WordSet {
	out := domain.NewWordSet()
	for _, w := range in.Words() {
		for _, v := range s.Expand(w) {
			out.Add(v)
		}
	}
	return out
}

// Pipeline is an ordered list of stages.
type Pipeline []Stage

// NewPipeline picks the stages requested by opts in their fixed order:
// capitalize or toggle case, then leet, then phonetic.
func NewPipeline(opts domain.Options) Pipeline {
	var p Pipeline

	switch {
	case opts.CapitalizeIndex != nil:
		k := *opts.CapitalizeIndex
		p = append(p, Stage{
			Name:   "capitalize",
			Expand: func(w string) []string { return []string{CapitalizeAt(w, k)} },
		})
	case opts.ToggleCase:
		p = append(p, Stage{Name: "toggle_case", Expand: ToggleCase})
	}

	if opts.Leet {
		p = append(p, Stage{Name: "leet", Expand: Leet})
	}
	if opts.Audibles {
		p = append(p, Stage{Name: "audibles", Expand: Phonetic})
	}
	return p
}

// Names lists the stage names in order.
func (p Pipeline) Names() []string {
	out := make([]string, 0, len(p))
	for _, s := range p {
		out = append(out, s.Name)
	}
	return out
}

// Apply runs every stage over bases. The hook, when set, sees each stage's
// result size.
func (p Pipeline) Apply(bases []string, hook func(stage string, words int)) *domain.WordSet {
	ws := domain.NewWordSet(bases...)
	for _, s := range p {
		ws = s.Run(ws)
		if hook != nil {
			hook(s.Name, ws.Len())
		}
	}
	return ws
}
