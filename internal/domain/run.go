package domain

import "time"

// Mode identifies which assembler produced a wordlist.
type Mode string

const (
	ModeCombine Mode = "combine"
	ModePermute Mode = "permute"
)

// RunStats is what a sink reports after the wordlist has been committed.
type RunStats struct {
	Path  string
	Lines int64
	Bytes int64
}

// RunSummary describes a finished generation run. It is persisted by a RunStore
// when the user asks for it.
type RunSummary struct {
	ID     string    `json:"id"`
	Mode   Mode      `json:"mode"`
	Output string    `json:"output"`
	Lines  int64     `json:"lines"`
	Bytes  int64     `json:"bytes"`
	Words  int       `json:"working_words"`
	Stages []string  `json:"stages"`
	Start  time.Time `json:"started_at"`
	End    time.Time `json:"ended_at"`

	Options OptionsSnapshot `json:"options"`
}

// OptionsSnapshot is the serializable view of Options kept in a summary.
type OptionsSnapshot struct {
	Bases           []string `json:"bases"`
	Specials        []string `json:"specials,omitempty"`
	AllSpecials     bool     `json:"all_special_chars,omitempty"`
	NumberPattern   string   `json:"numbers,omitempty"`
	NumberLength    int      `json:"number_length,omitempty"`
	ToggleCase      bool     `json:"toggle_case,omitempty"`
	CapitalizeIndex *int     `json:"capitalize_index,omitempty"`
	Leet            bool     `json:"leet,omitempty"`
	Audibles        bool     `json:"audibles,omitempty"`
}

func (o Options) Snapshot() OptionsSnapshot {
	return OptionsSnapshot{
		Bases:           append([]string(nil), o.Bases...),
		Specials:        append([]string(nil), o.Specials...),
		AllSpecials:     o.AllSpecials,
		NumberPattern:   o.NumberPattern,
		NumberLength:    o.NumberLength,
		ToggleCase:      o.ToggleCase,
		CapitalizeIndex: o.CapitalizeIndex,
		Leet:            o.Leet,
		Audibles:        o.Audibles,
	}
}

// WorkspaceSpec describes a workspace to scaffold.
type WorkspaceSpec struct {
	Root string
}
