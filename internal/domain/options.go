package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// AllSpecialChars is the symbol set used by --all-special-chars.
const AllSpecialChars = `!@#$%^&*()_-+=}{[]:;"'<>.,?/`

// MaxNumberLength bounds both fixed-length enumeration and the wildcards of a
// number pattern to 10^7 numbers.
const MaxNumberLength = 7

// Options is the validated input of one generation run.
type Options struct {
	Bases    []string
	Specials []string

	AllSpecials   bool
	NumberPattern string
	NumberLength  int

	ToggleCase      bool
	CapitalizeIndex *int
	Leet            bool
	Audibles        bool

	Output string
}

// Validate reports configuration errors before any generation or file I/O.
// Conflicts are checked before ranges.
func (o Options) Validate() error {
	if len(o.Bases) == 0 {
		return &OpError{
			Op:   "options.validate",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("at least one base word is required: %w", ErrInvalidConfig),
		}
	}

	if o.ToggleCase && o.CapitalizeIndex != nil {
		return conflictError("--toggle-case", "--capitalize-index")
	}
	if o.NumberPattern != "" && o.NumberLength != 0 {
		return conflictError("--numbers", "--number-length")
	}
	if len(o.Specials) > 0 && o.AllSpecials {
		return conflictError("--special-chars", "--all-special-chars")
	}

	if o.CapitalizeIndex != nil {
		maxLen := o.MaxBaseLength()
		if k := *o.CapitalizeIndex; k < 1 || k > maxLen {
			return rangeError("--capitalize-index", 1, maxLen)
		}
	}
	if o.NumberLength != 0 && (o.NumberLength < 1 || o.NumberLength > MaxNumberLength) {
		return rangeError("--number-length", 1, MaxNumberLength)
	}
	if n := strings.Count(o.NumberPattern, "@"); n > MaxNumberLength {
		return &OpError{
			Op:   "options.validate",
			Kind: KindOutOfRange,
			Err:  fmt.Errorf("--numbers allows at most %d '@' wildcards, got %d: %w", MaxNumberLength, n, ErrOutOfRange),
		}
	}

	return nil
}

// MaxBaseLength returns the length, in characters, of the longest base word.
func (o Options) MaxBaseLength() int {
	n := 0
	for _, b := range o.Bases {
		if l := utf8.RuneCountInString(b); l > n {
			n = l
		}
	}
	return n
}

// Transforming reports whether any transformation was requested. When none is,
// the run falls back to permuting the base words.
func (o Options) Transforming() bool {
	return len(o.Specials) > 0 ||
		o.AllSpecials ||
		o.NumberPattern != "" ||
		o.NumberLength != 0 ||
		o.ToggleCase ||
		o.CapitalizeIndex != nil ||
		o.Leet ||
		o.Audibles
}

// SpecialSet returns the special characters to decorate with, one per entry.
func (o Options) SpecialSet() []string {
	if o.AllSpecials {
		return SplitSpecials([]string{AllSpecialChars})
	}
	return SplitSpecials(o.Specials)
}

// NormalizeBases drops empty entries and brings every word to NFC so that
// visually identical inputs compare equal.
func NormalizeBases(in []string) []string {
	out := make([]string, 0, len(in))
	for _, w := range in {
		if w == "" {
			continue
		}
		out = append(out, norm.NFC.String(w))
	}
	return out
}

// SplitSpecials turns tokens into single characters, keeping the first
// occurrence of each. Surrounding whitespace of a token is ignored.
func SplitSpecials(tokens []string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		for _, r := range tok {
			s := string(r)
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
