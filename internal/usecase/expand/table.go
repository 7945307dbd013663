package expand

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Table maps a lowercase source unit (one or two characters) to its candidates.
// The first candidate is always the unit itself.
type Table map[string][]string

// candidates returns the substitutions for unit. Lookup ignores case; the
// identity keeps the unit as written, and alternatives are upper-cased when the
// unit starts with an upper-case letter.
func (t Table) candidates(unit string) ([]string, bool) {
	alts, ok := t[lower(unit)]
	if !ok {
		return nil, false
	}

	first, _ := utf8.DecodeRuneInString(unit)
	upperSrc := unicode.IsUpper(first)

	out := make([]string, len(alts))
	out[0] = unit
	for i := 1; i < len(alts); i++ {
		if upperSrc {
			out[i] = upper(alts[i])
		} else {
			out[i] = alts[i]
		}
	}
	return out, true
}

// product concatenates one candidate per segment, left to right, with the last
// segment varying fastest.
func product(segments [][]string) []string {
	out := []string{""}
	for _, seg := range segments {
		next := make([]string, 0, len(out)*len(seg))
		for _, prefix := range out {
			for _, c := range seg {
				next = append(next, prefix+c)
			}
		}
		out = next
	}
	return out
}

// dedupe drops repeated variants, keeping the first occurrence.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Casers are stateful; build one per call.
func upper(s string) string { return cases.Upper(language.Und).String(s) }

func lower(s string) string { return cases.Lower(language.Und).String(s) }
