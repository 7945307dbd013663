// Package assemble joins working words, numbers and special characters into
// output lines.
package assemble

import "context"

// Emit receives one output line. Returning an error stops assembly.
type Emit func(line string) error

// Combine emits, for every word in order: the word; word+n and n+word for each
// number; word+s and s+word for each special; and word+n+s, word+s+n, n+word+s,
// s+word+n for each (number, special) pair. A line is emitted at most once per
// call, at its first occurrence.
func Combine(ctx context.Context, words, numbers, specials []string, emit Emit) error {
	seen := make(map[string]struct{})
	put := func(line string) error {
		if _, ok := seen[line]; ok {
			return nil
		}
		seen[line] = struct{}{}
		return emit(line)
	}

	for _, base := range words {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := put(base); err != nil {
			return err
		}

		for _, n := range numbers {
			if err := putAll(put, base+n, n+base); err != nil {
				return err
			}
		}

		for _, s := range specials {
			if err := putAll(put, base+s, s+base); err != nil {
				return err
			}
		}

		for _, n := range numbers {
			for _, s := range specials {
				if err := putAll(put, base+n+s, base+s+n, n+base+s, s+base+n); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func putAll(put Emit, lines ...string) error {
	for _, l := range lines {
		if err := put(l); err != nil {
			return err
		}
	}
	return nil
}
