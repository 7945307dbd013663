package expand

import "fmt"

// Wildcard marks a pattern position that ranges over 0-9.
const Wildcard = '@'

var digits = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

// Pattern expands every wildcard of p into the ten digits. Other characters
// stay fixed. A pattern without wildcards yields itself.
func Pattern(p string) []string {
	segments := make([][]string, 0, len(p))
	for _, r := range p {
		if r == Wildcard {
			segments = append(segments, digits)
			continue
		}
		segments = append(segments, []string{string(r)})
	}
	return product(segments)
}

// FixedLength returns all zero-padded numbers with l digits in numeric order.
func FixedLength(l int) []string {
	if l < 1 {
		return nil
	}
	total := 1
	for range l {
		total *= 10
	}

	out := make([]string, 0, total)
	for i := range total {
		out = append(out, fmt.Sprintf("%0*d", l, i))
	}
	return out
}
