package expand

import "unicode"

// ToggleCase returns every upper/lower variant of w. Each letter contributes
// both its lower and upper form; other characters are kept as they are.
func ToggleCase(w string) []string {
	segments := make([][]string, 0, len(w))
	for _, r := range w {
		s := string(r)
		if unicode.IsLetter(r) {
			segments = append(segments, []string{lower(s), upper(s)})
			continue
		}
		segments = append(segments, []string{s})
	}
	return dedupe(product(segments))
}

// CapitalizeAt upper-cases the k-th character (1-based) of w. Words shorter
// than k are returned unchanged.
func CapitalizeAt(w string, k int) string {
	runes := []rune(w)
	if k < 1 || k > len(runes) {
		return w
	}
	return string(runes[:k-1]) + upper(string(runes[k-1])) + string(runes[k:])
}
