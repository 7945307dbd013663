package expand

// LeetTable lists the look-alike glyphs for each letter.
var LeetTable = Table{
	"a": {"a", "@", "4"},
	"b": {"b", "8", "6"},
	"c": {"c", "(", "<", "{", "["},
	"d": {"d"},
	"e": {"e", "3"},
	"f": {"f"},
	"g": {"g", "9", "6"},
	"h": {"h", "#"},
	"i": {"i", "1", "!", "|"},
	"j": {"j"},
	"k": {"k"},
	"l": {"l", "1", "|", "7"},
	"m": {"m"},
	"n": {"n"},
	"o": {"o", "0", "()", "@"},
	"p": {"p"},
	"q": {"q", "9"},
	"r": {"r"},
	"s": {"s", "$", "5", "§"},
	"t": {"t", "7", "+"},
	"u": {"u", "v"},
	"v": {"v", "u"},
	"w": {"w", "vv"},
	"x": {"x", "%", "*"},
	"y": {"y"},
	"z": {"z", "2"},
}

// Leet returns every leet-speak variant of w, w itself first.
func Leet(w string) []string {
	return substitute(LeetTable, w, 1)
}

// substitute splits w into units, preferring the longest key of t up to
// maxUnit characters, and expands each unit through t.
func substitute(t Table, w string, maxUnit int) []string {
	runes := []rune(w)
	segments := make([][]string, 0, len(runes))

	for i := 0; i < len(runes); {
		matched := false
		for n := maxUnit; n >= 1; n-- {
			if i+n > len(runes) {
				continue
			}
			if alts, ok := t.candidates(string(runes[i : i+n])); ok {
				segments = append(segments, alts)
				i += n
				matched = true
				break
			}
		}
		if !matched {
			segments = append(segments, []string{string(runes[i])})
			i++
		}
	}

	return dedupe(product(segments))
}
