package expand

// PhoneticTable lists letters and digraphs that sound alike. Digraph keys win
// over single letters when both match at the same position.
var PhoneticTable = Table{
	"v":  {"v", "b"},
	"b":  {"b", "v"},
	"s":  {"s", "z"},
	"z":  {"z", "s"},
	"c":  {"c", "k", "q"},
	"k":  {"k", "c", "q"},
	"q":  {"q", "k", "c"},
	"ll": {"ll", "y"},
	"y":  {"y", "ll"},
	"r":  {"r", "rr"},
	"rr": {"rr", "r"},
	"t":  {"t", "d"},
	"d":  {"d", "t"},
	"g":  {"g", "j"},
	"j":  {"j", "g"},
}

// Phonetic returns every "audible" variant of w, w itself first.
func Phonetic(w string) []string {
	return substitute(PhoneticTable, w, 2)
}
