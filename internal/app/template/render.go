package template

import (
	"fmt"
	"strings"
	"time"

	"github.com/Pepsisalvaje/WordlistCraft/internal/domain"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", invalid(input, "unclosed template expression")
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", invalid(input, "empty template expression")
		}

		value, ok := vars[key]
		if !ok {
			return "", invalid(input, fmt.Sprintf("unknown placeholder %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// OutputVars are the placeholders available in an output path:
// {{date}} (20060102), {{time}} (150405) and {{first}} (first base word).
func OutputVars(now time.Time, bases []string) map[string]string {
	first := "wordlist"
	if len(bases) > 0 {
		if s := pathSafe(bases[0]); s != "" {
			first = s
		}
	}
	return map[string]string{
		"date":  now.Format("20060102"),
		"time":  now.Format("150405"),
		"first": first,
	}
}

// RenderOutputPath expands the placeholders of an output path.
func RenderOutputPath(path string, now time.Time, bases []string) (string, error) {
	return RenderString(path, OutputVars(now, bases))
}

func pathSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '_'
		}
		return r
	}, strings.TrimSpace(s))
}

func invalid(input, msg string) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Path: input,
		Err:  fmt.Errorf("%s: %w", msg, domain.ErrInvalidConfig),
	}
}
