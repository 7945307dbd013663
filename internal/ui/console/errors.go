package console

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Pepsisalvaje/WordlistCraft/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// UserMessage turns an error into a short, human-oriented line. The full
// error still goes to the log.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		if looksLikeYAMLProblem(err.Error()) {
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML line " + line
			}
			return "Invalid YAML"
		}
		return err.Error()
	}

	switch oe.Kind {
	case domain.KindConflict, domain.KindOutOfRange:
		return "Invalid options: " + innermost(oe)

	case domain.KindNotFound:
		switch {
		case strings.HasPrefix(oe.Op, "recipe"):
			return "Recipe not found: " + nameOf(oe.Path)
		case strings.HasPrefix(oe.Op, "workspacefinder"):
			return "Workspace not found (run `wordlistcraft init`)"
		}
		return "Not found: " + nameOf(oe.Path)

	case domain.KindInvalidConfig:
		base := "config"
		if strings.TrimSpace(oe.Path) != "" {
			base = filepath.Base(oe.Path)
		}
		if looksLikeYAMLProblem(err.Error()) {
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			return "Invalid YAML at " + base
		}
		return "Invalid config at " + base + ": " + innermost(oe)

	case domain.KindIO:
		return "Could not write " + nameOf(oe.Path) + " (see logs)"
	}

	return "Unexpected error (see logs)"
}

func innermost(oe *domain.OpError) string {
	if oe.Err == nil {
		return string(oe.Kind)
	}
	msg := oe.Err.Error()
	for _, sentinel := range []error{domain.ErrConflict, domain.ErrOutOfRange, domain.ErrInvalidConfig, domain.ErrNotFound, domain.ErrIO} {
		if errors.Unwrap(oe.Err) == sentinel {
			return strings.TrimSuffix(msg, ": "+sentinel.Error())
		}
	}
	return msg
}

func nameOf(path string) string {
	if strings.TrimSpace(path) == "" {
		return "(unknown)"
	}
	return path
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	if m := reLine.FindStringSubmatch(s); len(m) == 2 {
		return m[1]
	}
	return ""
}
