package console

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Pepsisalvaje/WordlistCraft/internal/domain"
)

// Row is a key/value line inside a card.
type Row struct {
	Key   string
	Value string
}

func (t Theme) RenderCard(title string, rows []Row) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, t.Title.Render(title))
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, t.Key.Render(r.Key), t.Value.Render(r.Value)))
	}
	return t.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderReport summarizes a finished run.
func (t Theme) RenderReport(run domain.RunSummary) string {
	rows := []Row{
		{Key: "output", Value: run.Output},
		{Key: "mode", Value: string(run.Mode)},
		{Key: "lines", Value: strconv.FormatInt(run.Lines, 10)},
		{Key: "size", Value: FormatBytes(run.Bytes)},
		{Key: "stages", Value: joinOrDash(run.Stages)},
	}
	if !run.Start.IsZero() && !run.End.IsZero() {
		rows = append(rows, Row{Key: "took", Value: run.End.Sub(run.Start).Round(time.Millisecond).String()})
	}
	if run.ID != "" {
		rows = append(rows, Row{Key: "summary", Value: run.ID})
	}
	return t.RenderCard("Wordlist ready", rows)
}

// FormatBytes renders n with a binary unit, e.g. "1.5 MB".
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 4; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTP"[exp])
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
