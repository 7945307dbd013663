package ports

import "github.com/Pepsisalvaje/WordlistCraft/internal/domain"

// RunStore persists run summaries so a wordlist can be traced back to the
// options that produced it.
type RunStore interface {
	SaveRun(run domain.RunSummary) (id string, err error)
}
