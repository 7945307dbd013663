package ports

import "github.com/Pepsisalvaje/WordlistCraft/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
