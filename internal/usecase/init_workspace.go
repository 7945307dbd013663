package usecase

import (
	"errors"
	"strings"

	"github.com/Pepsisalvaje/WordlistCraft/internal/domain"
	"github.com/Pepsisalvaje/WordlistCraft/internal/ports"
)

// InitWorkspace scaffolds settings, a sample recipe and .gitignore entries.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

func (uc *InitWorkspace) Execute(root string, force bool) error {
	if strings.TrimSpace(root) == "" {
		return &domain.OpError{
			Op:   "workspace.init",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("workspace root is empty"),
		}
	}
	return uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force)
}
