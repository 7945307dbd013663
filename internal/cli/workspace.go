package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Pepsisalvaje/WordlistCraft/internal/domain"
	"github.com/Pepsisalvaje/WordlistCraft/internal/infra/envconfig"
	"github.com/Pepsisalvaje/WordlistCraft/internal/infra/filesink"
	"github.com/Pepsisalvaje/WordlistCraft/internal/infra/recipe"
	"github.com/Pepsisalvaje/WordlistCraft/internal/infra/runstore"
	"github.com/Pepsisalvaje/WordlistCraft/internal/infra/workspacefinder"
	"github.com/Pepsisalvaje/WordlistCraft/internal/ports"
)

// workspaceCtx is everything a command needs from the current workspace.
// Outside a workspace, root is the working directory and cfg holds defaults.
type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config

	recipes ports.RecipeLoader
	sinks   ports.SinkFactory
	store   ports.RunStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	environ, err := envconfig.Environ(root)
	if err != nil {
		return nil, err
	}
	cfg, err = envconfig.Apply(cfg, environ)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:    root,
		found:   found,
		cfg:     cfg,
		recipes: recipe.NewLoader(recipe.WithRecipesDir(cfg.Paths.RecipesDir)),
		sinks:   filesink.NewFactory(),
		store:   runstore.NewJSONStore(root, cfg, runstore.WithIndex(true)),
	}, nil
}

// resolveWorkspaceRoot honours --workspace, then searches upward from the
// working directory. Not finding a workspace is fine: generation works
// anywhere.
func resolveWorkspaceRoot(workspaceFlag string) (string, bool, error) {
	if w := strings.TrimSpace(workspaceFlag); w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		_, statErr := os.Stat(filepath.Join(abs, workspacefinder.ConfigFileName))
		return abs, statErr == nil, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}

	var locator ports.WorkspaceLocator = workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return wd, false, nil
		}
		return "", false, err
	}
	return root, true, nil
}

func requireWorkspace(ws *workspaceCtx) error {
	if ws.found {
		return nil
	}
	return &domain.OpError{
		Op:   "workspacefinder.findroot",
		Kind: domain.KindNotFound,
		Path: ws.root,
		Err:  domain.ErrNotFound,
	}
}
