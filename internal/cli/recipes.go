package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func recipesCmd(root *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "recipes",
		Short: "Manage recipes in a workspace",
	}

	c.AddCommand(recipesListCmd(root))
	return c
}

func recipesListCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(root.workspace)
			if err != nil {
				return err
			}
			if err := requireWorkspace(ws); err != nil {
				return err
			}

			refs, err := ws.recipes.ListRecipes(ws.root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no recipes found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(out, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}
}
