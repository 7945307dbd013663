package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// effectiveConfig mirrors the settings file layout.
type effectiveConfig struct {
	WordlistCraft struct {
		Defaults struct {
			Output string `yaml:"output"`
			Banner bool   `yaml:"banner"`
		} `yaml:"defaults"`
		Summary struct {
			RedactBases bool `yaml:"redact_bases"`
		} `yaml:"summary"`
		Paths struct {
			RecipesDir string `yaml:"recipes_dir"`
			RunsDir    string `yaml:"runs_dir"`
		} `yaml:"paths"`
		Log struct {
			Debug  bool   `yaml:"debug"`
			Format string `yaml:"format"`
		} `yaml:"log"`
	} `yaml:"wordlistcraft"`
}

func configCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings (defaults, settings file and environment)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(root.workspace)
			if err != nil {
				return err
			}

			var ec effectiveConfig
			w := &ec.WordlistCraft
			w.Defaults.Output = ws.cfg.Defaults.Output
			w.Defaults.Banner = ws.cfg.Defaults.Banner
			w.Summary.RedactBases = ws.cfg.Summary.RedactBases
			w.Paths.RecipesDir = ws.cfg.Paths.RecipesDir
			w.Paths.RunsDir = ws.cfg.Paths.RunsDir
			w.Log.Debug = ws.cfg.Log.Debug
			w.Log.Format = ws.cfg.Log.Format

			b, err := yaml.Marshal(ec)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if ws.found {
				fmt.Fprintf(out, "# workspace: %s\n", ws.root)
			} else {
				fmt.Fprintln(out, "# no workspace found; showing defaults")
			}
			_, err = out.Write(b)
			return err
		},
	}
}
