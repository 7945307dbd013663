package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Pepsisalvaje/WordlistCraft/internal/buildinfo"
	"github.com/Pepsisalvaje/WordlistCraft/internal/infra/logger"
	"github.com/Pepsisalvaje/WordlistCraft/internal/ports"
	"github.com/Pepsisalvaje/WordlistCraft/internal/ui/console"
	"github.com/Pepsisalvaje/WordlistCraft/internal/usecase"
)

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context) int {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(cmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

type rootFlags struct {
	workspace string
	debug     bool
}

func newRootCmd() *cobra.Command {
	var root rootFlags
	var flags optionFlags
	var noBanner bool
	var saveSummary bool

	cmd := &cobra.Command{
		Use:   "wordlistcraft",
		Short: "WordlistCraft - custom wordlist generator",
		Long: `Generate password candidate wordlists from a few base words.

Base words go through case, leetspeak and phonetic variations, then get
decorated with numbers and special characters. With no transformation at
all, every ordered arrangement of the base words is written instead.`,
		Example: `  wordlistcraft --data cat,dog
  wordlistcraft --data cat,dog --special-chars '%,&'
  wordlistcraft --data user --numbers 12@@
  wordlistcraft --data admin --toggle-case
  wordlistcraft --data number --number-length 3
  wordlistcraft --data john,doe,juan --capitalize-index 2
  wordlistcraft --data alice,bob --special-chars '!,$' --numbers 9@@ --capitalize-index 1 -o results.txt
  wordlistcraft --recipe corp --leet`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().NFlag() == 0 && len(cmd.Flags().Args()) == 0 {
				return cmd.Help()
			}

			ws, err := loadWorkspace(root.workspace)
			if err != nil {
				return err
			}

			opts, err := flags.options(cmd, ws, time.Now())
			if err != nil {
				return err
			}

			// Options are validated before anything is printed or opened,
			// the log file included.
			if err := opts.Validate(); err != nil {
				return err
			}

			cleanup := setupLogger(cmd.ErrOrStderr(), ws, root.debug)
			defer cleanup()

			theme := console.DefaultTheme()
			out := cmd.OutOrStdout()
			if ws.cfg.Defaults.Banner && !noBanner {
				fmt.Fprintln(out, theme.RenderBanner(buildinfo.Version))
			}

			var store ports.RunStore
			if saveSummary {
				store = ws.store
			}

			uc := usecase.NewGenerateWordlist(ws.sinks, store, usecase.WithLogger(logger.L()))
			run, _, err := uc.Execute(cmd.Context(), opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, theme.RenderReport(run))
			return nil
		},
	}

	flags.bind(cmd.Flags())
	cmd.Flags().BoolVar(&noBanner, "no-banner", false, "Do not print the banner")
	cmd.Flags().BoolVar(&saveSummary, "save-summary", false, "Save a JSON run summary under the runs dir")

	cmd.PersistentFlags().StringVarP(&root.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().BoolVar(&root.debug, "debug", false, "Enable verbose logging to .wordlistcraft/logs/wordlistcraft.log")

	cmd.AddCommand(
		initCmd(&root),
		validateCmd(&root),
		recipesCmd(&root),
		configCmd(&root),
		versionCmd(),
	)
	return cmd
}

// setupLogger points the global logger at the workspace log file and, with
// --debug, tells the user where it is. Logging problems never block generation.
func setupLogger(w io.Writer, ws *workspaceCtx, debug bool) func() {
	cleanup, err := logger.Setup(logger.Config{
		Root:   ws.root,
		Debug:  debug || ws.cfg.Log.Debug,
		Format: ws.cfg.Log.Format,
	})
	if err != nil || cleanup == nil {
		if debug {
			fmt.Fprintf(w, "debug log unavailable: %v\n", err)
		}
		return func() {}
	}
	if debug && logger.IsReady() == nil {
		fmt.Fprintf(w, "debug log: %s\n", logger.Path())
	}
	return func() { _ = cleanup() }
}

func printError(w io.Writer, err error) {
	theme := console.DefaultTheme()
	fmt.Fprintln(w, theme.Error.Render("error:"), console.UserMessage(err))
}
