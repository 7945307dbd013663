package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Pepsisalvaje/WordlistCraft/internal/ui/console"
	"github.com/Pepsisalvaje/WordlistCraft/internal/usecase"
)

func validateCmd(root *rootFlags) *cobra.Command {
	var flags optionFlags

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check options or a recipe and estimate the run (no file is written)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(root.workspace)
			if err != nil {
				return err
			}

			opts, err := flags.options(cmd, ws, time.Now())
			if err != nil {
				return err
			}

			est, err := usecase.NewValidateOptions().Execute(cmd.Context(), opts)
			if err != nil {
				return err
			}

			stages := "-"
			if len(est.Stages) > 0 {
				stages = strings.Join(est.Stages, ", ")
			}

			theme := console.DefaultTheme()
			fmt.Fprintln(cmd.OutOrStdout(), theme.RenderCard("OK", []console.Row{
				{Key: "output", Value: opts.Output},
				{Key: "mode", Value: string(est.Mode)},
				{Key: "stages", Value: stages},
				{Key: "words", Value: strconv.Itoa(est.Words)},
				{Key: "numbers", Value: strconv.Itoa(est.Numbers)},
				{Key: "specials", Value: strconv.Itoa(est.Specials)},
				{Key: "lines", Value: "<= " + strconv.FormatInt(est.MaxLines, 10)},
			}))
			return nil
		},
	}

	flags.bind(c.Flags())
	return c
}
