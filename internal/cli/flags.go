package cli

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Pepsisalvaje/WordlistCraft/internal/app/template"
	"github.com/Pepsisalvaje/WordlistCraft/internal/domain"
)

// optionFlags are the generation flags shared by the root and validate commands.
type optionFlags struct {
	data            string
	specialChars    string
	allSpecialChars bool
	numbers         string
	numberLength    int
	toggleCase      bool
	capitalizeIndex int
	leet            bool
	audibles        bool
	output          string
	recipe          string
}

func (f *optionFlags) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.data, "data", "d", "", "Base words, comma separated (e.g. john,doe)")
	fs.StringVar(&f.specialChars, "special-chars", "", "Special characters, comma separated (e.g. '!,$')")
	fs.BoolVar(&f.allSpecialChars, "all-special-chars", false, "Use every special character: "+domain.AllSpecialChars)
	fs.StringVar(&f.numbers, "numbers", "", "Number pattern, '@' is any digit (e.g. 19@@)")
	fs.IntVar(&f.numberLength, "number-length", 0, "Enumerate every number of this many digits (1-7)")
	fs.BoolVar(&f.toggleCase, "toggle-case", false, "Every upper/lower case variation of each word")
	fs.IntVar(&f.capitalizeIndex, "capitalize-index", 0, "Upper-case the character at this 1-based position")
	fs.BoolVar(&f.leet, "leet", false, "Add leetspeak variations")
	fs.BoolVar(&f.audibles, "audibles", false, "Add phonetic variations")
	fs.StringVarP(&f.output, "output", "o", "", "Output file; supports {{date}}, {{time}} and {{first}}")
	fs.StringVarP(&f.recipe, "recipe", "r", "", "Recipe name or path; explicit flags override it")
}

// options merges defaults, the recipe (if any) and the flags the user set.
func (f *optionFlags) options(cmd *cobra.Command, ws *workspaceCtx, now time.Time) (domain.Options, error) {
	var opts domain.Options

	if strings.TrimSpace(f.recipe) != "" {
		path, err := ws.recipes.Resolve(ws.root, f.recipe)
		if err != nil {
			return domain.Options{}, err
		}
		rcp, err := ws.recipes.LoadRecipe(path)
		if err != nil {
			return domain.Options{}, err
		}
		opts = rcp.Options
	}

	changed := cmd.Flags().Changed
	if changed("data") {
		opts.Bases = domain.NormalizeBases(splitList(f.data))
	}
	if changed("special-chars") {
		opts.Specials = domain.SplitSpecials(strings.Split(f.specialChars, ","))
	}
	if changed("all-special-chars") {
		opts.AllSpecials = f.allSpecialChars
	}
	if changed("numbers") {
		opts.NumberPattern = f.numbers
	}
	if changed("number-length") {
		opts.NumberLength = f.numberLength
	}
	if changed("toggle-case") {
		opts.ToggleCase = f.toggleCase
	}
	if changed("capitalize-index") {
		k := f.capitalizeIndex
		opts.CapitalizeIndex = &k
	}
	if changed("leet") {
		opts.Leet = f.leet
	}
	if changed("audibles") {
		opts.Audibles = f.audibles
	}

	output := opts.Output
	if changed("output") {
		output = f.output
	}
	if strings.TrimSpace(output) == "" {
		output = ws.cfg.Defaults.Output
	}
	rendered, err := template.RenderOutputPath(output, now, opts.Bases)
	if err != nil {
		return domain.Options{}, err
	}
	opts.Output = filepath.Clean(rendered)

	return opts, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
