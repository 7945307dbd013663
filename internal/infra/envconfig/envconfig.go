// Package envconfig overlays WORDLISTCRAFT_* environment variables, and an
// optional workspace .env file, on top of the loaded settings.
package envconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Pepsisalvaje/WordlistCraft/internal/domain"
)

const Prefix = "WORDLISTCRAFT_"

type overrides struct {
	Output      string `env:"OUTPUT"`
	NoBanner    bool   `env:"NO_BANNER"`
	RedactBases bool   `env:"REDACT_BASES"`
	RecipesDir  string `env:"RECIPES_DIR"`
	RunsDir     string `env:"RUNS_DIR"`
	Debug       bool   `env:"DEBUG"`
	LogFormat   string `env:"LOG_FORMAT"`
}

// Environ returns the variables visible to WordlistCraft: the workspace .env
// file (when root has one) overridden by the process environment.
func Environ(root string) (map[string]string, error) {
	vars := map[string]string{}

	if root != "" {
		path := filepath.Join(root, ".env")
		fileVars, err := godotenv.Read(path)
		switch {
		case err == nil:
			for k, v := range fileVars {
				vars[k] = v
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, &domain.OpError{
				Op:   "envconfig.read",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
	}

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			vars[k] = v
		}
	}
	return vars, nil
}

// Apply returns cfg with every WORDLISTCRAFT_* variable in environ applied.
// Unset variables leave the corresponding setting untouched.
func Apply(cfg domain.Config, environ map[string]string) (domain.Config, error) {
	o := overrides{
		Output:      cfg.Defaults.Output,
		NoBanner:    !cfg.Defaults.Banner,
		RedactBases: cfg.Summary.RedactBases,
		RecipesDir:  cfg.Paths.RecipesDir,
		RunsDir:     cfg.Paths.RunsDir,
		Debug:       cfg.Log.Debug,
		LogFormat:   cfg.Log.Format,
	}

	if err := env.ParseWithOptions(&o, env.Options{
		Prefix:      Prefix,
		Environment: environ,
	}); err != nil {
		return cfg, &domain.OpError{
			Op:   "envconfig.parse",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	switch o.LogFormat {
	case "json", "text":
	default:
		return cfg, &domain.OpError{
			Op:   "envconfig.parse",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%sLOG_FORMAT must be json or text, got %q: %w", Prefix, o.LogFormat, domain.ErrInvalidConfig),
		}
	}

	out := cfg
	out.Defaults.Output = o.Output
	out.Defaults.Banner = !o.NoBanner
	out.Summary.RedactBases = o.RedactBases
	out.Paths.RecipesDir = o.RecipesDir
	out.Paths.RunsDir = o.RunsDir
	out.Log.Debug = o.Debug
	out.Log.Format = o.LogFormat
	return out, nil
}
