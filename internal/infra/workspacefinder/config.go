package workspacefinder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Pepsisalvaje/WordlistCraft/internal/domain"
)

// LoadConfig reads .wordlistcraft.yaml from root and applies it over the
// defaults. A missing file yields the defaults and a KindNotFound error so
// callers can decide whether that matters.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	w := y.WordlistCraft
	if w.Defaults.Output != "" {
		cfg.Defaults.Output = w.Defaults.Output
	}
	if w.Defaults.Banner != nil {
		cfg.Defaults.Banner = *w.Defaults.Banner
	}
	if w.Summary.RedactBases != nil {
		cfg.Summary.RedactBases = *w.Summary.RedactBases
	}
	if w.Paths.RecipesDir != "" {
		cfg.Paths.RecipesDir = w.Paths.RecipesDir
	}
	if w.Paths.RunsDir != "" {
		cfg.Paths.RunsDir = w.Paths.RunsDir
	}
	if w.Log.Debug != nil {
		cfg.Log.Debug = *w.Log.Debug
	}
	switch w.Log.Format {
	case "":
	case "json", "text":
		cfg.Log.Format = w.Log.Format
	default:
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("log.format must be json or text, got %q: %w", w.Log.Format, domain.ErrInvalidConfig),
		}
	}

	return cfg, nil
}

type yamlConfig struct {
	WordlistCraft struct {
		Defaults struct {
			Output string `yaml:"output"`
			Banner *bool  `yaml:"banner"`
		} `yaml:"defaults"`

		Summary struct {
			RedactBases *bool `yaml:"redact_bases"`
		} `yaml:"summary"`

		Paths struct {
			RecipesDir string `yaml:"recipes_dir"`
			RunsDir    string `yaml:"runs_dir"`
		} `yaml:"paths"`

		Log struct {
			Debug  *bool  `yaml:"debug"`
			Format string `yaml:"format"`
		} `yaml:"log"`
	} `yaml:"wordlistcraft"`
}
