package domain

// Config represents the WordlistCraft settings loaded from .wordlistcraft.yaml.
type Config struct {
	Defaults DefaultsConfig
	Summary  SummaryConfig
	Paths    PathsConfig
	Log      LogConfig
}

type DefaultsConfig struct {
	Output string
	Banner bool
}

type SummaryConfig struct {
	// RedactBases masks base words and specials in persisted run summaries.
	RedactBases bool
}

type PathsConfig struct {
	RecipesDir string
	RunsDir    string
}

type LogConfig struct {
	Debug  bool
	Format string
}

// DefaultConfig provides sane defaults if .wordlistcraft.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Output: "wordlist.txt",
			Banner: true,
		},
		Summary: SummaryConfig{RedactBases: true},
		Paths: PathsConfig{
			RecipesDir: "recipes",
			RunsDir:    "runs",
		},
		Log: LogConfig{Format: "json"},
	}
}
