package envconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pepsisalvaje/WordlistCraft/internal/domain"
)

func TestApply_NoVariablesKeepsConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Defaults.Output = "from-yaml.txt"

	got, err := Apply(cfg, map[string]string{"HOME": "/root"})
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestApply_OverridesSettings(t *testing.T) {
	got, err := Apply(domain.DefaultConfig(), map[string]string{
		"WORDLISTCRAFT_OUTPUT":       "env.txt",
		"WORDLISTCRAFT_NO_BANNER":    "true",
		"WORDLISTCRAFT_DEBUG":        "1",
		"WORDLISTCRAFT_LOG_FORMAT":   "text",
		"WORDLISTCRAFT_REDACT_BASES": "false",
		"WORDLISTCRAFT_RUNS_DIR":     "history",
	})
	require.NoError(t, err)

	assert.Equal(t, "env.txt", got.Defaults.Output)
	assert.False(t, got.Defaults.Banner)
	assert.True(t, got.Log.Debug)
	assert.Equal(t, "text", got.Log.Format)
	assert.False(t, got.Summary.RedactBases)
	assert.Equal(t, "history", got.Paths.RunsDir)
	assert.Equal(t, "recipes", got.Paths.RecipesDir)
}

func TestApply_InvalidValues(t *testing.T) {
	cases := map[string]map[string]string{
		"bool":   {"WORDLISTCRAFT_DEBUG": "maybe"},
		"format": {"WORDLISTCRAFT_LOG_FORMAT": "xml"},
	}
	for name, environ := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			got, err := Apply(cfg, environ)
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
			assert.Equal(t, cfg, got)
		})
	}
}

func TestEnviron_ProcessEnvWinsOverDotEnv(t *testing.T) {
	root := t.TempDir()
	content := "WORDLISTCRAFT_OUTPUT=dotenv.txt\nWORDLISTCRAFT_LOG_FORMAT=text\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte(content), 0o600))

	t.Setenv("WORDLISTCRAFT_OUTPUT", "process.txt")

	vars, err := Environ(root)
	require.NoError(t, err)
	assert.Equal(t, "process.txt", vars["WORDLISTCRAFT_OUTPUT"])
	assert.Equal(t, "text", vars["WORDLISTCRAFT_LOG_FORMAT"])
}

func TestEnviron_MissingDotEnv(t *testing.T) {
	t.Setenv("WORDLISTCRAFT_OUTPUT", "x.txt")

	vars, err := Environ(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "x.txt", vars["WORDLISTCRAFT_OUTPUT"])
}
