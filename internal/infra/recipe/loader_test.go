package recipe

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/Pepsisalvaje/WordlistCraft/internal/domain"
)

func TestLoadRecipe(t *testing.T) {
	path := filepath.Join("testdata", "corp.yaml")
	r, err := NewLoader().LoadRecipe(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Name != "corp" {
		t.Fatalf("expected name corp, got %q", r.Name)
	}

	o := r.Options
	if !reflect.DeepEqual(o.Bases, []string{"acme", "admin"}) {
		t.Fatalf("unexpected bases %v", o.Bases)
	}
	if !reflect.DeepEqual(o.Specials, []string{"!", "$"}) {
		t.Fatalf("unexpected specials %v", o.Specials)
	}
	if o.NumberPattern != "20@@" {
		t.Fatalf("unexpected numbers %q", o.NumberPattern)
	}
	if o.CapitalizeIndex == nil || *o.CapitalizeIndex != 1 {
		t.Fatalf("expected capitalize index 1")
	}
	if !o.Audibles || o.Leet {
		t.Fatalf("unexpected flags %+v", o)
	}
	if o.Output != "acme.txt" {
		t.Fatalf("unexpected output %q", o.Output)
	}
	if err := o.Validate(); err != nil {
		t.Fatalf("recipe options should validate: %v", err)
	}
}

func TestLoadRecipeInvalid(t *testing.T) {
	path := filepath.Join("testdata", "invalid.yaml")
	_, err := NewLoader().LoadRecipe(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "data[1]") {
		t.Fatalf("expected field in error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestLoadRecipeMalformed(t *testing.T) {
	_, err := NewLoader().LoadRecipe(filepath.Join("testdata", "malformed.yaml"))
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestLoadRecipeMissing(t *testing.T) {
	_, err := NewLoader().LoadRecipe(filepath.Join("testdata", "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestLoadRecipe_NameDefaultsToFileStem(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "family.yml")
	if err := os.WriteFile(p, []byte("data: [luna]\nnumber_length: 2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	r, err := NewLoader().LoadRecipe(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Name != "family" {
		t.Fatalf("expected family, got %q", r.Name)
	}
	if r.Options.NumberLength != 2 {
		t.Fatalf("expected number length 2, got %d", r.Options.NumberLength)
	}
}

func TestListRecipes_SortedByName(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "recipes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(dir, "b.yaml"), "name: zeta\ndata: [a]\n")
	writeFile(t, filepath.Join(dir, "a.yml"), "data: [a]\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	refs, err := NewLoader().ListRecipes(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 recipes, got %v", refs)
	}
	if refs[0].Name != "a" || refs[1].Name != "zeta" {
		t.Fatalf("unexpected order %v", refs)
	}
}

func TestListRecipes_MissingDir(t *testing.T) {
	_, err := NewLoader(WithRecipesDir("custom")).ListRecipes(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "recipes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(dir, "corp.yaml"), "name: Acme Corp\ndata: [a]\n")

	l := NewLoader()

	got, err := l.Resolve(root, "corp")
	if err != nil || got != filepath.Join(dir, "corp.yaml") {
		t.Fatalf("resolve by stem: got %q err=%v", got, err)
	}

	got, err = l.Resolve(root, "acme corp")
	if err != nil || got != filepath.Join(dir, "corp.yaml") {
		t.Fatalf("resolve by name: got %q err=%v", got, err)
	}

	got, err = l.Resolve(root, "./other/x.yaml")
	if err != nil || got != filepath.Join(root, "other", "x.yaml") {
		t.Fatalf("resolve by path: got %q err=%v", got, err)
	}

	if _, err := l.Resolve(root, "missing"); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
