package recipe

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Pepsisalvaje/WordlistCraft/internal/domain"
	"github.com/Pepsisalvaje/WordlistCraft/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	recipesDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{recipesDir: "recipes"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithRecipesDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.recipesDir = dir
		}
	}
}

var _ ports.RecipeLoader = (*Loader)(nil)

func (l *Loader) LoadRecipe(path string) (domain.Recipe, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Recipe{}, &domain.OpError{
			Op:   "recipe.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yr yamlRecipe
	if err := yaml.Unmarshal(b, &yr); err != nil {
		return domain.Recipe{}, &domain.OpError{
			Op:   "recipe.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapRecipe(path, yr)
}

// ListRecipes returns the recipes under <root>/<recipesDir>, sorted by name.
func (l *Loader) ListRecipes(root string) ([]domain.RecipeRef, error) {
	dir := filepath.Join(root, l.recipesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "recipe.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.RecipeRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !HasYAMLExt(name) {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readRecipeName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.RecipeRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

// Resolve turns a recipe argument into a path: paths are taken relative to
// root, bare names are looked up in the recipes dir (with or without
// extension), then matched against recipe names.
func (l *Loader) Resolve(root, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if strings.ContainsRune(in, '/') || strings.ContainsRune(in, filepath.Separator) {
		if !filepath.IsAbs(in) {
			in = filepath.Join(root, in)
		}
		return filepath.Clean(in), nil
	}

	dir := filepath.Join(root, l.recipesDir)
	candidates := []string{in + ".yaml", in + ".yml"}
	if HasYAMLExt(in) {
		candidates = []string{in}
	}
	for _, c := range candidates {
		p := filepath.Join(dir, c)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	refs, err := l.ListRecipes(root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", &domain.OpError{
		Op:   "recipe.resolve",
		Kind: domain.KindNotFound,
		Path: dir,
		Err:  domain.ErrNotFound,
	}
}

func HasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func readRecipeName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}
