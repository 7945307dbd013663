package ports

import "github.com/Pepsisalvaje/WordlistCraft/internal/domain"

// RecipeLoader loads generation recipes from a source (e.g., filesystem).
type RecipeLoader interface {
	LoadRecipe(path string) (domain.Recipe, error)
	ListRecipes(root string) ([]domain.RecipeRef, error)
	// Resolve maps a recipe name or path to a file under root.
	Resolve(root, arg string) (string, error)
}
