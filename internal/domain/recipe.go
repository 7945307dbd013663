package domain

// Recipe is a named, reusable set of generation options.
type Recipe struct {
	Name    string
	Options Options
}

// RecipeRef points at a recipe on disk without loading it fully.
type RecipeRef struct {
	Name string
	Path string
}
