package recipe

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Pepsisalvaje/WordlistCraft/internal/domain"
)

func mapRecipe(path string, yr yamlRecipe) (domain.Recipe, error) {
	if len(yr.Data) == 0 {
		return domain.Recipe{}, invalidField(path, "data", "at least one base word is required")
	}
	for i, w := range yr.Data {
		if w == "" {
			return domain.Recipe{}, invalidField(path, fmt.Sprintf("data[%d]", i), "base word is empty")
		}
	}
	for i, s := range yr.SpecialChars {
		if strings.TrimSpace(s) == "" {
			return domain.Recipe{}, invalidField(path, fmt.Sprintf("special_chars[%d]", i), "special character is empty")
		}
	}
	if yr.NumberLength < 0 {
		return domain.Recipe{}, invalidField(path, "number_length", "must not be negative")
	}

	name := strings.TrimSpace(yr.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return domain.Recipe{
		Name: name,
		Options: domain.Options{
			Bases:           domain.NormalizeBases(yr.Data),
			Specials:        domain.SplitSpecials(yr.SpecialChars),
			AllSpecials:     yr.AllSpecialChars,
			NumberPattern:   yr.Numbers,
			NumberLength:    yr.NumberLength,
			ToggleCase:      yr.ToggleCase,
			CapitalizeIndex: yr.CapitalizeIndex,
			Leet:            yr.Leet,
			Audibles:        yr.Audibles,
			Output:          strings.TrimSpace(yr.Output),
		},
	}, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "recipe.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
