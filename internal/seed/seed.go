// Package seed provides the default recipe catalog used on first run and
// whenever the persisted catalog cannot be read.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mmcdole/freshbites/internal/domain"
)

//go:embed recipes.json
var embedded []byte

// Recipes returns a fresh copy of the embedded catalog.
// The fixture is validated by tests, so a decode failure is a build defect.
func Recipes() []domain.Recipe {
	recipes, err := Parse(embedded)
	if err != nil {
		panic(fmt.Sprintf("seed: embedded fixture is invalid: %v", err))
	}
	return recipes
}

// Parse decodes a JSON array of recipes
func Parse(data []byte) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, err
	}
	if recipes == nil {
		return nil, fmt.Errorf("expected a JSON array of recipes")
	}
	return recipes, nil
}

// Load reads a catalog from path, or returns the embedded one when path is empty
func Load(path string) ([]domain.Recipe, error) {
	if path == "" {
		return Recipes(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	recipes, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return recipes, nil
}
