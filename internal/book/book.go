// Package book loads recipe books: catalogues of named recipes and the
// plans that sequence them.
//
// A recipe book is a TOML file with [[recipe]] and [[plan]] tables. Plans
// reference recipes by name; a plan may carry the starting stock its run
// is played against.
package book

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/hammamikhairi/ottocraft/internal/craft"
	"github.com/hammamikhairi/ottocraft/internal/domain"
)

// File is a parsed recipe book.
type File struct {
	// Recipes lists every recipe the book defines.
	Recipes []domain.RecipeSpec `toml:"recipe"`
	// Plans lists the plans built from those recipes.
	Plans []domain.PlanSpec `toml:"plan"`
}

// Parse decodes TOML data into a File. It does not validate.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFile reads, parses and validates the recipe book at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipe book: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing recipe book %s: %w", path, err)
	}
	if err := Validate(f); err != nil {
		return nil, fmt.Errorf("validating recipe book %s: %w", path, err)
	}
	return f, nil
}

// Validate checks a File for structural correctness: recipe names are
// unique and every recipe is constructible, plan IDs are unique, every plan
// has at least one step, every step names a known recipe and starting
// stock is non-negative.
func Validate(f *File) error {
	recipes := make(map[string]bool, len(f.Recipes))
	for _, r := range f.Recipes {
		if strings.TrimSpace(r.Name) == "" {
			return fmt.Errorf("%w: recipe name is required", domain.ErrInvalidArgument)
		}
		if recipes[r.Name] {
			return fmt.Errorf("%w: duplicate recipe %q", domain.ErrAlreadyExists, r.Name)
		}
		if _, err := craft.FromSpec(r); err != nil {
			return err
		}
		recipes[r.Name] = true
	}

	plans := make(map[string]bool, len(f.Plans))
	for _, p := range f.Plans {
		if strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("%w: plan id is required", domain.ErrInvalidArgument)
		}
		if plans[p.ID] {
			return fmt.Errorf("%w: duplicate plan %q", domain.ErrAlreadyExists, p.ID)
		}
		plans[p.ID] = true

		if len(p.Steps) == 0 {
			return fmt.Errorf("%w: plan %q has no steps", domain.ErrInvalidArgument, p.ID)
		}
		for i, step := range p.Steps {
			if !recipes[step] {
				return fmt.Errorf("%w: plan %q step %d uses unknown recipe %q", domain.ErrNotFound, p.ID, i+1, step)
			}
		}
		for name, q := range p.Stock {
			if q < 0 {
				return fmt.Errorf("%w: plan %q starts with negative %s", domain.ErrInvalidArgument, p.ID, name)
			}
		}
	}
	return nil
}
