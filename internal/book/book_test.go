package book

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/ottocraft/internal/domain"
)

const forgeBook = `
[[recipe]]
name = "smelt-iron"
inputs  = [{ material = "iron ore", quantity = 2 }]
outputs = [{ material = "iron bar", quantity = 1 }]

[[recipe]]
name = "forge-nail"
description = "A handful of nails."
inputs  = [{ material = "iron bar", quantity = 1 }]
outputs = [{ material = "nail", quantity = 8 }]

[[plan]]
id = "nailer"
name = "Nailer"
tags = ["smithing"]
steps = ["smelt-iron", "forge-nail"]
[plan.stock]
"iron ore" = 10
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(forgeBook))
	require.NoError(t, err)
	require.Len(t, f.Recipes, 2)
	require.Len(t, f.Plans, 1)

	assert.Equal(t, "smelt-iron", f.Recipes[0].Name)
	assert.Equal(t, []domain.Material{{Name: "iron ore", Quantity: 2}}, f.Recipes[0].Inputs)
	assert.Equal(t, "A handful of nails.", f.Recipes[1].Description)

	p := f.Plans[0]
	assert.Equal(t, "nailer", p.ID)
	assert.Equal(t, []string{"smelt-iron", "forge-nail"}, p.Steps)
	assert.Equal(t, map[string]float64{"iron ore": 10}, p.Stock)
	assert.NoError(t, Validate(f))
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("[[recipe]\nname = "))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	smelt := domain.RecipeSpec{
		Name:    "smelt-iron",
		Inputs:  []domain.Material{{Name: "iron ore", Quantity: 2}},
		Outputs: []domain.Material{{Name: "iron bar", Quantity: 1}},
	}

	tests := []struct {
		name    string
		file    File
		wantErr error
	}{
		{
			name: "valid",
			file: File{
				Recipes: []domain.RecipeSpec{smelt},
				Plans:   []domain.PlanSpec{{ID: "p", Steps: []string{"smelt-iron"}}},
			},
		},
		{
			name:    "blank recipe name",
			file:    File{Recipes: []domain.RecipeSpec{{Name: " ", Inputs: smelt.Inputs, Outputs: smelt.Outputs}}},
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name:    "duplicate recipe",
			file:    File{Recipes: []domain.RecipeSpec{smelt, smelt}},
			wantErr: domain.ErrAlreadyExists,
		},
		{
			name: "non-positive quantity",
			file: File{Recipes: []domain.RecipeSpec{{
				Name:    "bad",
				Inputs:  []domain.Material{{Name: "ore", Quantity: 0}},
				Outputs: smelt.Outputs,
			}}},
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name: "missing plan id",
			file: File{
				Recipes: []domain.RecipeSpec{smelt},
				Plans:   []domain.PlanSpec{{Steps: []string{"smelt-iron"}}},
			},
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name: "duplicate plan",
			file: File{
				Recipes: []domain.RecipeSpec{smelt},
				Plans: []domain.PlanSpec{
					{ID: "p", Steps: []string{"smelt-iron"}},
					{ID: "p", Steps: []string{"smelt-iron"}},
				},
			},
			wantErr: domain.ErrAlreadyExists,
		},
		{
			name: "no steps",
			file: File{
				Recipes: []domain.RecipeSpec{smelt},
				Plans:   []domain.PlanSpec{{ID: "p"}},
			},
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name: "unknown step",
			file: File{
				Recipes: []domain.RecipeSpec{smelt},
				Plans:   []domain.PlanSpec{{ID: "p", Steps: []string{"smelt-iron", "smelt-gold"}}},
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "negative stock",
			file: File{
				Recipes: []domain.RecipeSpec{smelt},
				Plans: []domain.PlanSpec{{
					ID:    "p",
					Steps: []string{"smelt-iron"},
					Stock: map[string]float64{"iron ore": -1},
				}},
			},
			wantErr: domain.ErrInvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.file)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "forge.toml")
	require.NoError(t, os.WriteFile(good, []byte(forgeBook), 0o644))
	f, err := LoadFile(good)
	require.NoError(t, err)
	assert.Len(t, f.Plans, 1)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`[[plan]]
id = "p"
steps = ["nothing"]
`), 0o644))
	_, err = LoadFile(bad)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = LoadFile(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSeedIsValid(t *testing.T) {
	assert.NoError(t, Validate(seed()))
}

func TestBundledBooksLoad(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "books", "*.toml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		f, err := LoadFile(path)
		require.NoError(t, err, path)
		assert.NotEmpty(t, f.Plans, path)
	}
}
