package book

import "github.com/hammamikhairi/ottocraft/internal/domain"

// seed returns the built-in recipe book.
func seed() *File {
	return &File{
		Recipes: []domain.RecipeSpec{
			{
				Name:        "smelt-iron",
				Description: "Melt ore down into a workable bar.",
				Inputs:      []domain.Material{{Name: "iron ore", Quantity: 2}},
				Outputs:     []domain.Material{{Name: "iron bar", Quantity: 1}},
			},
			{
				Name:        "forge-blade",
				Description: "Hammer two bars into a blade blank.",
				Inputs: []domain.Material{
					{Name: "iron bar", Quantity: 2},
					{Name: "coal", Quantity: 1},
				},
				Outputs: []domain.Material{{Name: "blade", Quantity: 1}},
			},
			{
				Name:        "saw-planks",
				Description: "Split a log into planks.",
				Inputs:      []domain.Material{{Name: "log", Quantity: 1}},
				Outputs: []domain.Material{
					{Name: "plank", Quantity: 4},
					{Name: "sawdust", Quantity: 1},
				},
			},
			{
				Name:        "carve-handle",
				Description: "Shape a grip from two planks.",
				Inputs:      []domain.Material{{Name: "plank", Quantity: 2}},
				Outputs:     []domain.Material{{Name: "handle", Quantity: 1}},
			},
			{
				Name:        "assemble-sword",
				Description: "Fit a blade to its handle.",
				Inputs: []domain.Material{
					{Name: "blade", Quantity: 1},
					{Name: "handle", Quantity: 1},
				},
				Outputs: []domain.Material{{Name: "sword", Quantity: 1}},
			},
			{
				Name:        "brew-tonic",
				Description: "Steep herbs in water.",
				Inputs: []domain.Material{
					{Name: "herb", Quantity: 3},
					{Name: "water", Quantity: 1},
				},
				Outputs: []domain.Material{
					{Name: "tonic", Quantity: 2},
					{Name: "residue", Quantity: 1},
				},
			},
		},
		Plans: []domain.PlanSpec{
			{
				ID:          "swordsmith",
				Name:        "Swordsmith",
				Description: "From ore and timber to a finished sword.",
				Tags:        []string{"smithing", "weapons", "carpentry"},
				Steps: []string{
					"smelt-iron",
					"smelt-iron",
					"forge-blade",
					"saw-planks",
					"carve-handle",
					"assemble-sword",
				},
				Stock: map[string]float64{
					"iron ore": 4,
					"coal":     1,
					"log":      1,
				},
			},
			{
				ID:          "lumberyard",
				Name:        "Lumberyard",
				Description: "Turn logs into planks and handles.",
				Tags:        []string{"carpentry"},
				Steps:       []string{"saw-planks", "carve-handle", "carve-handle"},
				Stock:       map[string]float64{"log": 1},
			},
			{
				ID:          "apothecary",
				Name:        "Apothecary",
				Description: "A short batch of herbal tonic.",
				Tags:        []string{"alchemy"},
				Steps:       []string{"brew-tonic", "brew-tonic"},
			},
		},
	}
}
