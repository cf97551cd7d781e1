package domain

// RecipeSpec is the declarative form of a recipe, as found in a recipe book.
type RecipeSpec struct {
	Name        string     `toml:"name"`
	Description string     `toml:"description,omitempty"`
	Inputs      []Material `toml:"inputs"`
	Outputs     []Material `toml:"outputs"`
}

// PlanSpec describes an ordered plan of recipes, referenced by name.
type PlanSpec struct {
	ID          string             `toml:"id"`
	Name        string             `toml:"name"`
	Description string             `toml:"description,omitempty"`
	Tags        []string           `toml:"tags,omitempty"`
	Steps       []string           `toml:"steps"`
	Stock       map[string]float64 `toml:"stock,omitempty"`
}

// PlanSummary is a lightweight view of a plan for listing.
type PlanSummary struct {
	ID          string
	Name        string
	Description string
	Tags        []string
	StepCount   int
}
