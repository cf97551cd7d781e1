package domain

import "context"

// Roller is the randomness source for recipe applications.
type Roller interface {
	// Roll returns a uniformly distributed integer in [1, 100].
	Roll() int
}

// PlanBook provides recipes and plans. Implementations can be seeded in
// memory or loaded from a recipe book file.
type PlanBook interface {
	List(ctx context.Context) ([]PlanSummary, error)
	Get(ctx context.Context, id string) (*PlanSpec, error)
	Search(ctx context.Context, query string) ([]PlanSummary, error)
	Recipe(ctx context.Context, name string) (*RecipeSpec, error)
}

// IntentParser converts raw user input into structured intents.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}

// Notifier delivers messages to the user.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}
