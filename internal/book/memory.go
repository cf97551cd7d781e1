package book

import (
	"context"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/hammamikhairi/ottocraft/internal/domain"
	"github.com/hammamikhairi/ottocraft/internal/logger"
)

// Compile-time interface check.
var _ domain.PlanBook = (*MemoryBook)(nil)

// MemoryBook holds recipes and plans in memory. Safe for concurrent reads.
type MemoryBook struct {
	mu      sync.RWMutex
	recipes map[string]domain.RecipeSpec
	plans   map[string]domain.PlanSpec
	log     *logger.Logger
}

// NewMemoryBook creates a book preloaded with the built-in recipes and
// plans.
func NewMemoryBook(log *logger.Logger) *MemoryBook {
	b := newMemoryBook(log)
	b.load(seed())
	b.log.Debug("seeded %d recipes, %d plans", len(b.recipes), len(b.plans))
	return b
}

// FromFile creates a book holding the contents of f after validating it.
func FromFile(f *File, log *logger.Logger) (*MemoryBook, error) {
	if err := Validate(f); err != nil {
		return nil, err
	}
	b := newMemoryBook(log)
	b.load(f)
	b.log.Info("recipe book loaded: %d recipes, %d plans", len(b.recipes), len(b.plans))
	return b, nil
}

func newMemoryBook(log *logger.Logger) *MemoryBook {
	return &MemoryBook{
		recipes: make(map[string]domain.RecipeSpec),
		plans:   make(map[string]domain.PlanSpec),
		log:     log,
	}
}

func (b *MemoryBook) load(f *File) {
	for _, r := range f.Recipes {
		b.recipes[r.Name] = cloneRecipe(r)
	}
	for _, p := range f.Plans {
		b.plans[p.ID] = clonePlan(p)
	}
}

// List returns summaries of all plans, sorted by name.
func (b *MemoryBook) List(ctx context.Context) ([]domain.PlanSummary, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	b.log.Debug("listing all plans, count=%d", len(b.plans))

	out := make([]domain.PlanSummary, 0, len(b.plans))
	for _, p := range b.plans {
		out = append(out, summarize(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Get returns a copy of the plan with the given ID.
func (b *MemoryBook) Get(ctx context.Context, id string) (*domain.PlanSpec, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	p, ok := b.plans[id]
	if !ok {
		b.log.Debug("plan not found: %s", id)
		return nil, domain.ErrNotFound
	}
	p = clonePlan(p)
	return &p, nil
}

// Search returns plans whose name, description, tags or step recipes
// contain the query, case-insensitively.
func (b *MemoryBook) Search(ctx context.Context, query string) ([]domain.PlanSummary, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	q := strings.ToLower(query)
	b.log.Debug("searching plans for: %s", q)

	var out []domain.PlanSummary
	for _, p := range b.plans {
		if matches(p, q) {
			out = append(out, summarize(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Recipe returns a copy of the recipe with the given name.
func (b *MemoryBook) Recipe(ctx context.Context, name string) (*domain.RecipeSpec, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	r, ok := b.recipes[name]
	if !ok {
		b.log.Debug("recipe not found: %s", name)
		return nil, domain.ErrNotFound
	}
	r = cloneRecipe(r)
	return &r, nil
}

// Recipes returns every recipe sorted by name.
func (b *MemoryBook) Recipes() []domain.RecipeSpec {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]domain.RecipeSpec, 0, len(b.recipes))
	for _, name := range slices.Sorted(maps.Keys(b.recipes)) {
		out = append(out, cloneRecipe(b.recipes[name]))
	}
	return out
}

func matches(p domain.PlanSpec, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	for _, step := range p.Steps {
		if strings.Contains(strings.ToLower(step), query) {
			return true
		}
	}
	return false
}

func summarize(p domain.PlanSpec) domain.PlanSummary {
	return domain.PlanSummary{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Tags:        slices.Clone(p.Tags),
		StepCount:   len(p.Steps),
	}
}

func cloneRecipe(r domain.RecipeSpec) domain.RecipeSpec {
	r.Inputs = slices.Clone(r.Inputs)
	r.Outputs = slices.Clone(r.Outputs)
	return r
}

func clonePlan(p domain.PlanSpec) domain.PlanSpec {
	p.Tags = slices.Clone(p.Tags)
	p.Steps = slices.Clone(p.Steps)
	p.Stock = maps.Clone(p.Stock)
	return p
}
