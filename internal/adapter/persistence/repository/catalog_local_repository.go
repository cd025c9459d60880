package repository

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/rabwill/pizza-api/internal/domain/entities"
	"github.com/rabwill/pizza-api/internal/usecase/interfaces"
)

//go:embed data/pizzas.json data/toppings.json
var seedFS embed.FS

// LoadSeedCatalog parses the bundled pizza and topping datasets. The same
// data backs the in-memory catalog and the DynamoDB seed step.
func LoadSeedCatalog() ([]entities.Pizza, []entities.Topping, error) {
	raw, err := seedFS.ReadFile("data/pizzas.json")
	if err != nil {
		return nil, nil, fmt.Errorf("reading bundled pizzas: %w", err)
	}
	var pizzas []entities.Pizza
	if err := json.Unmarshal(raw, &pizzas); err != nil {
		return nil, nil, fmt.Errorf("parsing bundled pizzas: %w", err)
	}

	raw, err = seedFS.ReadFile("data/toppings.json")
	if err != nil {
		return nil, nil, fmt.Errorf("reading bundled toppings: %w", err)
	}
	var toppings []entities.Topping
	if err := json.Unmarshal(raw, &toppings); err != nil {
		return nil, nil, fmt.Errorf("parsing bundled toppings: %w", err)
	}

	return pizzas, toppings, nil
}

// CatalogLocalRepository serves the bundled catalog from memory. It is the
// fallback backend used when DynamoDB is not reachable at startup. The data
// is immutable after construction, so reads need no locking.

type CatalogLocalRepository struct {
	pizzas   []entities.Pizza
	toppings []entities.Topping
}

var _ interfaces.ICatalogRepository = (*CatalogLocalRepository)(nil)

func NewCatalogLocalRepository(pizzas []entities.Pizza, toppings []entities.Topping) *CatalogLocalRepository {
	return &CatalogLocalRepository{pizzas: pizzas, toppings: toppings}
}

func (r *CatalogLocalRepository) GetPizzas(context.Context) ([]entities.Pizza, error) {
	out := make([]entities.Pizza, len(r.pizzas))
	copy(out, r.pizzas)
	return out, nil
}

func (r *CatalogLocalRepository) GetPizzaByID(_ context.Context, id string) (entities.Pizza, error) {
	for _, p := range r.pizzas {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.Pizza{}, nil
}

func (r *CatalogLocalRepository) GetToppings(context.Context) ([]entities.Topping, error) {
	out := make([]entities.Topping, len(r.toppings))
	copy(out, r.toppings)
	return out, nil
}

func (r *CatalogLocalRepository) GetToppingsByCategory(_ context.Context, category entities.ToppingCategory) ([]entities.Topping, error) {
	out := []entities.Topping{}
	for _, t := range r.toppings {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *CatalogLocalRepository) GetToppingByID(_ context.Context, id string) (entities.Topping, error) {
	for _, t := range r.toppings {
		if t.ID == id {
			return t, nil
		}
	}
	return entities.Topping{}, nil
}
