package interfaces

import (
	"context"

	"github.com/rabwill/pizza-api/internal/domain/entities"
)

// ICatalogRepository abstracts the read-only pizza/topping catalog.
//
// Absent records are reported as zero-value entities, not errors; errors are
// reserved for store failures. The ordering engine resolves every pizza and
// extra topping through this interface before pricing an order.

type ICatalogRepository interface {
	GetPizzas(ctx context.Context) ([]entities.Pizza, error)
	GetPizzaByID(ctx context.Context, id string) (entities.Pizza, error)
	GetToppings(ctx context.Context) ([]entities.Topping, error)
	GetToppingsByCategory(ctx context.Context, category entities.ToppingCategory) ([]entities.Topping, error)
	GetToppingByID(ctx context.Context, id string) (entities.Topping, error)
}
