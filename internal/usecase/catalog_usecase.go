package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rabwill/pizza-api/internal/domain/entities"
	"github.com/rabwill/pizza-api/internal/usecase/interfaces"
)

var (
	ErrInvalidPizzaID         = errors.New("invalid pizza id")
	ErrInvalidToppingID       = errors.New("invalid topping id")
	ErrUnknownToppingCategory = errors.New("unknown topping category")
)

// ICatalogUseCase exposes the read-only storefront catalog.

type ICatalogUseCase interface {
	GetPizzas(ctx context.Context) ([]entities.Pizza, error)
	GetPizza(ctx context.Context, id string) (entities.Pizza, error)
	GetToppings(ctx context.Context, category string) ([]entities.Topping, error)
	GetTopping(ctx context.Context, id string) (entities.Topping, error)
	ToppingCategories() []entities.ToppingCategory
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) GetPizzas(ctx context.Context) ([]entities.Pizza, error) {
	return u.repo.GetPizzas(ctx)
}

func (u *CatalogUseCase) GetPizza(ctx context.Context, id string) (entities.Pizza, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Pizza{}, ErrInvalidPizzaID
	}

	p, err := u.repo.GetPizzaByID(ctx, id)
	if err != nil {
		return entities.Pizza{}, err
	}
	if p.ID == "" {
		return entities.Pizza{}, ErrPizzaNotFound
	}
	return p, nil
}

// GetToppings lists toppings, optionally filtered by category. An empty
// category means no filter.
func (u *CatalogUseCase) GetToppings(ctx context.Context, category string) ([]entities.Topping, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return u.repo.GetToppings(ctx)
	}
	if !entities.IsValidToppingCategory(category) {
		return nil, ErrUnknownToppingCategory
	}
	return u.repo.GetToppingsByCategory(ctx, entities.ToppingCategory(category))
}

func (u *CatalogUseCase) GetTopping(ctx context.Context, id string) (entities.Topping, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Topping{}, ErrInvalidToppingID
	}

	t, err := u.repo.GetToppingByID(ctx, id)
	if err != nil {
		return entities.Topping{}, err
	}
	if t.ID == "" {
		return entities.Topping{}, ErrToppingNotFound
	}
	return t, nil
}

func (u *CatalogUseCase) ToppingCategories() []entities.ToppingCategory {
	return entities.ToppingCategories()
}
