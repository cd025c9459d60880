package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/rabwill/pizza-api/internal/domain/entities"
	"github.com/rabwill/pizza-api/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// EstimatedCompletionOffset is the fixed lead time quoted on every order.
const EstimatedCompletionOffset = 30 * time.Minute

var (
	ErrInvalidUserID       = errors.New("invalid userId")
	ErrEmptyItems          = errors.New("order must contain at least one pizza")
	ErrInvalidQuantity     = errors.New("invalid item quantity")
	ErrPizzaNotFound       = errors.New("pizza not found")
	ErrToppingNotFound     = errors.New("topping not found")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderNotCancellable = errors.New("order not found or cannot be cancelled")
)

// IOrderUseCase exposes the order pricing and lifecycle operations:
//   - CreateOrder validates a request against the catalog, prices it and
//     persists it as pending.
//   - CancelOrder performs the only mutating transition this service owns,
//     pending -> cancelled.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, userID string, items []entities.OrderItem) (entities.Order, error)
	CancelOrder(ctx context.Context, id string) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
}

type OrderUseCase struct {
	orders  interfaces.IOrderRepository
	catalog interfaces.ICatalogRepository
	events  interfaces.IOrderEventPublisher
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase wires the engine. events may be nil when no broker is
// configured.
func NewOrderUseCase(orders interfaces.IOrderRepository, catalog interfaces.ICatalogRepository, events interfaces.IOrderEventPublisher) *OrderUseCase {
	return &OrderUseCase{orders: orders, catalog: catalog, events: events}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, userID string, items []entities.OrderItem) (entities.Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Order{}, ErrInvalidUserID
	}
	if len(items) == 0 {
		return entities.Order{}, ErrEmptyItems
	}

	total, err := u.priceItems(ctx, items)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	o := entities.Order{
		UserID:                userID,
		CreatedAt:             now,
		Items:                 items,
		EstimatedCompletionAt: now.Add(EstimatedCompletionOffset),
		TotalPrice:            total,
		Status:                entities.OrderStatusPending,
	}

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}

	if u.events != nil {
		if err := u.events.OrderPlaced(ctx, created); err != nil {
			log.Printf("[order][usecase] order.placed publish failed order_id=%s err=%v", created.ID, err)
		}
	}
	return created, nil
}

// priceItems resolves each item against the catalog and computes the order
// total. Money is computed in decimal and each line is rounded half away from
// zero to 2 decimals before summing, so the total is stable regardless of the
// order items are resolved in.
func (u *OrderUseCase) priceItems(ctx context.Context, items []entities.OrderItem) (float64, error) {
	total := decimal.Zero
	for _, item := range items {
		if item.Quantity <= 0 {
			return 0, fmt.Errorf("%w: pizza %s quantity %d", ErrInvalidQuantity, item.PizzaID, item.Quantity)
		}

		pizza, err := u.catalog.GetPizzaByID(ctx, item.PizzaID)
		if err != nil {
			return 0, err
		}
		if pizza.ID == "" {
			return 0, fmt.Errorf("%w: %s", ErrPizzaNotFound, item.PizzaID)
		}

		unit := decimal.NewFromFloat(pizza.Price)
		for _, toppingID := range item.ExtraToppingIDs {
			topping, err := u.catalog.GetToppingByID(ctx, toppingID)
			if err != nil {
				return 0, err
			}
			if topping.ID == "" {
				return 0, fmt.Errorf("%w: %s", ErrToppingNotFound, toppingID)
			}
			unit = unit.Add(decimal.NewFromFloat(topping.Price))
		}

		line := unit.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		total = total.Add(line)
	}
	f, _ := total.Float64()
	return f, nil
}

func (u *OrderUseCase) CancelOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	// The repository enforces pending -> cancelled as a compare-and-swap, so
	// a concurrent transition surfaces as a zero Order here rather than being
	// overwritten.
	cancelled, err := u.orders.UpdateStatusByID(ctx, id, entities.OrderStatusPending, entities.OrderStatusCancelled)
	if err != nil {
		return entities.Order{}, err
	}
	if cancelled.ID == "" {
		return entities.Order{}, ErrOrderNotCancellable
	}

	if u.events != nil {
		if err := u.events.OrderCancelled(ctx, cancelled); err != nil {
			log.Printf("[order][usecase] order.cancelled publish failed order_id=%s err=%v", cancelled.ID, err)
		}
	}
	return cancelled, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	return u.orders.List(ctx)
}
