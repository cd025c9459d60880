package interfaces

import (
	"context"

	"github.com/rabwill/pizza-api/internal/domain/entities"
)

// IOrderRepository abstracts order persistence.
//
// Create assigns the order id; callers pass the order with an empty ID field.
//
// UpdateStatusByID is a compare-and-swap: the status flips to `to` only if
// the stored order currently has status `from`. A zero-value Order means the
// order is absent or the precondition failed; the two cases are deliberately
// not distinguished.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	UpdateStatusByID(ctx context.Context, id string, from, to entities.OrderStatus) (entities.Order, error)
}
