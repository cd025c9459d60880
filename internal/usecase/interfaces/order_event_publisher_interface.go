package interfaces

import (
	"context"

	"github.com/rabwill/pizza-api/internal/domain/entities"
)

// IOrderEventPublisher abstracts the message broker used to announce order
// lifecycle changes (e.g. RabbitMQ). Publishing is best-effort from the
// engine's point of view: a broker failure never fails the request.

type IOrderEventPublisher interface {
	OrderPlaced(ctx context.Context, o entities.Order) error
	OrderCancelled(ctx context.Context, o entities.Order) error
}
