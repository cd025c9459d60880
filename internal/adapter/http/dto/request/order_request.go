package request

import (
	"errors"
	"strings"

	"github.com/rabwill/pizza-api/internal/domain/entities"
)

var (
	ErrMissingUserID = errors.New("userId is required")
	ErrNoItems       = errors.New("order must contain at least one pizza")
	ErrBadQuantity   = errors.New("item quantity must be a positive integer")
)

type OrderItemRequest struct {
	PizzaID         string   `json:"pizzaId" binding:"required"`
	Quantity        int      `json:"quantity" binding:"required"`
	ExtraToppingIDs []string `json:"extraToppingIds"`
}

// CreateOrderRequest is the POST /orders payload.
type CreateOrderRequest struct {
	UserID string             `json:"userId"`
	Items  []OrderItemRequest `json:"items"`
}

// Validate checks the transport-level shape before the engine sees it.
// Referential checks (unknown pizza/topping ids) belong to the engine.
func (r CreateOrderRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return ErrMissingUserID
	}
	if len(r.Items) == 0 {
		return ErrNoItems
	}
	for _, item := range r.Items {
		if strings.TrimSpace(item.PizzaID) == "" {
			return ErrNoItems
		}
		if item.Quantity <= 0 {
			return ErrBadQuantity
		}
	}
	return nil
}

// ToOrderItems converts the payload into domain order items.
func (r CreateOrderRequest) ToOrderItems() []entities.OrderItem {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, entities.OrderItem{
			PizzaID:         strings.TrimSpace(item.PizzaID),
			Quantity:        item.Quantity,
			ExtraToppingIDs: item.ExtraToppingIDs,
		})
	}
	return items
}
