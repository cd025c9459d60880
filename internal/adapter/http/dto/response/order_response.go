package response

import (
	"time"

	"github.com/rabwill/pizza-api/internal/domain/entities"
)

type OrderItemResponse struct {
	PizzaID         string   `json:"pizzaId"`
	Quantity        int      `json:"quantity"`
	ExtraToppingIDs []string `json:"extraToppingIds,omitempty"`
}

type OrderResponse struct {
	ID                    string              `json:"id"`
	UserID                string              `json:"userId"`
	CreatedAt             time.Time           `json:"createdAt"`
	Items                 []OrderItemResponse `json:"items"`
	EstimatedCompletionAt time.Time           `json:"estimatedCompletionAt"`
	TotalPrice            float64             `json:"totalPrice"`
	Status                string              `json:"status"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			PizzaID:         it.PizzaID,
			Quantity:        it.Quantity,
			ExtraToppingIDs: it.ExtraToppingIDs,
		})
	}
	return OrderResponse{
		ID:                    o.ID,
		UserID:                o.UserID,
		CreatedAt:             o.CreatedAt,
		Items:                 items,
		EstimatedCompletionAt: o.EstimatedCompletionAt,
		TotalPrice:            o.TotalPrice,
		Status:                string(o.Status),
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
