package entities

import "time"

// OrderStatus represents the order lifecycle.
//
// Domain notes:
//   - Orders start as pending and the only transition this service performs
//     is pending -> cancelled.
//   - in-preparation/ready/completed are driven by kitchen operations outside
//     this API.

type OrderStatus string

const (
	OrderStatusPending       OrderStatus = "pending"
	OrderStatusInPreparation OrderStatus = "in-preparation"
	OrderStatusReady         OrderStatus = "ready"
	OrderStatusCompleted     OrderStatus = "completed"
	OrderStatusCancelled     OrderStatus = "cancelled"
)

// OrderItem is one line of an order. ExtraToppingIDs are toppings added on
// top of the pizza's default recipe; each one is priced per unit of quantity.

type OrderItem struct {
	PizzaID         string   `json:"pizzaId"`
	Quantity        int      `json:"quantity"`
	ExtraToppingIDs []string `json:"extraToppingIds,omitempty"`
}

// Order is persisted in the orders container.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - TotalPrice is the priced total in currency units, rounded to 2 decimals.

type Order struct {
	ID                    string      `json:"id"`
	UserID                string      `json:"userId"`
	CreatedAt             time.Time   `json:"createdAt"`
	Items                 []OrderItem `json:"items"`
	EstimatedCompletionAt time.Time   `json:"estimatedCompletionAt"`
	TotalPrice            float64     `json:"totalPrice"`
	Status                OrderStatus `json:"status"`
}
