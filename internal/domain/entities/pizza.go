package entities

// Pizza is a catalog item persisted in the pizzas container.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Catalog records are created out-of-band (seed step or content tooling) and
// are read-only for this service.
//
// Toppings lists the IDs of the default toppings baked into the recipe.

type Pizza struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Toppings    []string `json:"toppings"`
}
