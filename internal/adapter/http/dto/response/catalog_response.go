package response

import "github.com/rabwill/pizza-api/internal/domain/entities"

type PizzaResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Toppings    []string `json:"toppings"`
}

func FromPizza(p entities.Pizza) PizzaResponse {
	return PizzaResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Toppings:    p.Toppings,
	}
}

func FromPizzas(pizzas []entities.Pizza) []PizzaResponse {
	out := make([]PizzaResponse, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, FromPizza(p))
	}
	return out
}

type ToppingResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
}

func FromTopping(t entities.Topping) ToppingResponse {
	return ToppingResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Price:       t.Price,
		ImageURL:    t.ImageURL,
		Category:    string(t.Category),
	}
}

func FromToppings(toppings []entities.Topping) []ToppingResponse {
	out := make([]ToppingResponse, 0, len(toppings))
	for _, t := range toppings {
		out = append(out, FromTopping(t))
	}
	return out
}
