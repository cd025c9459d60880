package entities

// ToppingCategory groups toppings for storefront filtering.

type ToppingCategory string

const (
	ToppingCategoryVegetable ToppingCategory = "vegetable"
	ToppingCategoryMeat      ToppingCategory = "meat"
	ToppingCategoryFish      ToppingCategory = "fish"
	ToppingCategoryFruit     ToppingCategory = "fruit"
	ToppingCategoryCheese    ToppingCategory = "cheese"
	ToppingCategoryHerbs     ToppingCategory = "herbs"
	ToppingCategorySpices    ToppingCategory = "spices"
	ToppingCategorySauce     ToppingCategory = "sauce"
)

// ToppingCategories returns all known categories in display order.
func ToppingCategories() []ToppingCategory {
	return []ToppingCategory{
		ToppingCategoryVegetable,
		ToppingCategoryMeat,
		ToppingCategoryFish,
		ToppingCategoryFruit,
		ToppingCategoryCheese,
		ToppingCategoryHerbs,
		ToppingCategorySpices,
		ToppingCategorySauce,
	}
}

// IsValidToppingCategory reports whether s names a known category.
func IsValidToppingCategory(s string) bool {
	for _, c := range ToppingCategories() {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Topping is a catalog item persisted in the toppings container.
//
// Storage model (DynamoDB):
//   - PK: id

type Topping struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Category    ToppingCategory `json:"category"`
}
