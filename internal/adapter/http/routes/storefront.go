package routes

import (
	"github.com/rabwill/pizza-api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPizzas   = "/pizzas"
	PathToppings = "/toppings"
	PathOrders   = "/orders"
)

func addStorefrontRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, orderHandler *handlers.OrderHandler) {
	pizzas := rg.Group(PathPizzas)
	{
		pizzas.GET("", catalogHandler.GetPizzas)
		pizzas.GET("/:id", catalogHandler.GetPizzaByID)
	}

	toppings := rg.Group(PathToppings)
	{
		toppings.GET("", catalogHandler.GetToppings)
		// Static route must be registered before the :id wildcard.
		toppings.GET("/categories", catalogHandler.GetToppingCategories)
		toppings.GET("/:id", catalogHandler.GetToppingByID)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/:id", orderHandler.GetOrderByID)
		orders.DELETE("/:id", orderHandler.CancelOrder)
	}
}
