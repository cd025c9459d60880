package handlers

import (
	"errors"
	"log"
	"net/http"

	response "github.com/rabwill/pizza-api/internal/adapter/http/dto/response"
	"github.com/rabwill/pizza-api/internal/usecase"
	"github.com/rabwill/pizza-api/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for the pizza and topping catalog.
// All routes are read-only; catalog writes happen out-of-band.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) GetPizzas(c *gin.Context) {
	pizzas, err := h.usecase.GetPizzas(c.Request.Context())
	if err != nil {
		log.Printf("[catalog][handler] list pizzas failed err=%v", err)
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPizzas(pizzas))
}

func (h *CatalogHandler) GetPizzaByID(c *gin.Context) {
	id := c.Param("id")

	pizza, err := h.usecase.GetPizza(c.Request.Context(), id)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPizza(pizza))
}

// GetToppings lists toppings; ?category= filters by a single category.
func (h *CatalogHandler) GetToppings(c *gin.Context) {
	toppings, err := h.usecase.GetToppings(c.Request.Context(), c.Query("category"))
	if err != nil {
		log.Printf("[catalog][handler] list toppings failed err=%v", err)
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromToppings(toppings))
}

func (h *CatalogHandler) GetToppingByID(c *gin.Context) {
	id := c.Param("id")

	topping, err := h.usecase.GetTopping(c.Request.Context(), id)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTopping(topping))
}

func (h *CatalogHandler) GetToppingCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.ToppingCategories())
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPizzaID),
		errors.Is(err, usecase.ErrInvalidToppingID),
		errors.Is(err, usecase.ErrUnknownToppingCategory):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPizzaNotFound):
		return pkg.NewDomainErrorSimple("PIZZA_NOT_FOUND", "Pizza not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrToppingNotFound):
		return pkg.NewDomainErrorSimple("TOPPING_NOT_FOUND", "Topping not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
