package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rabwill/pizza-api/internal/adapter/http/handlers/mocks"
	"github.com/rabwill/pizza-api/internal/domain/entities"
	"github.com/rabwill/pizza-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(h *OrderHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/orders", h.CreateOrder)
	r.GET("/api/orders", h.GetOrders)
	r.GET("/api/orders/:id", h.GetOrderByID)
	r.DELETE("/api/orders/:id", h.CancelOrder)
	return r
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing userId", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(`{"items":[{"pizzaId":"p1","quantity":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(`{"userId":"user-1","items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown pizza maps to 400 naming the id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().CreateOrder(gomock.Any(), "user-1", gomock.Any()).
			Return(entities.Order{}, fmt.Errorf("%w: p-ghost", usecase.ErrPizzaNotFound))

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(`{"userId":"user-1","items":[{"pizzaId":"p-ghost","quantity":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["code"] != "PIZZA_NOT_FOUND" {
			t.Fatalf("expected PIZZA_NOT_FOUND, got %s", body["code"])
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		uc.EXPECT().CreateOrder(gomock.Any(), "user-1", []entities.OrderItem{
			{PizzaID: "p1", Quantity: 2, ExtraToppingIDs: []string{"t1"}},
		}).Return(entities.Order{
			ID:                    "order-1",
			UserID:                "user-1",
			CreatedAt:             now,
			Items:                 []entities.OrderItem{{PizzaID: "p1", Quantity: 2, ExtraToppingIDs: []string{"t1"}}},
			EstimatedCompletionAt: now.Add(30 * time.Minute),
			TotalPrice:            23.00,
			Status:                entities.OrderStatusPending,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(`{"userId":"user-1","items":[{"pizzaId":"p1","quantity":2,"extraToppingIds":["t1"]}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["id"] != "order-1" || body["status"] != "pending" || body["totalPrice"] != 23.00 {
			t.Fatalf("unexpected response: %v", body)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().CreateOrder(gomock.Any(), "user-1", gomock.Any()).Return(entities.Order{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(`{"userId":"user-1","items":[{"pizzaId":"p1","quantity":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	r := newOrderRouter(NewOrderHandler(uc))

	uc.EXPECT().List(gomock.Any()).Return([]entities.Order{{ID: "order-1"}, {ID: "order-2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(body))
	}
}

func TestOrderHandler_GetOrderByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{ID: "order-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/order-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_CancelOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().CancelOrder(gomock.Any(), "order-1").
			Return(entities.Order{ID: "order-1", Status: entities.OrderStatusCancelled}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/orders/order-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["status"] != "cancelled" {
			t.Fatalf("expected cancelled, got %v", body["status"])
		}
	})

	t.Run("not cancellable is a single 404 outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().CancelOrder(gomock.Any(), "order-1").
			Return(entities.Order{}, usecase.ErrOrderNotCancellable)

		req := httptest.NewRequest(http.MethodDelete, "/api/orders/order-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["error"] != "Order not found or cannot be cancelled" {
			t.Fatalf("unexpected message: %s", body["error"])
		}
	})
}
