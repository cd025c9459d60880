package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rabwill/pizza-api/internal/domain/entities"
	mock_interfaces "github.com/rabwill/pizza-api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_CreateOrder_Validation(t *testing.T) {
	t.Run("missing userId", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.CreateOrder(context.Background(), "   ", []entities.OrderItem{{PizzaID: "p1", Quantity: 1}})
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("empty items", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.CreateOrder(context.Background(), "user-1", nil)
		if !errors.Is(err, ErrEmptyItems) {
			t.Fatalf("expected ErrEmptyItems, got %v", err)
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, catalog, nil)

		_, err := uc.CreateOrder(context.Background(), "user-1", []entities.OrderItem{{PizzaID: "p1", Quantity: 0}})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("unknown pizza fails without persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, catalog, nil)

		catalog.EXPECT().GetPizzaByID(gomock.Any(), "nope").Return(entities.Pizza{}, nil)

		_, err := uc.CreateOrder(context.Background(), "user-1", []entities.OrderItem{{PizzaID: "nope", Quantity: 1}})
		if !errors.Is(err, ErrPizzaNotFound) {
			t.Fatalf("expected ErrPizzaNotFound, got %v", err)
		}
	})

	t.Run("unknown topping fails without persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, catalog, nil)

		catalog.EXPECT().GetPizzaByID(gomock.Any(), "p1").Return(entities.Pizza{ID: "p1", Price: 10}, nil)
		catalog.EXPECT().GetToppingByID(gomock.Any(), "missing").Return(entities.Topping{}, nil)

		_, err := uc.CreateOrder(context.Background(), "user-1", []entities.OrderItem{
			{PizzaID: "p1", Quantity: 1, ExtraToppingIDs: []string{"missing"}},
		})
		if !errors.Is(err, ErrToppingNotFound) {
			t.Fatalf("expected ErrToppingNotFound, got %v", err)
		}
	})

	t.Run("catalog error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, catalog, nil)

		catalog.EXPECT().GetPizzaByID(gomock.Any(), "p1").Return(entities.Pizza{}, errors.New("db"))

		_, err := uc.CreateOrder(context.Background(), "user-1", []entities.OrderItem{{PizzaID: "p1", Quantity: 1}})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestOrderUseCase_CreateOrder_PricingAndStamping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(orders, catalog, nil)

	catalog.EXPECT().GetPizzaByID(gomock.Any(), "p1").Return(entities.Pizza{ID: "p1", Price: 10.00}, nil)
	catalog.EXPECT().GetToppingByID(gomock.Any(), "t1").Return(entities.Topping{ID: "t1", Price: 1.50}, nil)

	before := time.Now().UTC()
	orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
		func(_ context.Context, o entities.Order) (entities.Order, error) {
			if o.ID != "" {
				t.Fatalf("id assignment belongs to the repository, got %q", o.ID)
			}
			if o.Status != entities.OrderStatusPending {
				t.Fatalf("expected pending, got %s", o.Status)
			}
			if math.Abs(o.TotalPrice-23.00) > 1e-9 {
				t.Fatalf("expected total 23.00, got %v", o.TotalPrice)
			}
			if got := o.EstimatedCompletionAt.Sub(o.CreatedAt); got != 30*time.Minute {
				t.Fatalf("expected 30m completion offset, got %v", got)
			}
			if o.CreatedAt.Before(before) {
				t.Fatalf("createdAt not stamped: %v", o.CreatedAt)
			}
			o.ID = "order-1"
			return o, nil
		},
	)

	res, err := uc.CreateOrder(context.Background(), " user-1 ", []entities.OrderItem{
		{PizzaID: "p1", Quantity: 2, ExtraToppingIDs: []string{"t1"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID != "order-1" {
		t.Fatalf("expected persisted id, got %q", res.ID)
	}
	if res.UserID != "user-1" {
		t.Fatalf("expected trimmed userId, got %q", res.UserID)
	}
}

func TestOrderUseCase_CreateOrder_MultiItemTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(orders, catalog, nil)

	catalog.EXPECT().GetPizzaByID(gomock.Any(), "p1").Return(entities.Pizza{ID: "p1", Price: 12.90}, nil)
	catalog.EXPECT().GetPizzaByID(gomock.Any(), "p2").Return(entities.Pizza{ID: "p2", Price: 9.99}, nil)
	catalog.EXPECT().GetToppingByID(gomock.Any(), "t1").Return(entities.Topping{ID: "t1", Price: 0.75}, nil)
	catalog.EXPECT().GetToppingByID(gomock.Any(), "t2").Return(entities.Topping{ID: "t2", Price: 1.25}, nil)

	orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
		func(_ context.Context, o entities.Order) (entities.Order, error) {
			// (12.90 + 0.75 + 1.25) * 3 + 9.99 * 1 = 44.70 + 9.99 = 54.69
			if math.Abs(o.TotalPrice-54.69) > 1e-9 {
				t.Fatalf("expected total 54.69, got %v", o.TotalPrice)
			}
			o.ID = "order-2"
			return o, nil
		},
	)

	_, err := uc.CreateOrder(context.Background(), "user-1", []entities.OrderItem{
		{PizzaID: "p1", Quantity: 3, ExtraToppingIDs: []string{"t1", "t2"}},
		{PizzaID: "p2", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderUseCase_CreateOrder_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	events := mock_interfaces.NewMockIOrderEventPublisher(ctrl)
	uc := NewOrderUseCase(orders, catalog, events)

	catalog.EXPECT().GetPizzaByID(gomock.Any(), "p1").Return(entities.Pizza{ID: "p1", Price: 8}, nil)
	orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.Order) (entities.Order, error) {
			o.ID = "order-3"
			return o, nil
		},
	)
	events.EXPECT().OrderPlaced(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	// A broker failure must not fail the request.
	res, err := uc.CreateOrder(context.Background(), "user-1", []entities.OrderItem{{PizzaID: "p1", Quantity: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID != "order-3" {
		t.Fatalf("expected order-3, got %q", res.ID)
	}
}

func TestOrderUseCase_CancelOrder(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.CancelOrder(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("pending order is cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		events := mock_interfaces.NewMockIOrderEventPublisher(ctrl)
		uc := NewOrderUseCase(orders, nil, events)

		cancelled := entities.Order{ID: "order-1", UserID: "user-1", Status: entities.OrderStatusCancelled}
		orders.EXPECT().
			UpdateStatusByID(gomock.Any(), "order-1", entities.OrderStatusPending, entities.OrderStatusCancelled).
			Return(cancelled, nil)
		events.EXPECT().OrderCancelled(gomock.Any(), cancelled).Return(nil)

		res, err := uc.CancelOrder(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.OrderStatusCancelled {
			t.Fatalf("expected cancelled, got %s", res.Status)
		}
	})

	t.Run("absent or non-pending yields the same outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil, nil)

		orders.EXPECT().
			UpdateStatusByID(gomock.Any(), "order-1", entities.OrderStatusPending, entities.OrderStatusCancelled).
			Return(entities.Order{}, nil)

		_, err := uc.CancelOrder(context.Background(), "order-1")
		if !errors.Is(err, ErrOrderNotCancellable) {
			t.Fatalf("expected ErrOrderNotCancellable, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil, nil)

		orders.EXPECT().
			UpdateStatusByID(gomock.Any(), "order-1", entities.OrderStatusPending, entities.OrderStatusCancelled).
			Return(entities.Order{}, errors.New("db"))

		_, err := uc.CancelOrder(context.Background(), "order-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{}, nil)

		_, err := uc.GetByID(context.Background(), "order-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{ID: "order-1"}, nil)

		o, err := uc.GetByID(context.Background(), " order-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID != "order-1" {
			t.Fatalf("expected order-1, got %q", o.ID)
		}
	})
}
