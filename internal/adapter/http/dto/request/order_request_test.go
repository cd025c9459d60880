package request

import (
	"errors"
	"testing"
)

func TestCreateOrderRequest_Validate(t *testing.T) {
	valid := CreateOrderRequest{
		UserID: "user-1",
		Items:  []OrderItemRequest{{PizzaID: "p1", Quantity: 2, ExtraToppingIDs: []string{"t1"}}},
	}

	t.Run("valid", func(t *testing.T) {
		if err := valid.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing userId", func(t *testing.T) {
		r := valid
		r.UserID = "   "
		if err := r.Validate(); !errors.Is(err, ErrMissingUserID) {
			t.Fatalf("expected ErrMissingUserID, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		r := valid
		r.Items = nil
		if err := r.Validate(); !errors.Is(err, ErrNoItems) {
			t.Fatalf("expected ErrNoItems, got %v", err)
		}
	})

	t.Run("blank pizza id", func(t *testing.T) {
		r := valid
		r.Items = []OrderItemRequest{{PizzaID: " ", Quantity: 1}}
		if err := r.Validate(); !errors.Is(err, ErrNoItems) {
			t.Fatalf("expected ErrNoItems, got %v", err)
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		r := valid
		r.Items = []OrderItemRequest{{PizzaID: "p1", Quantity: 0}}
		if err := r.Validate(); !errors.Is(err, ErrBadQuantity) {
			t.Fatalf("expected ErrBadQuantity, got %v", err)
		}
	})
}

func TestCreateOrderRequest_ToOrderItems(t *testing.T) {
	r := CreateOrderRequest{
		UserID: "user-1",
		Items:  []OrderItemRequest{{PizzaID: " p1 ", Quantity: 3, ExtraToppingIDs: []string{"t1", "t2"}}},
	}

	items := r.ToOrderItems()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].PizzaID != "p1" || items[0].Quantity != 3 || len(items[0].ExtraToppingIDs) != 2 {
		t.Fatalf("unexpected item: %+v", items[0])
	}
}
