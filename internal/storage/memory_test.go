package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/denmor86/coffeetime/internal/models"
	"github.com/google/go-cmp/cmp"
)

func TestMemory_Orders(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	_, err := store.GetOrder(ctx, "missing")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("Expected ErrOrderNotFound, got '%v'", err)
	}

	first := models.OrderData{ID: "1", Status: models.OrderStatusReceived}
	second := models.OrderData{ID: "2", Status: models.OrderStatusReceived}

	if err := store.AddOrder(ctx, first); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if err := store.AddOrder(ctx, second); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}

	// повторное добавление с тем же идентификатором
	if err := store.AddOrder(ctx, first); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists, got '%v'", err)
	}

	// свежие заказы идут первыми
	orders, err := store.GetOrders(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	ids := make([]string, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
	}
	if diff := cmp.Diff([]string{"2", "1"}, ids); len(diff) != 0 {
		t.Errorf("orders order mismatch:\n %s", diff)
	}
}

func TestMemory_UpdateOrder(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	if err := store.UpdateOrderStatus(ctx, "missing", models.OrderStatusReady); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("Expected ErrOrderNotFound, got '%v'", err)
	}
	if err := store.UpdateOrderReview(ctx, "missing", 5, "x"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("Expected ErrOrderNotFound, got '%v'", err)
	}

	if err := store.AddOrder(ctx, models.OrderData{ID: "1", Status: models.OrderStatusReceived}); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}

	if err := store.UpdateOrderStatus(ctx, "1", models.OrderStatusReady); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if err := store.UpdateOrderReview(ctx, "1", 5, "Great!"); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}

	order, err := store.GetOrder(ctx, "1")
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if order.Status != models.OrderStatusReady || order.Rating != 5 || order.Review != "Great!" {
		t.Errorf("order fields mismatch: %+v", order)
	}
}

func TestMemory_Users(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	_, err := store.GetUser(ctx, "mda")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got '%v'", err)
	}

	user := models.UserData{Login: "mda", PasswordHash: "hash"}
	if err := store.AddUser(ctx, user); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if err := store.AddUser(ctx, user); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists, got '%v'", err)
	}

	user.Name = "Denis"
	if err := store.UpdateUser(ctx, user); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}

	stored, err := store.GetUser(ctx, "mda")
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if stored.Name != "Denis" {
		t.Errorf("Expected updated name, got %q", stored.Name)
	}

	if err := store.UpdateUser(ctx, models.UserData{Login: "nobody"}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got '%v'", err)
	}
}

func TestMemory_Stamps(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	stamps, err := store.GetStamps(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if stamps != 0 {
		t.Errorf("Expected empty counter, got %d", stamps)
	}

	if err := store.SetStamps(ctx, 7); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	stamps, err = store.GetStamps(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if stamps != 7 {
		t.Errorf("Expected 7 stamps, got %d", stamps)
	}
}
