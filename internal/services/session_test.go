package services

import (
	"errors"
	"testing"

	"github.com/denmor86/coffeetime/internal/models"
)

func TestSessionService_Navigate(t *testing.T) {
	session := NewSession(NewCatalog())

	if got := session.Snapshot().ActiveScreen; got != models.ScreenHome {
		t.Fatalf("Expected home screen on start, got %q", got)
	}

	if err := session.Navigate(models.ScreenMenu); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if got := session.Snapshot().ActiveScreen; got != models.ScreenMenu {
		t.Errorf("Expected menu screen, got %q", got)
	}

	err := session.Navigate("dashboard")
	if !errors.Is(err, ErrUnknownScreen) {
		t.Errorf("Expected ErrUnknownScreen, got '%v'", err)
	}
}

func TestSessionService_SelectItem(t *testing.T) {
	session := NewSession(NewCatalog())

	if err := session.SelectItem("Latte"); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}

	state := session.Snapshot()
	if state.ActiveScreen != models.ScreenOrder {
		t.Errorf("Expected order screen, got %q", state.ActiveScreen)
	}
	if state.SelectedItem == nil || state.SelectedItem.Name != "Latte" || state.SelectedItem.Price != "$4.50" {
		t.Errorf("Expected Latte $4.50 preselected, got %+v", state.SelectedItem)
	}

	// уход с формы заказа сбрасывает выбор
	if err := session.Navigate(models.ScreenHome); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if state := session.Snapshot(); state.SelectedItem != nil {
		t.Errorf("Expected selection cleared, got %+v", state.SelectedItem)
	}

	err := session.SelectItem("Flat White")
	if !errors.Is(err, ErrUnknownMenuItem) {
		t.Errorf("Expected ErrUnknownMenuItem, got '%v'", err)
	}
}

func TestSessionService_OrderPlaced(t *testing.T) {
	session := NewSession(NewCatalog())

	if err := session.SelectItem("Spanish Latte"); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	session.OrderPlaced()

	state := session.Snapshot()
	if state.ActiveScreen != models.ScreenActivity {
		t.Errorf("Expected activity screen after order, got %q", state.ActiveScreen)
	}
	if state.SelectedItem != nil {
		t.Errorf("Expected selection cleared after order, got %+v", state.SelectedItem)
	}
}

// Заказ, ожидающий оценку, переживает запрос входа
func TestSessionService_PendingReviewSurvivesLogin(t *testing.T) {
	session := NewSession(NewCatalog())

	if authRequired := session.BeginReview("order-1"); !authRequired {
		t.Fatalf("Expected auth required for anonymous review")
	}

	pending := session.Login("mda")
	if pending != "order-1" {
		t.Errorf("Expected pending review order-1 after login, got %q", pending)
	}
	if !session.Authenticated() {
		t.Errorf("Expected authenticated session after login")
	}

	// после входа оценка больше не требует аутентификации
	if authRequired := session.BeginReview("order-1"); authRequired {
		t.Errorf("Expected no auth required after login")
	}

	session.FinishReview()
	if state := session.Snapshot(); state.PendingReviewOrder != "" {
		t.Errorf("Expected pending review cleared, got %q", state.PendingReviewOrder)
	}
}

func TestSessionService_Logout(t *testing.T) {
	session := NewSession(NewCatalog())

	session.Login("mda")
	session.SetBaristaMode(true)
	session.Logout()

	state := session.Snapshot()
	if state.Authenticated || state.User != "" {
		t.Errorf("Expected anonymous session after logout, got %+v", state)
	}
	if !state.BaristaMode {
		t.Errorf("Expected barista mode untouched by logout")
	}
}
