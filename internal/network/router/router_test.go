package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/denmor86/coffeetime/internal/config"
	"github.com/denmor86/coffeetime/internal/logger"
	"github.com/denmor86/coffeetime/internal/models"
	"github.com/denmor86/coffeetime/internal/notify"
	"github.com/denmor86/coffeetime/internal/storage"
)

type testEnv struct {
	Server   *httptest.Server
	Storage  *storage.Memory
	Notifier *notify.Notifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		logger.Panic(err)
	}

	store := storage.NewMemory()
	notifier := notify.NewNotifier(cfg.EventBuffer)

	ctx, cancel := context.WithCancel(context.Background())
	notifier.Start(ctx)

	router := NewRouter(cfg, store, notifier)
	server := httptest.NewServer(router.HandleRouter())

	t.Cleanup(func() {
		server.Close()
		notifier.Stop()
		cancel()
	})

	return &testEnv{Server: server, Storage: store, Notifier: notifier}
}

func (e *testEnv) request(t *testing.T, method, target, token string, payload any) (int, []byte, http.Header) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("Failed to marshal request: %v", err)
		}
		body = bytes.NewBuffer(data)
	}

	request, err := http.NewRequest(method, e.Server.URL+target, body)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := e.Server.Client().Do(request)
	if err != nil {
		t.Fatalf("Failed to do request: %v", err)
	}
	defer response.Body.Close()

	data, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("Failed to read response: %v", err)
	}
	return response.StatusCode, data, response.Header
}

// Сценарий: оформление заказа, доведение до ready, штамп лояльности,
// оценка после входа. Отложенная оценка переживает запрос аутентификации.
func TestRouter_OrderLifecycleScenario(t *testing.T) {
	env := newTestEnv(t)

	draft := models.OrderDraft{
		Strength: 5,
		Sugar:    3,
		Shot:     models.ShotSingle,
		Milk:     models.MilkWhole,
		Cup:      models.CupPaper,
		Syrups:   []string{},
	}

	// оформление заказа
	code, body, _ := env.request(t, http.MethodPost, "/api/orders", "", draft)
	if code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", code, body)
	}
	var order models.OrderResponse
	if err := json.Unmarshal(body, &order); err != nil {
		t.Fatalf("Failed to unmarshal order: %v", err)
	}
	if order.Status != models.OrderStatusReceived {
		t.Errorf("Expected status received, got %q", order.Status)
	}

	// заказ появился в списке активности
	code, body, _ = env.request(t, http.MethodGet, "/api/orders", "", nil)
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	var orders []models.OrderResponse
	if err := json.Unmarshal(body, &orders); err != nil {
		t.Fatalf("Failed to unmarshal orders: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != order.ID {
		t.Fatalf("Expected the placed order in activity list, got %+v", orders)
	}

	// оформление переводит сеанс на экран активности
	code, body, _ = env.request(t, http.MethodGet, "/api/session/", "", nil)
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	var state models.SessionState
	if err := json.Unmarshal(body, &state); err != nil {
		t.Fatalf("Failed to unmarshal session: %v", err)
	}
	if state.ActiveScreen != models.ScreenActivity {
		t.Errorf("Expected activity screen, got %q", state.ActiveScreen)
	}

	// бариста доводит заказ до готовности
	code, _, _ = env.request(t, http.MethodPost, "/api/barista/orders/"+order.ID+"/status", "", models.StatusRequest{Status: models.OrderStatusReady})
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}

	// начислен один штамп
	code, body, _ = env.request(t, http.MethodGet, "/api/loyalty", "", nil)
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	var card models.LoyaltyCard
	if err := json.Unmarshal(body, &card); err != nil {
		t.Fatalf("Failed to unmarshal loyalty card: %v", err)
	}
	if card.Stamps != 1 {
		t.Errorf("Expected 1 stamp, got %d", card.Stamps)
	}

	// оценка без аутентификации отклоняется
	code, _, _ = env.request(t, http.MethodPost, "/api/orders/"+order.ID+"/review", "", models.ReviewRequest{Rating: 5, Review: "Great!"})
	if code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without token, got %d", code)
	}

	// намерение оценить запоминается и требует входа
	code, body, _ = env.request(t, http.MethodPost, "/api/session/review-intent", "", models.ReviewIntentRequest{Order: order.ID})
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	var intent models.ReviewIntentResponse
	if err := json.Unmarshal(body, &intent); err != nil {
		t.Fatalf("Failed to unmarshal intent: %v", err)
	}
	if !intent.AuthRequired {
		t.Errorf("Expected auth required for anonymous review")
	}

	// регистрация и вход
	user := models.UserRequest{Login: "a@b.com", Password: "x"}
	code, _, _ = env.request(t, http.MethodPost, "/api/user/register", "", user)
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	code, body, headers := env.request(t, http.MethodPost, "/api/user/login", "", user)
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	token := headers.Get("Authorization")
	if len(token) <= len("Bearer ") {
		t.Fatalf("Expected Bearer token, got %q", token)
	}
	token = token[len("Bearer "):]

	// отложенная оценка пережила запрос входа
	var login models.LoginResponse
	if err := json.Unmarshal(body, &login); err != nil {
		t.Fatalf("Failed to unmarshal login response: %v", err)
	}
	if login.PendingReviewOrder != order.ID {
		t.Errorf("Expected pending review %q, got %q", order.ID, login.PendingReviewOrder)
	}

	// оценка с токеном проходит
	code, _, _ = env.request(t, http.MethodPost, "/api/orders/"+order.ID+"/review", token, models.ReviewRequest{Rating: 5, Review: "Great!"})
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}

	code, body, _ = env.request(t, http.MethodGet, "/api/orders/"+order.ID, "", nil)
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	var rated models.OrderResponse
	if err := json.Unmarshal(body, &rated); err != nil {
		t.Fatalf("Failed to unmarshal order: %v", err)
	}
	if rated.Rating != 5 || rated.Review != "Great!" {
		t.Errorf("Expected rating 5 and review, got %+v", rated)
	}
}

// Сценарий: счётчик лояльности на девяти штампах, ещё один ready —
// сброс в ноль и событие награды.
func TestRouter_LoyaltyRewardScenario(t *testing.T) {
	env := newTestEnv(t)

	if err := env.Storage.SetStamps(context.Background(), 9); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}

	events := env.Notifier.Subscribe()

	draft := models.OrderDraft{
		Strength: 5, Sugar: 3, Shot: models.ShotSingle, Milk: models.MilkWhole, Cup: models.CupPaper,
	}
	code, body, _ := env.request(t, http.MethodPost, "/api/orders", "", draft)
	if code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", code)
	}
	var order models.OrderResponse
	if err := json.Unmarshal(body, &order); err != nil {
		t.Fatalf("Failed to unmarshal order: %v", err)
	}

	code, _, _ = env.request(t, http.MethodPost, "/api/barista/orders/"+order.ID+"/status", "", models.StatusRequest{Status: models.OrderStatusReady})
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}

	code, body, _ = env.request(t, http.MethodGet, "/api/loyalty", "", nil)
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	var card models.LoyaltyCard
	if err := json.Unmarshal(body, &card); err != nil {
		t.Fatalf("Failed to unmarshal loyalty card: %v", err)
	}
	if card.Stamps != 0 {
		t.Errorf("Expected counter reset to 0, got %d", card.Stamps)
	}

	// событие награды дошло до подписчика
	deadline := time.After(2 * time.Second)
	for {
		select {
		case event := <-events:
			if event.Type == models.EventRewardEarned {
				return
			}
		case <-deadline:
			t.Fatal("Expected reward event, got none")
		}
	}
}

func TestRouter_StatusErrors(t *testing.T) {
	env := newTestEnv(t)

	// неизвестный заказ
	code, _, _ := env.request(t, http.MethodPost, "/api/barista/orders/missing/status", "", models.StatusRequest{Status: models.OrderStatusReady})
	if code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown order, got %d", code)
	}

	draft := models.OrderDraft{
		Strength: 5, Sugar: 3, Shot: models.ShotSingle, Milk: models.MilkWhole, Cup: models.CupPaper,
	}
	codeCreated, body, _ := env.request(t, http.MethodPost, "/api/orders", "", draft)
	if codeCreated != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", codeCreated)
	}
	var order models.OrderResponse
	if err := json.Unmarshal(body, &order); err != nil {
		t.Fatalf("Failed to unmarshal order: %v", err)
	}

	// неизвестный статус
	code, _, _ = env.request(t, http.MethodPost, "/api/barista/orders/"+order.ID+"/status", "", models.StatusRequest{Status: "completed"})
	if code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for unknown status, got %d", code)
	}

	// откат назад по жизненному циклу запрещён
	code, _, _ = env.request(t, http.MethodPost, "/api/barista/orders/"+order.ID+"/status", "", models.StatusRequest{Status: models.OrderStatusReady})
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	code, _, _ = env.request(t, http.MethodPost, "/api/barista/orders/"+order.ID+"/status", "", models.StatusRequest{Status: models.OrderStatusReceived})
	if code != http.StatusConflict {
		t.Errorf("Expected 409 for status regression, got %d", code)
	}
}

func TestRouter_CatalogAndStores(t *testing.T) {
	env := newTestEnv(t)

	code, body, _ := env.request(t, http.MethodGet, "/api/catalog/menu", "", nil)
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	var menu models.MenuResponse
	if err := json.Unmarshal(body, &menu); err != nil {
		t.Fatalf("Failed to unmarshal menu: %v", err)
	}
	if len(menu.Items) != 5 {
		t.Errorf("Expected 5 menu items, got %d", len(menu.Items))
	}
	if menu.Featured.Name != "Spanish Latte" {
		t.Errorf("Expected featured Spanish Latte, got %q", menu.Featured.Name)
	}

	code, body, _ = env.request(t, http.MethodGet, "/api/stores?search=brew", "", nil)
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	var stores []models.StoreData
	if err := json.Unmarshal(body, &stores); err != nil {
		t.Fatalf("Failed to unmarshal stores: %v", err)
	}
	if len(stores) != 2 {
		t.Errorf("Expected 2 stores for 'brew', got %d", len(stores))
	}
}
