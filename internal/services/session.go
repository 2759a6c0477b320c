package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/denmor86/coffeetime/internal/models"
	"github.com/denmor86/coffeetime/internal/validators"
)

var (
	ErrUnknownScreen   = errors.New("unknown screen")
	ErrUnknownMenuItem = errors.New("unknown menu item")
)

type SessionService interface {
	Snapshot() models.SessionState
	Navigate(screen string) error
	SelectItem(name string) error
	SetBaristaMode(enabled bool)
	Login(login string) string
	Logout()
	Authenticated() bool
	BeginReview(orderID string) bool
	FinishReview()
	OrderPlaced()
}

// Session - единственный сеанс приложения: флаг аутентификации, активный
// экран, режим бариста, выбранная позиция меню и отложенная оценка заказа.
// Всё состояние меняется только через операции сервиса.
type Session struct {
	Catalog CatalogService

	mu    sync.Mutex
	state models.SessionState
}

// Создание сервиса
func NewSession(catalog CatalogService) SessionService {
	return &Session{
		Catalog: catalog,
		state:   models.SessionState{ActiveScreen: models.ScreenHome},
	}
}

// Snapshot возвращает копию состояния сеанса для отрисовки
func (s *Session) Snapshot() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state
	if s.state.SelectedItem != nil {
		selected := *s.state.SelectedItem
		state.SelectedItem = &selected
	}
	return state
}

// Navigate переключает активный экран. Уход с формы заказа сбрасывает
// выбранную позицию меню.
func (s *Session) Navigate(screen string) error {
	if !validators.CheckScreen(screen) {
		return fmt.Errorf("%w: %q", ErrUnknownScreen, screen)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.ActiveScreen = screen
	if screen != models.ScreenOrder {
		s.state.SelectedItem = nil
	}
	return nil
}

// SelectItem подставляет позицию меню в форму заказа и открывает её
func (s *Session) SelectItem(name string) error {
	item, ok := s.Catalog.MenuItem(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMenuItem, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SelectedItem = &models.SelectedItem{
		Name:  item.Name,
		Price: models.PriceLabel(item.Price),
	}
	s.state.ActiveScreen = models.ScreenOrder
	return nil
}

// SetBaristaMode переключает режим стойки бариста, параллельный остальным экранам
func (s *Session) SetBaristaMode(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.BaristaMode = enabled
}

// Login выставляет флаг аутентификации и возвращает заказ,
// ожидавший оценку до запроса входа
func (s *Session) Login(login string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Authenticated = true
	s.state.User = login
	return s.state.PendingReviewOrder
}

// Logout сбрасывает флаг аутентификации
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Authenticated = false
	s.state.User = ""
	s.state.PendingReviewOrder = ""
}

// Authenticated возвращает флаг аутентификации
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Authenticated
}

// BeginReview запоминает заказ для оценки. Возвращает true, если сначала
// требуется аутентификация; идентификатор заказа переживает запрос входа.
func (s *Session) BeginReview(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.PendingReviewOrder = orderID
	return !s.state.Authenticated
}

// FinishReview сбрасывает отложенную оценку
func (s *Session) FinishReview() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.PendingReviewOrder = ""
}

// OrderPlaced - побочный эффект оформления заказа: переход на экран
// активности и сброс выбранной позиции
func (s *Session) OrderPlaced() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.ActiveScreen = models.ScreenActivity
	s.state.SelectedItem = nil
}
