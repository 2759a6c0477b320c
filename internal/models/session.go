package models

// Экраны приложения
const (
	ScreenHome     = "home"
	ScreenMenu     = "menu"
	ScreenOrder    = "order"
	ScreenStores   = "stores"
	ScreenActivity = "activity"
	ScreenSettings = "settings"
	ScreenAccount  = "account"
)

// SelectedItem - выбранная позиция меню, подставляется в форму заказа
type SelectedItem struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// SessionState - снимок состояния сеанса для отрисовки
type SessionState struct {
	ActiveScreen       string        `json:"active_screen"`
	BaristaMode        bool          `json:"barista_mode"`
	Authenticated      bool          `json:"authenticated"`
	User               string        `json:"user,omitempty"`
	SelectedItem       *SelectedItem `json:"selected_item,omitempty"`
	PendingReviewOrder string        `json:"pending_review_order,omitempty"`
}

// NavigateRequest - модель запроса перехода на экран
type NavigateRequest struct {
	Screen string `json:"screen"`
}

// SelectItemRequest - модель запроса выбора позиции меню
type SelectItemRequest struct {
	Name string `json:"name"`
}

// BaristaModeRequest - модель запроса переключения режима бариста
type BaristaModeRequest struct {
	Enabled bool `json:"enabled"`
}

// ReviewIntentRequest - модель запроса намерения оценить заказ
type ReviewIntentRequest struct {
	Order string `json:"order"`
}

// ReviewIntentResponse - результат запроса намерения оценить заказ
type ReviewIntentResponse struct {
	Order        string `json:"order"`
	AuthRequired bool   `json:"auth_required"`
}
