package models

// UserRequest - модель для регистрации и аутентификации пользователя, приходит извне
type UserRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// UserData - модель пользователя из хранилища
type UserData struct {
	Login        string
	PasswordHash string
	Name         string
	Email        string
}

// AccountRequest - модель запроса изменения данных аккаунта
type AccountRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// PasswordRequest - модель запроса смены пароля
type PasswordRequest struct {
	Current string `json:"current_password"`
	New     string `json:"new_password"`
}

// LoginResponse - модель ответа на вход, возвращает отложенную оценку заказа
type LoginResponse struct {
	PendingReviewOrder string `json:"pending_review_order,omitempty"`
}
