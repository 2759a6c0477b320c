package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/coffeetime/internal/helpers"
	"github.com/denmor86/coffeetime/internal/logger"
	"github.com/denmor86/coffeetime/internal/models"
	"github.com/denmor86/coffeetime/internal/services"
)

// RegisterUserHandler — регистрация нового пользователя
func RegisterUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		var user models.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		// регистрация в Identity
		if err := i.RegisterUser(r.Context(), user); err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				logger.Warn("Error register user", user.Login)
				http.Error(w, "login already exist", http.StatusConflict)
			case errors.Is(err, services.ErrBadCredentials):
				http.Error(w, "Login and password are required", http.StatusBadRequest)
			default:
				logger.Error("Error register user", err)
				http.Error(w, "Server error", http.StatusInternalServerError)
			}
			return
		}

		// Генерация JWT токена для зарегистрированного пользователя
		token, err := i.GenerateJWT(user.Login)
		if err != nil {
			logger.Error("Failed to generate token", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		logger.Info("User registered and authenticated", user.Login)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	})
}

// AuthenticateUserHandle — аутентификация пользователя.
// При успешном входе сеанс получает флаг аутентификации, а в ответе
// возвращается заказ, ожидавший оценку до запроса входа.
func AuthenticateUserHandle(i services.IdentityService, s services.SessionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		var user models.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		// аутентификация в Identity
		authenticated, err := i.AuthenticateUser(r.Context(), user)
		if err != nil {
			if errors.Is(err, services.ErrTooManyAttempts) {
				http.Error(w, "Too many attempts", http.StatusTooManyRequests)
				return
			}
			logger.Error("Error authenticate user", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		if !authenticated {
			logger.Warn("Authentication failed", user.Login)
			http.Error(w, "Invalid login/password", http.StatusUnauthorized)
			return
		}
		// генерация токена
		token, err := i.GenerateJWT(user.Login)
		if err != nil {
			logger.Error("Failed to generate token", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}

		pending := s.Login(user.Login)

		logger.Info("User authenticated", user.Login)
		w.Header().Set("Authorization", "Bearer "+token)
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(models.LoginResponse{PendingReviewOrder: pending}); err != nil {
			logger.Error("Failed to encode JSON response:", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// LogoutHandler — выход из аккаунта, сбрасывает флаг аутентификации сеанса
func LogoutHandler(s services.SessionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Logout()
		w.WriteHeader(http.StatusOK)
	})
}

// UpdateAccountHandler — изменение имени и почты аккаунта
func UpdateAccountHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		var account models.AccountRequest
		if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if err := i.UpdateAccount(r.Context(), username, account); err != nil {
			logger.Error("Failed to update account:", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// ChangePasswordHandler — смена пароля с проверкой текущего
func ChangePasswordHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		var request models.PasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if err := i.ChangePassword(r.Context(), username, request); err != nil {
			if errors.Is(err, services.ErrBadCredentials) {
				http.Error(w, "Invalid current password", http.StatusUnauthorized)
				return
			}
			logger.Error("Failed to change password:", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}
