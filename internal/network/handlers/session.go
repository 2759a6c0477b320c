package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/coffeetime/internal/logger"
	"github.com/denmor86/coffeetime/internal/models"
	"github.com/denmor86/coffeetime/internal/services"
	"go.uber.org/zap"
)

// GetSessionHandler — снимок состояния сеанса для отрисовки
func GetSessionHandler(s services.SessionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(s.Snapshot()); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// NavigateHandler — переход на экран приложения
func NavigateHandler(s services.SessionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.NavigateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid body:", zap.Error(err))
			http.Error(w, "Invalid body format", http.StatusBadRequest)
			return
		}

		if err := s.Navigate(request.Screen); err != nil {
			if errors.Is(err, services.ErrUnknownScreen) {
				http.Error(w, "Unknown screen", http.StatusUnprocessableEntity)
				return
			}
			logger.Error("Failed to navigate:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// SelectItemHandler — выбор позиции меню, открывает форму заказа с подстановкой
func SelectItemHandler(s services.SessionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.SelectItemRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid body:", zap.Error(err))
			http.Error(w, "Invalid body format", http.StatusBadRequest)
			return
		}

		if err := s.SelectItem(request.Name); err != nil {
			if errors.Is(err, services.ErrUnknownMenuItem) {
				http.Error(w, "Unknown menu item", http.StatusNotFound)
				return
			}
			logger.Error("Failed to select item:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// BaristaModeHandler — переключение режима стойки бариста
func BaristaModeHandler(s services.SessionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.BaristaModeRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid body:", zap.Error(err))
			http.Error(w, "Invalid body format", http.StatusBadRequest)
			return
		}

		s.SetBaristaMode(request.Enabled)
		w.WriteHeader(http.StatusOK)
	})
}

// ReviewIntentHandler — намерение оценить заказ. Без аутентификации заказ
// запоминается, а клиенту сообщается, что сначала нужен вход.
func ReviewIntentHandler(s services.SessionService, o services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.ReviewIntentRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid body:", zap.Error(err))
			http.Error(w, "Invalid body format", http.StatusBadRequest)
			return
		}

		if _, err := o.GetOrder(r.Context(), request.Order); err != nil {
			if errors.Is(err, services.ErrOrderNotFound) {
				http.Error(w, "Order not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to get order:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		response := models.ReviewIntentResponse{
			Order:        request.Order,
			AuthRequired: s.BeginReview(request.Order),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
