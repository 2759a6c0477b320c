package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/coffeetime/internal/logger"
	"github.com/denmor86/coffeetime/internal/models"
	"github.com/denmor86/coffeetime/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewOrderHandler — оформление заказа по черновику.
// Успешное оформление переводит сеанс на экран активности.
func NewOrderHandler(o services.OrdersService, s services.SessionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var draft models.OrderDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			logger.Warn("Invalid body:", zap.Error(err))
			http.Error(w, "Invalid body format", http.StatusBadRequest)
			return
		}

		order, err := o.Create(r.Context(), draft)
		if err != nil {
			if errors.Is(err, services.ErrInvalidDraft) {
				logger.Warn("Invalid order draft:", zap.Error(err))
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			logger.Error("Failed to create order:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		s.OrderPlaced()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(models.NewOrderResponse(*order)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetOrdersHandler — список заказов, свежие первыми
func GetOrdersHandler(o services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orders, err := o.GetOrders(r.Context())
		if err != nil {
			logger.Error("Failed to get orders:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		if len(orders) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.OrderResponse
		for _, order := range orders {
			response = append(response, models.NewOrderResponse(order))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// GetOrderHandler — получение заказа по идентификатору
func GetOrderHandler(o services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")

		order, err := o.GetOrder(r.Context(), orderID)
		if err != nil {
			if errors.Is(err, services.ErrOrderNotFound) {
				http.Error(w, "Order not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to get order:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(models.NewOrderResponse(*order)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// ReviewHandler — оценка готового заказа, доступна только после входа
func ReviewHandler(o services.OrdersService, s services.SessionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")

		var review models.ReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
			logger.Warn("Invalid body:", zap.Error(err))
			http.Error(w, "Invalid body format", http.StatusBadRequest)
			return
		}

		err := o.SubmitReview(r.Context(), orderID, review.Rating, review.Review)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRating):
				http.Error(w, "Rating must be from 1 to 5", http.StatusUnprocessableEntity)
			case errors.Is(err, services.ErrOrderNotFound):
				http.Error(w, "Order not found", http.StatusNotFound)
			case errors.Is(err, services.ErrOrderNotReady):
				http.Error(w, "Order is not ready yet", http.StatusConflict)
			default:
				logger.Error("Failed to submit review:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		s.FinishReview()
		w.WriteHeader(http.StatusOK)
	})
}
