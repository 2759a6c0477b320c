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

// DashboardHandler — заказы для стойки бариста, сгруппированы по статусу
func DashboardHandler(o services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orders, err := o.GetOrders(r.Context())
		if err != nil {
			logger.Error("Failed to get orders:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		response := models.DashboardResponse{
			Received:  []models.OrderResponse{},
			Preparing: []models.OrderResponse{},
			Ready:     []models.OrderResponse{},
		}
		for _, order := range orders {
			item := models.NewOrderResponse(order)
			switch order.Status {
			case models.OrderStatusReceived:
				response.Received = append(response.Received, item)
			case models.OrderStatusPreparing:
				response.Preparing = append(response.Preparing, item)
			case models.OrderStatusReady:
				response.Ready = append(response.Ready, item)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// UpdateStatusHandler — смена статуса заказа со стойки бариста
func UpdateStatusHandler(o services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "orderID")

		var request models.StatusRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid body:", zap.Error(err))
			http.Error(w, "Invalid body format", http.StatusBadRequest)
			return
		}

		err := o.UpdateStatus(r.Context(), orderID, request.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidStatus):
				http.Error(w, "Unknown order status", http.StatusUnprocessableEntity)
			case errors.Is(err, services.ErrOrderNotFound):
				http.Error(w, "Order not found", http.StatusNotFound)
			case errors.Is(err, services.ErrStatusRegression):
				http.Error(w, "Order status cannot move backwards", http.StatusConflict)
			default:
				logger.Error("Failed to update order status:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}
