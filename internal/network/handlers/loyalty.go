package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/denmor86/coffeetime/internal/logger"
	"github.com/denmor86/coffeetime/internal/services"
	"go.uber.org/zap"
)

// GetLoyaltyHandler — состояние накопительной карты
func GetLoyaltyHandler(l services.LoyaltyService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		card, err := l.Card(r.Context())
		if err != nil {
			logger.Error("Failed to get loyalty card:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(card); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
