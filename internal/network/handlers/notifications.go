package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/denmor86/coffeetime/internal/logger"
	"github.com/denmor86/coffeetime/internal/notify"
	"go.uber.org/zap"
)

// GetNotificationsHandler — последние события для клиентской части
func GetNotificationsHandler(n *notify.Notifier) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		events := n.Recent()
		if len(events) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(events); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
