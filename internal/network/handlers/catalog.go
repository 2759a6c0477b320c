package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/denmor86/coffeetime/internal/logger"
	"github.com/denmor86/coffeetime/internal/models"
	"github.com/denmor86/coffeetime/internal/services"
	"go.uber.org/zap"
)

// GetMenuHandler — выдача меню: позиции, напиток месяца, любимые напитки
func GetMenuHandler(c services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		items := c.MenuItems()

		response := models.MenuResponse{
			Items:     make([]models.MenuItemResponse, 0, len(items)),
			Featured:  c.Featured(),
			Favorites: c.Favorites(),
		}
		for _, item := range items {
			response.Items = append(response.Items, models.NewMenuItemResponse(item))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// GetSyrupsHandler — выдача каталога сиропов
func GetSyrupsHandler(c services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string][]string{"syrups": c.Syrups()}); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// GetStoresHandler — поиск кофеен по имени, подстрока без учёта регистра
func GetStoresHandler(c services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stores := c.Stores(r.URL.Query().Get("search"))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stores); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
