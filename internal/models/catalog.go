package models

import "github.com/shopspring/decimal"

// MenuItem - позиция меню из каталога
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Popular     bool
}

// MenuItemResponse - позиция меню для выдачи
type MenuItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Popular     bool   `json:"popular,omitempty"`
}

// FeaturedItem - напиток месяца
type FeaturedItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Origin      string `json:"origin"`
	Price       string `json:"price"`
}

// FavoriteItem - любимый напиток гостей с отображаемым рейтингом
type FavoriteItem struct {
	Name   string  `json:"name"`
	Price  string  `json:"price"`
	Rating float64 `json:"rating"`
}

// MenuResponse - модель выдачи всего меню
type MenuResponse struct {
	Items     []MenuItemResponse `json:"items"`
	Featured  FeaturedItem       `json:"featured"`
	Favorites []FavoriteItem     `json:"favorites"`
}

// NewMenuItemResponse - преобразование позиции каталога в модель выдачи
func NewMenuItemResponse(item MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       PriceLabel(item.Price),
		Popular:     item.Popular,
	}
}
