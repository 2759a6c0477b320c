package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы заказа
const (
	OrderStatusReceived  = "received"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
)

// Варианты порции эспрессо
const (
	ShotSingle = "single"
	ShotDouble = "double"
)

// Варианты молока
const (
	MilkWhole       = "whole"
	MilkLactoseFree = "lactose-free"
	MilkOat         = "oat"
)

// Варианты стакана
const (
	CupPaper     = "paper"
	CupGlass     = "glass"
	CupPorcelain = "porcelain"
)

// OrderDraft - модель черновика заказа, приходит извне при оформлении
type OrderDraft struct {
	ItemName string   `json:"item_name,omitempty"`
	Strength int      `json:"strength"`
	Sugar    int      `json:"sugar"`
	Shot     string   `json:"shot"`
	Milk     string   `json:"milk"`
	Cup      string   `json:"cup"`
	Syrups   []string `json:"syrups"`
}

// OrderData - модель заказа из хранилища
type OrderData struct {
	ID        string
	ItemName  string
	Strength  int
	Sugar     int
	Shot      string
	Milk      string
	Cup       string
	Syrups    []string
	Status    string
	Rating    int
	Review    string
	Price     decimal.Decimal
	CreatedAt time.Time
}

// OrderResponse - модель заказа для выдачи
type OrderResponse struct {
	ID        string   `json:"id"`
	ItemName  string   `json:"item_name,omitempty"`
	Strength  int      `json:"strength"`
	Sugar     int      `json:"sugar"`
	Shot      string   `json:"shot"`
	Milk      string   `json:"milk"`
	Cup       string   `json:"cup"`
	Syrups    []string `json:"syrups"`
	Status    string   `json:"status"`
	Rating    int      `json:"rating,omitempty"`
	Review    string   `json:"review,omitempty"`
	Price     string   `json:"price,omitempty"`
	CreatedAt string   `json:"created_at"`
}

// StatusRequest - модель запроса смены статуса заказа
type StatusRequest struct {
	Status string `json:"status"`
}

// ReviewRequest - модель запроса оценки заказа
type ReviewRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review,omitempty"`
}

// DashboardResponse - модель выдачи для стойки бариста, заказы сгруппированы по статусу
type DashboardResponse struct {
	Received  []OrderResponse `json:"received"`
	Preparing []OrderResponse `json:"preparing"`
	Ready     []OrderResponse `json:"ready"`
}

// NewOrderResponse - преобразование модели хранилища в модель выдачи
func NewOrderResponse(order OrderData) OrderResponse {
	response := OrderResponse{
		ID:        order.ID,
		ItemName:  order.ItemName,
		Strength:  order.Strength,
		Sugar:     order.Sugar,
		Shot:      order.Shot,
		Milk:      order.Milk,
		Cup:       order.Cup,
		Syrups:    order.Syrups,
		Status:    order.Status,
		Rating:    order.Rating,
		Review:    order.Review,
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
	}
	if !order.Price.IsZero() {
		response.Price = PriceLabel(order.Price)
	}
	return response
}

// PriceLabel - форматирование цены для выдачи
func PriceLabel(price decimal.Decimal) string {
	return "$" + price.StringFixed(2)
}
