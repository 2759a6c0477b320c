package services

import (
	"strings"

	"github.com/denmor86/coffeetime/internal/models"
	"github.com/shopspring/decimal"
)

type CatalogService interface {
	MenuItems() []models.MenuItem
	MenuItem(name string) (*models.MenuItem, bool)
	Syrups() []string
	Featured() models.FeaturedItem
	Favorites() []models.FavoriteItem
	Stores(query string) []models.StoreData
	Price(draft models.OrderDraft) decimal.Decimal
}

// Стоимость кастомного напитка: база, доплата за сироп и за двойную порцию
var (
	basePrice      = decimal.NewFromFloat(3.00)
	syrupPrice     = decimal.NewFromFloat(0.50)
	doubleShotFee  = decimal.NewFromFloat(0.75)
	featuredPrice  = decimal.NewFromFloat(4.50)
	favoritePrices = map[string]decimal.Decimal{
		"Caramel Latte":      decimal.NewFromFloat(5.00),
		"Vanilla Cappuccino": decimal.NewFromFloat(4.50),
		"Mocha Frappuccino":  decimal.NewFromFloat(5.50),
	}
)

// Catalog - статичный каталог меню, сиропов и кофеен. Только чтение.
type Catalog struct {
	items    []models.MenuItem
	syrups   []string
	featured models.FeaturedItem
	stores   []models.StoreData
}

// Создание сервиса
func NewCatalog() CatalogService {
	return &Catalog{
		items: []models.MenuItem{
			{ID: "latte", Name: "Latte", Description: "Espresso with steamed milk and light foam", Price: decimal.NewFromFloat(4.50), Popular: true},
			{ID: "americano", Name: "Americano", Description: "Espresso with hot water", Price: decimal.NewFromFloat(3.50)},
			{ID: "cappuccino", Name: "Cappuccino", Description: "Equal parts espresso, steamed milk, and foam", Price: decimal.NewFromFloat(4.00), Popular: true},
			{ID: "mocha", Name: "Mocha", Description: "Espresso with chocolate and steamed milk", Price: decimal.NewFromFloat(5.00)},
			{ID: "espresso", Name: "Espresso", Description: "Rich and bold concentrated coffee", Price: decimal.NewFromFloat(3.00)},
		},
		syrups: []string{"Vanilla", "Caramel", "Hazelnut", "Mocha", "Peppermint"},
		featured: models.FeaturedItem{
			Name:        "Spanish Latte",
			Description: "Sweet and creamier flavour",
			Origin:      "Spain",
			Price:       models.PriceLabel(featuredPrice),
		},
		stores: []models.StoreData{
			{ID: 1, Name: "Downtown Brew", Address: "123 Main St, Downtown", Phone: "(555) 123-4567", Hours: "7:00 AM - 8:00 PM", Distance: "0.5 mi"},
			{ID: 2, Name: "Uptown Coffee", Address: "456 Park Ave, Uptown", Phone: "(555) 234-5678", Hours: "6:00 AM - 9:00 PM", Distance: "1.2 mi"},
			{ID: 3, Name: "Riverside Cafe", Address: "789 River Rd, Riverside", Phone: "(555) 345-6789", Hours: "7:30 AM - 7:00 PM", Distance: "2.1 mi"},
			{ID: 4, Name: "Campus Brew Co.", Address: "321 University Blvd", Phone: "(555) 456-7890", Hours: "6:30 AM - 10:00 PM", Distance: "3.0 mi"},
		},
	}
}

// MenuItems возвращает позиции меню
func (c *Catalog) MenuItems() []models.MenuItem {
	items := make([]models.MenuItem, len(c.items))
	copy(items, c.items)
	return items
}

// MenuItem ищет позицию по имени среди меню, напитка месяца и любимых напитков
func (c *Catalog) MenuItem(name string) (*models.MenuItem, bool) {
	for _, item := range c.items {
		if item.Name == name {
			return &item, true
		}
	}
	if name == c.featured.Name {
		return &models.MenuItem{ID: "featured", Name: c.featured.Name, Description: c.featured.Description, Price: featuredPrice}, true
	}
	if price, ok := favoritePrices[name]; ok {
		return &models.MenuItem{ID: "favorite", Name: name, Price: price}, true
	}
	return nil, false
}

// Syrups возвращает каталог сиропов
func (c *Catalog) Syrups() []string {
	syrups := make([]string, len(c.syrups))
	copy(syrups, c.syrups)
	return syrups
}

// Featured возвращает напиток месяца
func (c *Catalog) Featured() models.FeaturedItem {
	return c.featured
}

// Favorites возвращает любимые напитки гостей
func (c *Catalog) Favorites() []models.FavoriteItem {
	return []models.FavoriteItem{
		{Name: "Caramel Latte", Price: models.PriceLabel(favoritePrices["Caramel Latte"]), Rating: 4.8},
		{Name: "Vanilla Cappuccino", Price: models.PriceLabel(favoritePrices["Vanilla Cappuccino"]), Rating: 4.9},
		{Name: "Mocha Frappuccino", Price: models.PriceLabel(favoritePrices["Mocha Frappuccino"]), Rating: 4.7},
	}
}

// Stores возвращает кофейни, имя фильтруется подстрокой без учёта регистра
func (c *Catalog) Stores(query string) []models.StoreData {
	query = strings.ToLower(strings.TrimSpace(query))

	stores := make([]models.StoreData, 0, len(c.stores))
	for _, store := range c.stores {
		if query == "" || strings.Contains(strings.ToLower(store.Name), query) {
			stores = append(stores, store)
		}
	}
	return stores
}

// Price считает стоимость напитка по черновику заказа
func (c *Catalog) Price(draft models.OrderDraft) decimal.Decimal {
	price := basePrice
	if draft.ItemName != "" {
		if item, ok := c.MenuItem(draft.ItemName); ok {
			price = item.Price
		}
	}
	if draft.Shot == models.ShotDouble {
		price = price.Add(doubleShotFee)
	}
	price = price.Add(syrupPrice.Mul(decimal.NewFromInt(int64(len(draft.Syrups)))))
	return price
}
