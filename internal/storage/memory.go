package storage

import (
	"context"
	"sync"

	"github.com/denmor86/coffeetime/internal/models"
)

// Memory - хранилище в памяти процесса. Постоянного хранилища нет,
// всё состояние живёт только в рамках сеанса.
type Memory struct {
	mu     sync.Mutex
	users  map[string]models.UserData
	orders []models.OrderData
	stamps int
}

// Создание хранилища
func NewMemory() *Memory {
	return &Memory{
		users: make(map[string]models.UserData),
	}
}

func (m *Memory) AddUser(_ context.Context, user models.UserData) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Login]; ok {
		return ErrAlreadyExists
	}
	m.users[user.Login] = user
	return nil
}

func (m *Memory) GetUser(_ context.Context, login string) (*models.UserData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[login]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (m *Memory) UpdateUser(_ context.Context, user models.UserData) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Login]; !ok {
		return ErrUserNotFound
	}
	m.users[user.Login] = user
	return nil
}

// AddOrder - добавляет заказ в начало списка, свежие заказы идут первыми
func (m *Memory) AddOrder(_ context.Context, order models.OrderData) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.orders {
		if existing.ID == order.ID {
			return ErrAlreadyExists
		}
	}
	m.orders = append([]models.OrderData{order}, m.orders...)
	return nil
}

func (m *Memory) GetOrder(_ context.Context, id string) (*models.OrderData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, order := range m.orders {
		if order.ID == id {
			return &order, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (m *Memory) GetOrders(_ context.Context) ([]models.OrderData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	orders := make([]models.OrderData, len(m.orders))
	copy(orders, m.orders)
	return orders, nil
}

func (m *Memory) UpdateOrderStatus(_ context.Context, id string, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = status
			return nil
		}
	}
	return ErrOrderNotFound
}

func (m *Memory) UpdateOrderReview(_ context.Context, id string, rating int, review string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Rating = rating
			m.orders[i].Review = review
			return nil
		}
	}
	return ErrOrderNotFound
}

func (m *Memory) GetStamps(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stamps, nil
}

func (m *Memory) SetStamps(_ context.Context, stamps int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stamps = stamps
	return nil
}
