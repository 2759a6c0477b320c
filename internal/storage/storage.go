package storage

import (
	"context"
	"errors"

	"github.com/denmor86/coffeetime/internal/models"
)

type UsersStorage interface {
	AddUser(ctx context.Context, user models.UserData) error
	GetUser(ctx context.Context, login string) (*models.UserData, error)
	UpdateUser(ctx context.Context, user models.UserData) error
}

type OrdersStorage interface {
	AddOrder(ctx context.Context, order models.OrderData) error
	GetOrder(ctx context.Context, id string) (*models.OrderData, error)
	GetOrders(ctx context.Context) ([]models.OrderData, error)
	UpdateOrderStatus(ctx context.Context, id string, status string) error
	UpdateOrderReview(ctx context.Context, id string, rating int, review string) error
}

type LoyaltyStorage interface {
	GetStamps(ctx context.Context) (int, error)
	SetStamps(ctx context.Context, stamps int) error
}

// IStorage - составной интерфейс хранилища, используется сервисами
type IStorage interface {
	UsersStorage
	OrdersStorage
	LoyaltyStorage
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrOrderNotFound = errors.New("order not found")

	ErrAlreadyExists = errors.New("already exists")
)
