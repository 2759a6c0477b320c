package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/coffeetime/internal/logger"
	"github.com/denmor86/coffeetime/internal/models"
	"github.com/denmor86/coffeetime/internal/notify"
	"github.com/denmor86/coffeetime/internal/storage"
	"github.com/denmor86/coffeetime/internal/validators"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidDraft     = errors.New("invalid order draft")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrStatusRegression = errors.New("order status cannot move backwards")
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderNotReady    = errors.New("order is not ready yet")
	ErrInvalidRating    = errors.New("invalid rating")
)

// Порядок статусов жизненного цикла заказа: received → preparing → ready
var statusRank = map[string]int{
	models.OrderStatusReceived:  1,
	models.OrderStatusPreparing: 2,
	models.OrderStatusReady:     3,
}

type OrdersService interface {
	Create(ctx context.Context, draft models.OrderDraft) (*models.OrderData, error)
	GetOrder(ctx context.Context, id string) (*models.OrderData, error)
	GetOrders(ctx context.Context) ([]models.OrderData, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	SubmitReview(ctx context.Context, id string, rating int, review string) error
}

type Orders struct {
	Storage  storage.IStorage
	Catalog  CatalogService
	Loyalty  LoyaltyService
	Notifier *notify.Notifier
}

// Создание сервиса
func NewOrders(storage storage.IStorage, catalog CatalogService, loyalty LoyaltyService, notifier *notify.Notifier) OrdersService {
	return &Orders{Storage: storage, Catalog: catalog, Loyalty: loyalty, Notifier: notifier}
}

// Create - оформляет заказ по черновику: проверка полей, цена, запись в хранилище
func (s *Orders) Create(ctx context.Context, draft models.OrderDraft) (*models.OrderData, error) {
	if err := s.checkDraft(draft); err != nil {
		return nil, err
	}

	order := models.OrderData{
		ID:        uuid.New().String(),
		ItemName:  draft.ItemName,
		Strength:  draft.Strength,
		Sugar:     draft.Sugar,
		Shot:      draft.Shot,
		Milk:      draft.Milk,
		Cup:       draft.Cup,
		Syrups:    draft.Syrups,
		Status:    models.OrderStatusReceived,
		Price:     s.Catalog.Price(draft),
		CreatedAt: time.Now(),
	}
	if order.Syrups == nil {
		order.Syrups = []string{}
	}

	if err := s.Storage.AddOrder(ctx, order); err != nil {
		logger.Error("Failed to add order", zap.Error(err))
		return nil, err
	}

	s.Notifier.Publish(models.Event{
		Type:    models.EventOrderPlaced,
		OrderID: order.ID,
		Message: "Your order has been received.",
	})

	return &order, nil
}

// checkDraft - проверка полей черновика заказа
func (s *Orders) checkDraft(draft models.OrderDraft) error {
	if !validators.CheckStrength(draft.Strength) {
		return fmt.Errorf("%w: strength must be from 1 to 10", ErrInvalidDraft)
	}
	if !validators.CheckSugar(draft.Sugar) {
		return fmt.Errorf("%w: sugar must be from 0 to 10", ErrInvalidDraft)
	}
	if !validators.CheckShot(draft.Shot) {
		return fmt.Errorf("%w: unknown shot %q", ErrInvalidDraft, draft.Shot)
	}
	if !validators.CheckMilk(draft.Milk) {
		return fmt.Errorf("%w: unknown milk %q", ErrInvalidDraft, draft.Milk)
	}
	if !validators.CheckCup(draft.Cup) {
		return fmt.Errorf("%w: unknown cup %q", ErrInvalidDraft, draft.Cup)
	}
	if !validators.CheckSyrups(draft.Syrups, s.Catalog.Syrups()) {
		return fmt.Errorf("%w: unknown or duplicated syrup", ErrInvalidDraft)
	}
	return nil
}

// GetOrder - возвращает заказ по идентификатору
func (s *Orders) GetOrder(ctx context.Context, id string) (*models.OrderData, error) {
	order, err := s.Storage.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// GetOrders - возвращает все заказы, свежие первыми
func (s *Orders) GetOrders(ctx context.Context) ([]models.OrderData, error) {
	return s.Storage.GetOrders(ctx)
}

// UpdateStatus - смена статуса заказа со стойки бариста.
// Откат назад по жизненному циклу запрещён; повторная установка ready
// допустима и каждый раз начисляет штамп — так ведёт себя приложение.
func (s *Orders) UpdateStatus(ctx context.Context, id string, status string) error {
	if !validators.CheckStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return err
	}

	if statusRank[status] < statusRank[order.Status] {
		return ErrStatusRegression
	}

	if err := s.Storage.UpdateOrderStatus(ctx, id, status); err != nil {
		logger.Error("Failed to update order status", zap.Error(err))
		return err
	}

	s.Notifier.Publish(models.Event{
		Type:    models.EventStatusChanged,
		OrderID: id,
		Message: fmt.Sprintf("Order status changed to %s", status),
	})

	if status == models.OrderStatusReady {
		s.Notifier.Publish(models.Event{
			Type:    models.EventOrderReady,
			OrderID: id,
			Message: "Your order is ready for pickup!",
		})
		if _, err := s.Loyalty.Stamp(ctx); err != nil {
			logger.Error("Failed to add loyalty stamp", zap.Error(err))
			return err
		}
	}

	return nil
}

// SubmitReview - сохраняет оценку и отзыв готового заказа.
// Повторная отправка перезаписывает предыдущую оценку.
func (s *Orders) SubmitReview(ctx context.Context, id string, rating int, review string) error {
	if !validators.CheckRating(rating) {
		return fmt.Errorf("%w: %d", ErrInvalidRating, rating)
	}

	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return err
	}

	if order.Status != models.OrderStatusReady {
		return ErrOrderNotReady
	}

	if err := s.Storage.UpdateOrderReview(ctx, id, rating, review); err != nil {
		logger.Error("Failed to update order review", zap.Error(err))
		return err
	}

	s.Notifier.Publish(models.Event{
		Type:    models.EventReviewReceived,
		OrderID: id,
		Message: "Your review has been submitted.",
	})

	return nil
}
