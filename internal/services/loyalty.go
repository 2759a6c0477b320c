package services

import (
	"context"
	"fmt"

	"github.com/denmor86/coffeetime/internal/logger"
	"github.com/denmor86/coffeetime/internal/models"
	"github.com/denmor86/coffeetime/internal/notify"
	"github.com/denmor86/coffeetime/internal/storage"
	"go.uber.org/zap"
)

const DefaultStampTarget = 10

type LoyaltyService interface {
	Stamp(ctx context.Context) (models.StampResult, error)
	Card(ctx context.Context) (models.LoyaltyCard, error)
}

// Loyalty - накопительная карта. Один штамп за каждый заказ, доведённый до
// статуса ready; на десятом штампе счётчик обнуляется и начисляется награда.
type Loyalty struct {
	Storage  storage.IStorage
	Notifier *notify.Notifier
	Target   int
}

// Создание сервиса
func NewLoyalty(storage storage.IStorage, notifier *notify.Notifier, target int) LoyaltyService {
	if target <= 0 {
		target = DefaultStampTarget
	}
	return &Loyalty{Storage: storage, Notifier: notifier, Target: target}
}

// Stamp начисляет один штамп, с переполнением счётчика в ноль и наградой
func (s *Loyalty) Stamp(ctx context.Context) (models.StampResult, error) {
	stamps, err := s.Storage.GetStamps(ctx)
	if err != nil {
		logger.Error("Failed to get stamps", zap.Error(err))
		return models.StampResult{}, err
	}

	next := stamps + 1
	if next >= s.Target {
		if err := s.Storage.SetStamps(ctx, 0); err != nil {
			return models.StampResult{}, err
		}
		s.Notifier.Publish(models.Event{
			Type:    models.EventRewardEarned,
			Message: fmt.Sprintf("You've collected %d stamps! Enjoy your free coffee!", s.Target),
		})
		return models.StampResult{Stamps: 0, Reward: true}, nil
	}

	if err := s.Storage.SetStamps(ctx, next); err != nil {
		return models.StampResult{}, err
	}
	suffix := "s"
	if next == 1 {
		suffix = ""
	}
	s.Notifier.Publish(models.Event{
		Type:    models.EventStampEarned,
		Message: fmt.Sprintf("You now have %d stamp%s!", next, suffix),
		Stamps:  next,
	})
	return models.StampResult{Stamps: next, Reward: false}, nil
}

// Card возвращает состояние накопительной карты
func (s *Loyalty) Card(ctx context.Context) (models.LoyaltyCard, error) {
	stamps, err := s.Storage.GetStamps(ctx)
	if err != nil {
		logger.Error("Failed to get stamps", zap.Error(err))
		return models.LoyaltyCard{}, err
	}
	return models.LoyaltyCard{
		Stamps:    stamps,
		Target:    s.Target,
		Remaining: s.Target - stamps,
	}, nil
}
