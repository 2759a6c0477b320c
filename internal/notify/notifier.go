package notify

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/coffeetime/internal/logger"
	"github.com/denmor86/coffeetime/internal/models"
)

// количество последних событий, доступных для опроса клиентом
const RecentLimit = 50

// Notifier - диспетчер событий для клиентской части (тосты, уведомление о готовности)
type Notifier struct {
	Events    chan models.Event
	QuitChan  chan struct{}
	WaitGroup sync.WaitGroup

	mu          sync.Mutex
	recent      []models.Event
	subscribers []chan models.Event
}

// NewNotifier - конструктор диспетчера событий
func NewNotifier(buffer int) *Notifier {
	if buffer <= 0 {
		buffer = 64
	}
	return &Notifier{
		Events:   make(chan models.Event, buffer),
		QuitChan: make(chan struct{}),
	}
}

// Publish - отправляет событие в очередь, не блокируя вызывающего
func (n *Notifier) Publish(event models.Event) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	select {
	case n.Events <- event:
	default:
		// очередь переполнена, событие теряется
		logger.Warn("Notification queue is full, event dropped", event.Type)
	}
}

// Subscribe - возвращает канал с копией всех последующих событий
func (n *Notifier) Subscribe() <-chan models.Event {
	n.mu.Lock()
	defer n.mu.Unlock()

	sub := make(chan models.Event, cap(n.Events))
	n.subscribers = append(n.subscribers, sub)
	return sub
}

// Recent - последние события, свежие первыми
func (n *Notifier) Recent() []models.Event {
	n.mu.Lock()
	defer n.mu.Unlock()

	events := make([]models.Event, len(n.recent))
	for i, event := range n.recent {
		events[len(n.recent)-1-i] = event
	}
	return events
}

// Start - запускает диспетчер в фоне
func (n *Notifier) Start(ctx context.Context) {
	n.WaitGroup.Add(1)
	go n.Run(ctx)
}

// Stop - корректно останавливает диспетчер
func (n *Notifier) Stop() {
	close(n.QuitChan)
	n.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (n *Notifier) Run(ctx context.Context) {
	defer n.WaitGroup.Done()

	for {
		select {
		case <-n.QuitChan:
			logger.Info("Notifier signal stop")
			return
		case <-ctx.Done():
			return
		case event := <-n.Events:
			n.dispatch(event)
		}
	}
}

// dispatch - сохраняет событие и рассылает его подписчикам
func (n *Notifier) dispatch(event models.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.recent = append(n.recent, event)
	if len(n.recent) > RecentLimit {
		n.recent = n.recent[len(n.recent)-RecentLimit:]
	}

	for _, sub := range n.subscribers {
		select {
		case sub <- event:
		default:
			// медленный подписчик пропускает событие
		}
	}
}
