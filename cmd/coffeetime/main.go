package main

import (
	"fmt"

	"github.com/denmor86/coffeetime/internal/app"
	"github.com/denmor86/coffeetime/internal/config"
	"github.com/denmor86/coffeetime/internal/logger"
	"github.com/denmor86/coffeetime/internal/storage"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// хранилище в памяти, состояние живёт в рамках сеанса
	store := storage.NewMemory()
	// создание маршутизатора и запуск сервера
	app.Run(config, store)
}
