package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/coffeetime/internal/config"
	"github.com/denmor86/coffeetime/internal/logger"
	"github.com/denmor86/coffeetime/internal/network/router"
	"github.com/denmor86/coffeetime/internal/notify"
	"github.com/denmor86/coffeetime/internal/storage"
)

func Run(config config.Config, storage storage.IStorage) {

	// диспетчер событий для тостов и уведомлений о готовности
	notifier := notify.NewNotifier(config.EventBuffer)

	router := router.NewRouter(config, storage, notifier)

	server := &http.Server{
		Addr:    config.ListenAddr,
		Handler: router.HandleRouter(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	notifier.Start(ctx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(
			"Starting server config:", config,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	notifier.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
}
