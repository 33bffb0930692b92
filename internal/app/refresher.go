package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// CatalogSource то, что умеет перезагружать справочник
type CatalogSource interface {
	RefreshCatalog(ctx context.Context) error
}

// CatalogRefresher загружает справочник при старте и затем периодически
type CatalogRefresher struct {
	source   CatalogSource
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewCatalogRefresher создаёт фоновую задачу; interval == 0 отключает периодическое обновление
func NewCatalogRefresher(source CatalogSource, interval time.Duration, logger *zap.Logger) *CatalogRefresher {
	return &CatalogRefresher{
		source:   source,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start запускает задачу в отдельной горутине
func (r *CatalogRefresher) Start(ctx context.Context) {
	r.logger.Info("Starting catalog refresher", zap.Duration("interval", r.interval))
	go r.run(ctx)
}

// Stop останавливает задачу и ждёт её завершения
func (r *CatalogRefresher) Stop() {
	r.stopOnce.Do(func() {
		r.logger.Info("Stopping catalog refresher")
		close(r.stopChan)
	})
	<-r.done
}

func (r *CatalogRefresher) run(ctx context.Context) {
	defer close(r.done)

	// Первый запуск сразу при старте
	r.refresh(ctx)

	if r.interval <= 0 {
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.refresh(ctx)
		case <-r.stopChan:
			r.logger.Info("Catalog refresher stopped")
			return
		case <-ctx.Done():
			r.logger.Info("Catalog refresher cancelled")
			return
		}
	}
}

func (r *CatalogRefresher) refresh(ctx context.Context) {
	// Ошибка уже залогирована сервисом; предыдущий снимок остаётся в силе
	if err := r.source.RefreshCatalog(ctx); err != nil {
		r.logger.Warn("Catalog refresh failed, keeping previous snapshot", zap.Error(err))
	}
}
