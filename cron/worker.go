package cron

import (
	"context"
	"log"
	"time"

	"streamify/config"
	"streamify/services/catalog"

	"github.com/hibiken/asynq"
)

const TypeCatalogRefresh = "catalog:refresh"

// InitCatalogWorker runs the async cache-warm worker in background and
// enqueues a refresh task on a fixed schedule, keeping the home feed warm
// off the request path.
func InitCatalogWorker(ctx context.Context, svc catalog.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCatalogRefresh, handleCatalogRefresh(svc))

	go func() {
		log.Println("[CatalogWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[CatalogWorker] worker stopped: %v", err)
		}
	}()

	go enqueueRefreshLoop(ctx, asynq.NewClient(redisOpts))
}

func handleCatalogRefresh(svc catalog.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		if err := svc.WarmCache(ctx); err != nil {
			log.Printf("[CatalogWorker] refresh failed: %v", err)
			return err
		}
		return nil
	}
}

func enqueueRefreshLoop(ctx context.Context, client *asynq.Client) {
	defer client.Close()

	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	enqueue := func() {
		task := asynq.NewTask(TypeCatalogRefresh, nil)
		if _, err := client.Enqueue(task, asynq.MaxRetry(3)); err != nil {
			log.Printf("[CatalogWorker] failed to enqueue refresh: %v", err)
		}
	}

	enqueue()
	for {
		select {
		case <-ctx.Done():
			log.Println("[CatalogWorker] refresh scheduler shutdown signal received.")
			return
		case <-ticker.C:
			enqueue()
		}
	}
}
