package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"pawcare/config"
	"pawcare/models"
	"pawcare/services/booking"
	"pawcare/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitHoldExpiryWorker runs the async worker in background. It consumes
// hold-expiry tasks scheduled at each hold's deadline and also sweeps
// periodically as a backstop for lost tasks.
func InitHoldExpiryWorker(bookingSvc booking.BookingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisHoldQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeHoldExpire, handleHoldExpireTask(bookingSvc))

	go monitorRedisConnection()
	go sweepLoop(bookingSvc)

	// Start async worker with retry logic
	go func() {
		log.Println("[HoldExpiryWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[HoldExpiryWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[HoldExpiryWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleHoldExpireTask(bookingSvc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.HoldReleasePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[HoldExpiry] invalid payload: %v", err)
			return err
		}

		if err := bookingSvc.ReleaseHold(ctx, p.AppointmentID); err != nil {
			log.Printf("[HoldExpiry] failed to release hold for %s: %v", p.AppointmentID, err)
			return err
		}
		return nil
	}
}

func sweepLoop(bookingSvc booking.BookingService) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	ctx := context.Background()
	for range ticker.C {
		if err := bookingSvc.SweepExpiredHolds(ctx); err != nil {
			log.Printf("[HoldExpiry] sweep failed: %v", err)
		}
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisHoldQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[HoldExpiryWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
