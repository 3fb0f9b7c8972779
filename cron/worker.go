package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"premierlodge/config"
	"premierlodge/models"
	"premierlodge/services/booking"
	"premierlodge/services/notification"

	"github.com/hibiken/asynq"
)

const TypePaymentReminder = "payment:reminder"

// reminderDelay is how long a launched checkout may sit unresolved before the
// front desk is nudged.
const reminderDelay = 10 * time.Minute

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// ReminderClient enqueues delayed pending-payment reminders. It implements
// booking.ReminderScheduler.
type ReminderClient struct {
	client *asynq.Client
}

func NewReminderClient() *ReminderClient {
	return &ReminderClient{client: asynq.NewClient(redisOpts())}
}

func (c *ReminderClient) ScheduleReminder(session models.PendingPaymentSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	task := asynq.NewTask(TypePaymentReminder, payload)
	if _, err := c.client.Enqueue(task, asynq.ProcessIn(reminderDelay)); err != nil {
		return fmt.Errorf("failed to enqueue payment reminder: %w", err)
	}
	return nil
}

func (c *ReminderClient) Close() error {
	return c.client.Close()
}

// InitReminderWorker runs the async worker in background. The handler drops
// the task silently when the session has already been resolved.
func InitReminderWorker(sessions *booking.SessionRegistry, notifier notification.Notifier) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePaymentReminder, handleReminderTask(sessions, notifier))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(sessions *booking.SessionRegistry, notifier notification.Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.PendingPaymentSession
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		if _, pending := sessions.Pending(p.Reference); !pending {
			return nil
		}

		notifier.Info(fmt.Sprintf("Payment for %s (ref %s) is still pending", p.GuestName, p.Reference))
		return nil
	}
}
