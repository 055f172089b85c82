package notification

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"gorm.io/gorm"

	"fitclub-admin-backend/internal/model"
)

// Sender defines the interface for sending a web push notification.
type Sender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is the real Sender backed by the webpush library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// CancellationAlert describes one cancelled reservation to announce to
// the staff subscribed to its sede.
type CancellationAlert struct {
	ReservationID int64
	LocationID    int64
	LocationName  string
	ClassName     string
	Date          string
	Time          string
}

// WorkerPool fans cancellation alerts out to web push subscribers.
type WorkerPool struct {
	size    int
	jobs    chan CancellationAlert
	db      *gorm.DB
	webpush *webpush.Options
	sender  Sender
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(size int, db *gorm.DB, webpushOptions *webpush.Options) *WorkerPool {
	return &WorkerPool{
		size:    size,
		jobs:    make(chan CancellationAlert, size),
		db:      db,
		webpush: webpushOptions,
		sender:  &WebPushSender{},
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("Notification worker %d started", id)
	for {
		select {
		case alert := <-wp.jobs:
			wp.sendAlert(ctx, alert)
		case <-ctx.Done():
			log.Printf("Notification worker %d shutting down", id)
			return
		}
	}
}

// Dispatch queues one alert for delivery.
func (wp *WorkerPool) Dispatch(alert CancellationAlert) {
	wp.jobs <- alert
}

// Jobs returns the jobs channel for testing.
func (wp *WorkerPool) Jobs() chan CancellationAlert {
	return wp.jobs
}

// sendAlert fetches the sede's subscribers and pushes the message to
// each of them. Reservations without a resolvable sede have no
// audience and are skipped.
func (wp *WorkerPool) sendAlert(ctx context.Context, alert CancellationAlert) {
	if alert.LocationID == 0 {
		return
	}

	var subscriptions []model.PushSubscription
	err := wp.db.WithContext(ctx).
		Joins("JOIN subscription_location_mapping slm ON slm.push_subscription_endpoint = push_subscriptions.endpoint").
		Where("slm.location_id = ?", alert.LocationID).
		Find(&subscriptions).Error
	if err != nil {
		log.Printf("Error fetching subscriptions for location %d: %v", alert.LocationID, err)
		return
	}

	if len(subscriptions) == 0 {
		return
	}

	message := fmt.Sprintf("Reserva cancelada: %s el %s %s en %s",
		alert.ClassName, alert.Date, alert.Time, alert.LocationName)
	log.Printf("Sending %d notifications for reservation %d", len(subscriptions), alert.ReservationID)

	for _, sub := range subscriptions {
		wp.sendNotification(ctx, sub, []byte(message))
	}
}

// sendNotification sends a single web push notification and prunes the
// subscription if the push service reports it gone.
func (wp *WorkerPool) sendNotification(ctx context.Context, sub model.PushSubscription, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		log.Printf("Error sending notification to %s: %v", sub.Endpoint, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusGone {
		log.Printf("Subscription for endpoint %s is expired. Deleting.", sub.Endpoint)
		if err := wp.db.WithContext(ctx).Delete(&sub).Error; err != nil {
			log.Printf("Failed to delete expired subscription %s: %v", sub.Endpoint, err)
		}
	}
}
