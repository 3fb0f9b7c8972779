// Package events publishes booking lifecycle events to Kafka. Publishing is
// best-effort: a failed publish is logged and never fails the booking flow.
package events

import (
	"encoding/json"
	"time"

	"premierlodge/utils"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const (
	EventBookingCreated   = "booking.created"
	EventPaymentSettled   = "payment.settled"
	EventPaymentAbandoned = "payment.abandoned"
)

// BookingEvent is the wire shape of one lifecycle event.
type BookingEvent struct {
	Name       string    `json:"name"`
	BookingID  string    `json:"bookingId"`
	GuestID    string    `json:"guestId"`
	Reference  string    `json:"reference,omitempty"`
	Amount     float64   `json:"amount,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *zap.Logger
}

func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &Publisher{producer: producer, topic: topic, logger: utils.GetLogger()}, nil
}

// Publish emits one event keyed by booking ID. Errors are logged only.
func (p *Publisher) Publish(event BookingEvent) {
	if p == nil {
		return
	}
	event.OccurredAt = time.Now()
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to serialize booking event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.BookingID),
		Value: sarama.ByteEncoder(payload),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		p.logger.Warn("failed to publish booking event",
			zap.String("event", event.Name), zap.Error(err))
	}
}

func (p *Publisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
