package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-app-catalog/internal/logger"
	"github.com/sbilibin2017/gw-app-catalog/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PublishTimeout bounds a single event write so a stalled broker cannot hold
// the request open.
var PublishTimeout = 2 * time.Second

// eventPublisher publishes catalog events. A nil writer disables publishing.
type eventPublisher struct {
	writer KafkaWriter
	now    func() time.Time
}

func newEventPublisher(writer KafkaWriter) eventPublisher {
	return eventPublisher{writer: writer, now: time.Now}
}

// publish never fails the caller; errors are logged.
func (p eventPublisher) publish(ctx context.Context, eventType string, userID uuid.UUID, payload any) {
	if p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType)
		return
	}

	event := models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: p.now().Unix(),
		UserID:    userID.String(),
		Payload:   payload,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	// The record is already stored, so the write outlives request cancellation.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), PublishTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", eventType)
	}
}
