// Package queue publishes reminder history events to RabbitMQ.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rudereminder/internal/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

// QueueReminderFired receives one message per fired reminder.
const QueueReminderFired = "reminder.fired"

// ReminderFiredEvent is the body of a reminder.fired message.
type ReminderFiredEvent struct {
	ReminderID    string    `json:"reminderId"`
	UserID        string    `json:"userId"`
	RudenessLevel int       `json:"rudenessLevel"`
	Message       string    `json:"message"`
	Channels      []string  `json:"channels"`
	FiredAt       time.Time `json:"firedAt"`
}

// Publisher dials the broker per publish. An empty URL disables it.
type Publisher struct {
	url string
	log logger.Logger
}

// NewPublisher creates a Publisher. An empty url disables publishing.
func NewPublisher(url string, log logger.Logger) *Publisher {
	return &Publisher{url: url, log: log}
}

// Enabled reports whether a broker URL is configured.
func (p *Publisher) Enabled() bool {
	return p.url != ""
}

// PublishReminderFired publishes event as a persistent JSON message. Disabled
// publishers return nil without dialing.
func (p *Publisher) PublishReminderFired(ctx context.Context, event ReminderFiredEvent) error {
	if !p.Enabled() {
		return nil
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("rabbitmq: marshal event failed: %w", err)
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("rabbitmq: dial failed: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq: channel open failed: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		QueueReminderFired, // name
		true,               // durable
		false,              // autoDelete
		false,              // exclusive
		false,              // noWait
		nil,                // args
	); err != nil {
		return fmt.Errorf("rabbitmq: queue declare failed: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", QueueReminderFired, false, false, pub); err != nil {
		return fmt.Errorf("rabbitmq: publish failed: %w", err)
	}
	p.log.Debug("Published reminder event", "queue", QueueReminderFired, "reminderID", event.ReminderID)
	return nil
}
