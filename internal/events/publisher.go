package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "petpal.topic"
	routingKey   = "food.classified"
)

// FoodClassifiedPublisher publishes food.classified events whenever the AI
// fallback persists a fresh verdict.
type FoodClassifiedPublisher struct {
	conn *amqp.Connection
}

type foodClassifiedEvent struct {
	Timestamp string `json:"timestamp"`
	Pet       string `json:"pet"`
	Food      string `json:"food"`
	Status    string `json:"status"`
}

// NewFoodClassifiedPublisher creates a RabbitMQ publisher and ensures the
// shared topic exchange exists.
func NewFoodClassifiedPublisher(rabbitmqURL string) (*FoodClassifiedPublisher, error) {
	conn, err := amqp.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		exchangeName,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchangeName, err)
	}

	return &FoodClassifiedPublisher{conn: conn}, nil
}

// PublishFoodClassified publishes the minimal food.classified payload.
func (p *FoodClassifiedPublisher) PublishFoodClassified(
	ctx context.Context,
	pet, food, status string,
) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	event := foodClassifiedEvent{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Pet:       pet,
		Food:      food,
		Status:    status,
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal food.classified event: %w", err)
	}

	if err := ch.PublishWithContext(ctx, exchangeName, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish food.classified: %w", err)
	}

	return nil
}

// Close closes the RabbitMQ connection.
func (p *FoodClassifiedPublisher) Close() error {
	return p.conn.Close()
}
