package service

import "context"

// Generator abstracts the Gemini client for testing.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ClassificationPublisher abstracts the RabbitMQ publisher for testing.
type ClassificationPublisher interface {
	PublishFoodClassified(ctx context.Context, pet, food, status string) error
}
