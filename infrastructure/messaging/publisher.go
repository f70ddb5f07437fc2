package messaging

import (
	"context"

	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=publisher.go -destination=mocks/publisher.go -package=mocks

// Publisher envia eventos de domínio; routingKey é o nome do evento (account.connected, token.expiring)
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close() error
}

// NopPublisher só registra o evento; usado quando RABBITMQ_URL não está configurada
type NopPublisher struct{}

func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

func (NopPublisher) Publish(_ context.Context, routingKey string, _ any) error {
	logrus.WithField("routing_key", routingKey).Debug("events: broker not configured, event dropped")
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
