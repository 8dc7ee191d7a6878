// Package kafka publishes order lifecycle events to a Kafka topic so
// downstream consumers (notifications, analytics) observe every committed
// state change.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"taza/internal/core/domain/model/order"

	"github.com/IBM/sarama"
)

const producerTimeout = 5 * time.Second

// orderEventDTO is the wire representation of one order state change.
type orderEventDTO struct {
	OrderID           string     `json:"order_id"`
	ClientID          string     `json:"client_id"`
	Category          string     `json:"category"`
	Status            string     `json:"status"`
	PriceOffer        float64    `json:"price_offer"`
	TazaIndex         int        `json:"taza_index"`
	Band              string     `json:"band"`
	ProtectionEnabled bool       `json:"protection_enabled"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	OccurredAt        time.Time  `json:"occurred_at"`
}

// Publisher emits order lifecycle events through a synchronous Kafka
// producer. Messages are keyed by order ID so one order's events stay on one
// partition, in commit order.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher connects a synchronous producer to the given brokers.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one kafka broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka topic is required")
	}

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = producerTimeout

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &Publisher{
		producer: producer,
		topic:    topic,
	}, nil
}

// Publish emits the current state of the order as a lifecycle event.
func (p *Publisher) Publish(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	evaluation := aggregate.TazaIndex()
	payload, err := json.Marshal(orderEventDTO{
		OrderID:           aggregate.ID().String(),
		ClientID:          aggregate.ClientID().String(),
		Category:          aggregate.Category().String(),
		Status:            aggregate.Status().String(),
		PriceOffer:        aggregate.PriceOffer().Value(),
		TazaIndex:         evaluation.Index,
		Band:              evaluation.Band.ID(),
		ProtectionEnabled: evaluation.ProtectionEnabled,
		CompletedAt:       aggregate.CompletedAt(),
		OccurredAt:        time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(aggregate.ID().String()),
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err = p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to send message to topic %s: %w", p.topic, err)
	}

	return nil
}

// Close shuts down the underlying producer.
func (p *Publisher) Close() error {
	return p.producer.Close()
}
