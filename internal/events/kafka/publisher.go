// Package kafka publishes committed ledger transactions to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/segmentio/kafka-go"
)

// DefaultTopic is used when no topic is configured.
const DefaultTopic = "transaction.completed"

// Publisher writes transaction completed events to Kafka.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher returns a publisher for the given brokers and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish sends a single transaction completed event.
//
// Events for the same account share a message key so they stay ordered
// within a partition.
func (p *Publisher) Publish(ctx context.Context, event domain.TransactionCompleted) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(int64(event.Transaction.AccountID), 10)),
		Value: data,
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
