package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"spg-be/internal/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher hands emails to a mail worker through a topic instead of sending them inline.
type KafkaPublisher struct {
	writer MessageWriter
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

func NewKafkaPublisherWithWriter(w MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Send(ctx context.Context, msg Message) error {
	msg, err := Render(msg)
	if err != nil {
		return err
	}

	value, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.To),
		Value: value,
	})
	if err != nil {
		logger.FromCtx(ctx).Error("kafka: failed to publish email",
			zap.String("to", msg.To),
			zap.Error(err),
		)
		return fmt.Errorf("publish email: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
