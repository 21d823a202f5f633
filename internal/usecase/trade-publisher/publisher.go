package tradepublisher

import (
	"context"

	tradepublisherv1 "github.com/masonhargrave/MedExchange/internal/domain/trade-publisher/v1"
	"github.com/masonhargrave/MedExchange/pkg/config"
	"github.com/masonhargrave/MedExchange/pkg/errors"
	"github.com/masonhargrave/MedExchange/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// Publisher publishes executed trade events to the trade topic.
type Publisher struct {
	kafkaWriter *kafka.Writer
	logger      logger.Interface
}

var _ tradepublisherv1.TradePublisher = (*Publisher)(nil)

// NewPublisher creates a new Kafka publisher for trade events.
func NewPublisher(config config.KafkaConfig, log logger.Interface) *Publisher {
	kafkaWriter := kafka.NewWriter(kafka.WriterConfig{
		Brokers: config.Brokers,
		Topic:   config.Topic,
	})

	return &Publisher{
		kafkaWriter: kafkaWriter,
		logger:      log,
	}
}

// PublishTrade publishes a trade event to the trade topic.
func (p *Publisher) PublishTrade(ctx context.Context, event *tradepublisherv1.TradeEvent) error {
	msg := kafka.Message{
		Key:   []byte(event.TradeID),
		Value: event.ToBytes(),
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(err,
			logger.Field{Key: "tradeID", Value: event.TradeID},
			logger.Field{Key: "pair", Value: event.Pair},
		)
		return errors.NewTracer("failed to publish trade event").Wrap(err)
	}
	return nil
}

// Close closes the underlying Kafka writer.
func (p *Publisher) Close() error {
	return p.kafkaWriter.Close()
}
