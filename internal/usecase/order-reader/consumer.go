package orderreader

import (
	"context"
	"encoding/json"

	orderv1 "github.com/masonhargrave/MedExchange/internal/domain/order/v1"
	"github.com/masonhargrave/MedExchange/pkg/config"
	"github.com/masonhargrave/MedExchange/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// Reader consumes place-order requests from the order topic. All submissions
// for a pair flow through one partition, which is what gives the engine its
// single sequential stream of requests.
type Reader struct {
	kafkaReader *kafka.Reader
	logger      logger.Interface
}

// NewReader creates a new Kafka reader for the order topic.
func NewReader(config config.KafkaConfig, log logger.Interface) *Reader {
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     config.Brokers,
		Topic:       config.Topic,
		Partition:   0,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})

	return &Reader{
		kafkaReader: kafkaReader,
		logger:      log,
	}
}

func (r *Reader) logError(err error, operation string) {
	r.logger.Error(err,
		logger.Field{Key: "operation", Value: operation},
	)
}

// SetOffset positions the reader at the given offset.
func (r *Reader) SetOffset(offset int64) error {
	if err := r.kafkaReader.SetOffset(offset); err != nil {
		r.logError(err, "SetOffset")
		return err
	}
	return nil
}

// ReadMessage reads one message and parses it as a place-order request.
func (r *Reader) ReadMessage(ctx context.Context) (kafka.Message, *orderv1.PlaceOrderRequest, error) {
	msg, err := r.kafkaReader.ReadMessage(ctx)
	if err != nil {
		r.logError(err, "ReadMessage")
		return kafka.Message{}, nil, err
	}

	var request orderv1.PlaceOrderRequest
	if err := json.Unmarshal(msg.Value, &request); err != nil {
		r.logError(err, "UnmarshalOrder")
		return kafka.Message{}, nil, err
	}

	request.Offset = msg.Offset

	r.logger.Debug("ReadMessage",
		logger.Field{Key: "orderID", Value: request.OrderID},
		logger.Field{Key: "userID", Value: request.UserID},
		logger.Field{Key: "side", Value: request.Side},
		logger.Field{Key: "price", Value: request.Price},
		logger.Field{Key: "quantity", Value: request.Quantity},
		logger.Field{Key: "offset", Value: request.Offset},
	)

	return msg, &request, nil
}

// Close properly closes the Kafka reader.
func (r *Reader) Close() error {
	if err := r.kafkaReader.Close(); err != nil {
		r.logError(err, "Close")
		return err
	}
	return nil
}
