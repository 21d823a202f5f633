package orderreaderv1

import (
	"context"

	orderv1 "github.com/masonhargrave/MedExchange/internal/domain/order/v1"
	"github.com/segmentio/kafka-go"
)

// OrderReader defines the interface for reading order requests from the
// submission stream.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=orderreaderv1_mock
type OrderReader interface {
	// ReadMessage reads a message and returns the raw message and parsed request
	ReadMessage(ctx context.Context) (kafka.Message, *orderv1.PlaceOrderRequest, error)
	// SetOffset sets the offset for the reader
	SetOffset(offset int64) error
	// Close closes the reader
	Close() error
}
