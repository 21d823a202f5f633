package bookv1

import (
	"context"

	orderv1 "github.com/masonhargrave/MedExchange/internal/domain/order/v1"
	snapshotv1 "github.com/masonhargrave/MedExchange/internal/domain/snapshot/v1"
)

// OrderBook defines the matching core consumed by the engine: one submission
// entry point plus the read-only query surface.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=bookv1_mock
type OrderBook interface {
	// Submit matches the incoming order against the opposite side and returns
	// the trades it generated, possibly none.
	Submit(ctx context.Context, order *orderv1.Order) ([]*orderv1.Trade, error)

	// Bids returns the resting buy orders in matching-priority order.
	Bids() []*orderv1.Order
	// Asks returns the resting sell orders in matching-priority order.
	Asks() []*orderv1.Order
	// Trades returns the trade history in chronological order.
	Trades() []*orderv1.Trade

	CreateSnapshot() *snapshotv1.Snapshot
	RestoreOrderbook(snapshot *snapshotv1.Snapshot) error
}
