package storev1

import (
	"context"

	orderv1 "github.com/masonhargrave/MedExchange/internal/domain/order/v1"
)

// Store is the persistence hand-off consumed by the matching loop. The book
// calls it synchronously while matching and treats failures as reported but
// non-fatal: in-memory state stays authoritative and is never rolled back.
//
// Both operations must be idempotent so the hand-off tolerates retries.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=storev1_mock
type Store interface {
	// UpsertOrder records the current remaining quantity of an order that
	// still has quantity > 0. Orders reduced to zero are not upserted; their
	// removal from the book is the authoritative signal that they are done.
	UpsertOrder(ctx context.Context, order *orderv1.Order) error

	// InsertTrade records an executed trade exactly once. Calling it again
	// with the same trade id must not duplicate the record.
	InsertTrade(ctx context.Context, trade *orderv1.Trade) error
}
