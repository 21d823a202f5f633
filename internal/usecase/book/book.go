package book

import (
	"context"
	"errors"
	"sync"

	bookv1 "github.com/masonhargrave/MedExchange/internal/domain/book/v1"
	orderv1 "github.com/masonhargrave/MedExchange/internal/domain/order/v1"
	snapshotv1 "github.com/masonhargrave/MedExchange/internal/domain/snapshot/v1"
	storev1 "github.com/masonhargrave/MedExchange/internal/domain/store/v1"
	pkgerrors "github.com/masonhargrave/MedExchange/pkg/errors"
	"github.com/masonhargrave/MedExchange/pkg/id"
	"github.com/masonhargrave/MedExchange/pkg/logger"
)

var (
	// ErrDuplicateOrderID is returned when an order id is already resting in the book.
	ErrDuplicateOrderID = errors.New("order ID already exists in the book")
)

// OrderBook holds the two book sides and the trade history for one
// instrument and runs the matching algorithm.
//
// Submissions are serialized through one exclusive lock held for the whole
// crossing loop, own-side insertion and persistence hand-off, so a submission
// is atomic with respect to concurrent submissions and readers never observe
// a half-applied match.
type OrderBook struct {
	mu      sync.RWMutex
	bids    *bookv1.Side
	asks    *bookv1.Side
	resting map[string]struct{}
	trades  []*orderv1.Trade

	store  storev1.Store
	ids    id.Generator
	clock  id.Clock
	logger *logger.Logger
}

var _ bookv1.OrderBook = (*OrderBook)(nil)

// NewOrderBook creates an empty order book.
func NewOrderBook(store storev1.Store, ids id.Generator, clock id.Clock, log *logger.Logger) *OrderBook {
	return &OrderBook{
		bids:    bookv1.NewBidSide(),
		asks:    bookv1.NewAskSide(),
		resting: make(map[string]struct{}),
		store:   store,
		ids:     ids,
		clock:   clock,
		logger:  log,
	}
}

// Submit matches the incoming order against the opposite side, producing zero
// or more trades, and rests any remaining quantity on its own side.
//
// The execution price of every trade is the resting order's limit price. A
// submission that finds no match is not an error; the order simply rests.
func (b *OrderBook) Submit(ctx context.Context, order *orderv1.Order) ([]*orderv1.Trade, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.resting[order.ID]; exists {
		return nil, ErrDuplicateOrderID
	}

	own, opposite := b.sides(order)

	var trades []*orderv1.Trade
	for order.Quantity > 0 {
		resting := opposite.Peek()
		if resting == nil || !order.Crosses(resting) {
			break
		}
		if resting.Quantity <= 0 {
			// Zero-quantity orders must never rest in a side.
			return trades, pkgerrors.NewCode(pkgerrors.BookInvariantError)
		}

		quantity := min(order.Quantity, resting.Quantity)
		trade := orderv1.NewTrade(b.ids.NewID(), order, resting, quantity, b.clock.Now())

		order.Quantity -= quantity
		resting.Quantity -= quantity

		trades = append(trades, trade)
		b.trades = append(b.trades, trade)

		if resting.IsFilled() {
			opposite.RemoveFront()
			delete(b.resting, resting.ID)
			b.logger.DebugContext(ctx, "Resting order filled",
				logger.Field{Key: "orderID", Value: resting.ID},
				logger.Field{Key: "tradeID", Value: trade.ID},
			)
		}

		// Hand off per iteration so partial fills are durable even if a later
		// iteration fails.
		b.persistFill(ctx, trade, order, resting)
	}

	if order.Quantity > 0 {
		own.Insert(order)
		b.resting[order.ID] = struct{}{}
		b.upsertOrder(ctx, order)
	}

	return trades, nil
}

// sides returns the incoming order's own side and the opposite side.
func (b *OrderBook) sides(order *orderv1.Order) (own, opposite *bookv1.Side) {
	if order.IsBuy() {
		return b.bids, b.asks
	}
	return b.asks, b.bids
}

// persistFill hands the trade and both touched orders to the store. Failures
// are logged and do not abort the match: the trade already happened and the
// in-memory book stays authoritative.
func (b *OrderBook) persistFill(ctx context.Context, trade *orderv1.Trade, incoming, resting *orderv1.Order) {
	if err := b.store.InsertTrade(ctx, trade); err != nil {
		b.logger.ErrorContext(ctx, pkgerrors.NewCode(pkgerrors.TradePersistError).Wrap(err),
			logger.Field{Key: "tradeID", Value: trade.ID},
			logger.Field{Key: "buyOrderID", Value: trade.BuyOrderID},
			logger.Field{Key: "sellOrderID", Value: trade.SellOrderID},
		)
	}

	b.upsertOrder(ctx, incoming)
	b.upsertOrder(ctx, resting)
}

// upsertOrder records the order's remaining quantity when it is still open.
// An order reduced to zero is not upserted; its removal from the book is the
// signal that it is done.
func (b *OrderBook) upsertOrder(ctx context.Context, order *orderv1.Order) {
	if order.Quantity <= 0 {
		return
	}

	if err := b.store.UpsertOrder(ctx, order); err != nil {
		b.logger.ErrorContext(ctx, pkgerrors.NewCode(pkgerrors.OrderPersistError).Wrap(err),
			logger.Field{Key: "orderID", Value: order.ID},
			logger.Field{Key: "quantity", Value: order.Quantity},
		)
	}
}

// Bids returns the resting buy orders in matching-priority order.
func (b *OrderBook) Bids() []*orderv1.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.bids.Orders()
}

// Asks returns the resting sell orders in matching-priority order.
func (b *OrderBook) Asks() []*orderv1.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.asks.Orders()
}

// Trades returns the trade history in chronological order.
func (b *OrderBook) Trades() []*orderv1.Trade {
	b.mu.RLock()
	defer b.mu.RUnlock()

	trades := make([]*orderv1.Trade, len(b.trades))
	copy(trades, b.trades)
	return trades
}

// CreateSnapshot captures the resting orders of both sides.
func (b *OrderBook) CreateSnapshot() *snapshotv1.Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var orders []snapshotv1.BookOrder
	for _, side := range [][]*orderv1.Order{b.bids.Orders(), b.asks.Orders()} {
		for _, order := range side {
			orders = append(orders, snapshotv1.BookOrder{
				OrderID:   order.ID,
				UserID:    order.UserID,
				Side:      string(order.Side),
				Price:     order.Price,
				Quantity:  order.Quantity,
				Timestamp: order.Timestamp,
			})
		}
	}

	return &snapshotv1.Snapshot{
		Orders: orders,
	}
}

// RestoreOrderbook replaces the book's resting state with the snapshot's.
// The trade history is not part of snapshots; the durable store owns it.
func (b *OrderBook) RestoreOrderbook(snapshot *snapshotv1.Snapshot) error {
	if snapshot == nil {
		return errors.New("snapshot cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.bids = bookv1.NewBidSide()
	b.asks = bookv1.NewAskSide()
	b.resting = make(map[string]struct{})

	for _, bookOrder := range snapshot.Orders {
		order := orderv1.NewOrder(
			bookOrder.OrderID,
			bookOrder.UserID,
			orderv1.Side(bookOrder.Side),
			bookOrder.Price,
			bookOrder.Quantity,
			bookOrder.Timestamp,
		)
		if err := order.Validate(); err != nil {
			return pkgerrors.NewCode(pkgerrors.SnapshotLoadError).Wrap(err)
		}

		own, _ := b.sides(order)
		own.Insert(order)
		b.resting[order.ID] = struct{}{}
	}

	return nil
}
