package engine

import (
	"context"
	"sync"
	"time"

	bookv1 "github.com/masonhargrave/MedExchange/internal/domain/book/v1"
	orderv1 "github.com/masonhargrave/MedExchange/internal/domain/order/v1"
	orderreaderv1 "github.com/masonhargrave/MedExchange/internal/domain/order-reader/v1"
	snapshotv1 "github.com/masonhargrave/MedExchange/internal/domain/snapshot/v1"
	tradepublisherv1 "github.com/masonhargrave/MedExchange/internal/domain/trade-publisher/v1"
	"github.com/masonhargrave/MedExchange/pkg/config"
	"github.com/masonhargrave/MedExchange/pkg/id"
	"github.com/masonhargrave/MedExchange/pkg/logger"
	"go.uber.org/zap/zapcore"
)

// Engine funnels all submissions for one pair through a single sequential
// processing task: read a request, submit it to the book, publish the trades,
// advance the offset. Matching itself is the book's job; the engine owns the
// service loop, snapshots and shutdown.
type Engine struct {
	book           bookv1.OrderBook
	orderReader    orderreaderv1.OrderReader
	snapshotStore  snapshotv1.Store
	tradePublisher tradepublisherv1.TradePublisher
	ids            id.Generator
	clock          id.Clock
	logger         *logger.Logger
	config         *config.Config

	mu                 sync.RWMutex
	orderOffset        int64
	lastSnapshotOffset int64
	totalTrades        int64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	snapshotInterval    time.Duration
	snapshotOffsetDelta int64
}

// NewEngine creates a new instance of Engine with the provided dependencies.
func NewEngine(
	book bookv1.OrderBook,
	orderReader orderreaderv1.OrderReader,
	snapshotStore snapshotv1.Store,
	tradePublisher tradepublisherv1.TradePublisher,
	ids id.Generator,
	clock id.Clock,
	logger *logger.Logger,
	config *config.Config,
) *Engine {
	return NewEngineWithOptions(book, orderReader, snapshotStore, tradePublisher, ids, clock, logger, config, DefaultEngineOptions())
}

// NewEngineWithOptions creates a new engine with custom options.
func NewEngineWithOptions(
	book bookv1.OrderBook,
	orderReader orderreaderv1.OrderReader,
	snapshotStore snapshotv1.Store,
	tradePublisher tradepublisherv1.TradePublisher,
	ids id.Generator,
	clock id.Clock,
	logger *logger.Logger,
	config *config.Config,
	options *Options,
) *Engine {
	e := &Engine{
		book:           book,
		orderReader:    orderReader,
		snapshotStore:  snapshotStore,
		tradePublisher: tradePublisher,
		ids:            ids,
		clock:          clock,
		logger:         logger,
		config:         config,

		snapshotInterval:    options.SnapshotInterval,
		snapshotOffsetDelta: options.SnapshotOffsetDelta,
		orderOffset:         -1,
	}

	// Restore the book before accepting any submission.
	if err := e.loadSnapshot(context.Background()); err != nil {
		e.logger.GetZap().Fatal("Failed to load snapshot", zapcore.Field{
			Key:       "error",
			Interface: err,
		})
	}

	return e
}

// Start initializes the engine and starts processing routines.
func (e *Engine) Start(ctx context.Context) error {
	e.ctx, e.cancel = context.WithCancel(ctx)

	e.wg.Add(2)
	go e.runOrderProcessor()
	go e.runSnapshotManager()

	e.logger.Info("Engine started", logger.Field{
		Key:   "pair",
		Value: e.config.Pair,
	})

	return nil
}

// Stop gracefully shuts down the engine.
func (e *Engine) Stop(ctx context.Context) error {
	if e.cancel != nil {
		e.cancel()
	}

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		e.logger.Info("Engine stopped gracefully")
		return nil
	case <-ctx.Done():
		e.logger.Warn("Engine stop timeout exceeded")
		return ctx.Err()
	}
}

// runOrderProcessor reads and processes submissions one at a time. This is
// the single writer of the book at the service level.
func (e *Engine) runOrderProcessor() {
	defer e.wg.Done()

	e.logger.Info("Starting order processor", logger.Field{
		Key:   "pair",
		Value: e.config.Pair,
	})

	currentOffset := e.getOrderOffset()
	if currentOffset > 0 {
		currentOffset++
	}

	if err := e.orderReader.SetOffset(currentOffset); err != nil {
		e.logger.GetZap().Fatal("Failed to set offset for order reader", zapcore.Field{
			Key:       "error",
			Interface: err,
		})
	}

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("Order processor shutting down")
			e.orderReader.Close()
			return
		default:
			msg, request, err := e.orderReader.ReadMessage(e.ctx)
			if err != nil {
				e.logger.ErrorContext(e.ctx, err, logger.Field{
					Key:   "action",
					Value: "read_order_message",
				})
				// Simple backoff
				time.Sleep(100 * time.Millisecond)
				continue
			}

			if err := e.processRequest(request); err != nil {
				e.logger.ErrorContext(e.ctx, err, logger.Field{
					Key:   "action",
					Value: "process_order",
				}, logger.Field{
					Key:   "orderID",
					Value: request.OrderID,
				})
			}

			e.setOrderOffset(msg.Offset)
		}
	}
}

// runSnapshotManager handles periodic snapshots.
func (e *Engine) runSnapshotManager() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.snapshotInterval)
	defer ticker.Stop()

	e.logger.Info("Starting snapshot manager")

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("Snapshot manager shutting down")
			return
		case <-ticker.C:
			if e.shouldCreateSnapshot() {
				e.createAndStoreSnapshot()
			}
		}
	}
}

// processRequest turns a request into an order, submits it and publishes the
// resulting trades. A rejected order is an error for the submitter, not for
// the engine; the book is untouched and the loop moves on.
func (e *Engine) processRequest(request *orderv1.PlaceOrderRequest) error {
	orderID := request.OrderID
	if orderID == "" {
		orderID = e.ids.NewID()
	}

	order := orderv1.NewOrder(orderID, request.UserID, request.Side, request.Price, request.Quantity, e.clock.Now())

	trades, err := e.book.Submit(e.ctx, order)

	// A failed submission can still have executed trades before the failure.
	// They are in the history and the durable record, so they get published
	// like any others.
	if len(trades) > 0 {
		e.publishTrades(trades)
	}

	return err
}

// publishTrades publishes one event per trade, in execution order.
func (e *Engine) publishTrades(trades []*orderv1.Trade) {
	e.mu.Lock()
	e.totalTrades += int64(len(trades))
	currentTotal := e.totalTrades
	e.mu.Unlock()

	e.logger.Info("Trades executed",
		logger.Field{Key: "tradeCount", Value: len(trades)},
		logger.Field{Key: "totalTrades", Value: currentTotal},
	)

	for _, trade := range trades {
		event := tradepublisherv1.CreateFromTrade(trade, e.config.Pair)
		if err := e.tradePublisher.PublishTrade(e.ctx, event); err != nil {
			e.logger.ErrorContext(e.ctx, err, logger.Field{
				Key:   "action",
				Value: "publish_trade",
			}, logger.Field{
				Key:   "tradeID",
				Value: trade.ID,
			})
		}
	}
}

// shouldCreateSnapshot checks if a snapshot should be created.
func (e *Engine) shouldCreateSnapshot() bool {
	e.mu.RLock()
	currentOffset := e.orderOffset
	lastSnapshotOffset := e.lastSnapshotOffset
	e.mu.RUnlock()

	if currentOffset <= 0 {
		return false
	}

	return currentOffset-lastSnapshotOffset >= e.snapshotOffsetDelta
}

// createAndStoreSnapshot creates and stores a snapshot.
func (e *Engine) createAndStoreSnapshot() {
	currentOffset := e.getOrderOffset()

	snapshot := e.book.CreateSnapshot()
	snapshot.OrderOffset = currentOffset

	if err := e.snapshotStore.Store(e.ctx, snapshot); err != nil {
		e.logger.ErrorContext(e.ctx, err, logger.Field{
			Key:   "action",
			Value: "store_snapshot",
		})
		return
	}

	e.setLastSnapshotOffset(currentOffset)
}

func (e *Engine) getOrderOffset() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.orderOffset
}

func (e *Engine) setOrderOffset(offset int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.orderOffset = offset
}

func (e *Engine) getLastSnapshotOffset() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastSnapshotOffset
}

func (e *Engine) setLastSnapshotOffset(offset int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSnapshotOffset = offset
}

// loadSnapshot loads and restores the book from the latest snapshot.
func (e *Engine) loadSnapshot(ctx context.Context) error {
	snapshot, err := e.snapshotStore.Load(ctx)
	if err != nil {
		return err
	}

	if snapshot != nil {
		if err := e.book.RestoreOrderbook(snapshot); err != nil {
			return err
		}

		e.mu.Lock()
		e.orderOffset = snapshot.OrderOffset
		e.lastSnapshotOffset = snapshot.OrderOffset
		e.mu.Unlock()

		e.logger.Info("Order book restored from snapshot", logger.Field{
			Key:   "orderOffset",
			Value: snapshot.OrderOffset,
		})
	}

	return nil
}

// GetOrderOffset returns the current order offset.
func (e *Engine) GetOrderOffset() int64 {
	return e.getOrderOffset()
}

// GetLastSnapshotOffset returns the last snapshot offset.
func (e *Engine) GetLastSnapshotOffset() int64 {
	return e.getLastSnapshotOffset()
}

// GetTotalTrades returns the total number of trades processed.
func (e *Engine) GetTotalTrades() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.totalTrades
}
