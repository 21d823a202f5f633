package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	app "github.com/masonhargrave/MedExchange/internal/app/engine"
	"github.com/masonhargrave/MedExchange/internal/usecase/book"
	orderreader "github.com/masonhargrave/MedExchange/internal/usecase/order-reader"
	snapshotstore "github.com/masonhargrave/MedExchange/internal/usecase/snapshot"
	"github.com/masonhargrave/MedExchange/internal/usecase/store"
	tradepublisher "github.com/masonhargrave/MedExchange/internal/usecase/trade-publisher"
	"github.com/masonhargrave/MedExchange/pkg/config"
	"github.com/masonhargrave/MedExchange/pkg/id"
	"github.com/masonhargrave/MedExchange/pkg/logger"
	"github.com/masonhargrave/MedExchange/pkg/postgres"
	"github.com/masonhargrave/MedExchange/pkg/redis"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	config.MustLoad(cfg)

	l, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}

	log = l
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Initialize Redis client for snapshots
	rclient := redis.NewClient(log, &cfg.Redis)
	if err := rclient.Connect(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "connect_redis",
		})
		return
	}

	// Initialize Postgres for the durable order/trade record
	pgClient, err := postgres.NewClient(ctx, cfg.Postgres)
	if err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "connect_postgres",
		})
		return
	}
	defer pgClient.Close()

	durableStore := store.NewStore(pgClient)
	if err := durableStore.EnsureSchema(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "ensure_schema",
		})
		return
	}

	// Initialize components
	ids := id.NewULIDGenerator()
	clock := id.NewSystemClock()
	ob := book.NewOrderBook(durableStore, ids, clock, log)
	oReader := orderreader.NewReader(cfg.OrderKafka, log)
	snapStore := snapshotstore.NewSnapshotStore(rclient, cfg.Pair, log)
	tPublisher := tradepublisher.NewPublisher(cfg.TradeKafka, log)

	engine := app.NewEngineWithOptions(
		ob,
		oReader,
		snapStore,
		tPublisher,
		ids,
		clock,
		log,
		cfg,
		&app.Options{
			SnapshotInterval:    cfg.Snapshot.Interval,
			SnapshotOffsetDelta: cfg.Snapshot.OffsetDelta,
		},
	)

	// Start the engine
	if err := engine.Start(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "start_engine",
		})
		return
	}

	log.Info("Matching engine started successfully", logger.Field{
		Key:   "pair",
		Value: cfg.Pair,
	})

	// Wait for shutdown signal
	sig := <-sigChan
	log.Info("Received shutdown signal", logger.Field{
		Key:   "signal",
		Value: sig.String(),
	})

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := engine.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "stop_engine",
		})
	}

	if err := tPublisher.Close(); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "close_trade_publisher",
		})
	}

	if err := rclient.Disconnect(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "disconnect_redis",
		})
	}

	log.Info("Matching engine shutdown complete")
}
