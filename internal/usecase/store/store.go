package store

import (
	"context"
	"fmt"

	orderv1 "github.com/masonhargrave/MedExchange/internal/domain/order/v1"
	storev1 "github.com/masonhargrave/MedExchange/internal/domain/store/v1"
	"github.com/masonhargrave/MedExchange/pkg/postgres"
)

// Store persists orders and trades to Postgres. It implements the persistence
// hand-off consumed by the matching loop: both operations are idempotent on
// their primary keys so retried hand-offs never duplicate records.
type Store struct {
	client postgres.Client
}

var _ storev1.Store = (*Store)(nil)

// NewStore creates a new Postgres-backed store.
func NewStore(client postgres.Client) *Store {
	return &Store{
		client: client,
	}
}

// EnsureSchema creates the orders and trades tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL,
			side       TEXT NOT NULL,
			price      NUMERIC NOT NULL,
			quantity   BIGINT NOT NULL,
			timestamp  BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS trades (
			id            TEXT PRIMARY KEY,
			buy_order_id  TEXT NOT NULL,
			sell_order_id TEXT NOT NULL,
			price         NUMERIC NOT NULL,
			quantity      BIGINT NOT NULL,
			timestamp     BIGINT NOT NULL
		)`,
	}

	for _, stmt := range schema {
		if _, err := s.client.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// UpsertOrder records the order's current remaining quantity.
func (s *Store) UpsertOrder(ctx context.Context, order *orderv1.Order) error {
	query := `INSERT INTO orders (id, user_id, side, price, quantity, timestamp)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (id) DO UPDATE SET quantity = EXCLUDED.quantity`

	_, err := s.client.Exec(ctx, query,
		order.ID, order.UserID, string(order.Side), order.Price.String(),
		order.Quantity, order.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to upsert order %s: %w", order.ID, err)
	}

	return nil
}

// InsertTrade records an executed trade. Trades are append-only; a retry for
// an already-recorded trade id is a no-op.
func (s *Store) InsertTrade(ctx context.Context, trade *orderv1.Trade) error {
	query := `INSERT INTO trades (id, buy_order_id, sell_order_id, price, quantity, timestamp)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (id) DO NOTHING`

	_, err := s.client.Exec(ctx, query,
		trade.ID, trade.BuyOrderID, trade.SellOrderID, trade.Price.String(),
		trade.Quantity, trade.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert trade %s: %w", trade.ID, err)
	}

	return nil
}
