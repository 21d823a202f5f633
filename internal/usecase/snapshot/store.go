package snapshot

import (
	"context"
	"encoding/json"

	snapshotv1 "github.com/masonhargrave/MedExchange/internal/domain/snapshot/v1"
	"github.com/masonhargrave/MedExchange/pkg/errors"
	"github.com/masonhargrave/MedExchange/pkg/logger"
	"github.com/masonhargrave/MedExchange/pkg/redis"
)

// Store keeps the latest order book snapshot in Redis, keyed by pair.
type Store struct {
	pair        string
	logger      *logger.Logger
	redisclient redis.Client
}

var _ snapshotv1.Store = (*Store)(nil)

// NewSnapshotStore creates a new snapshot store for the given pair.
func NewSnapshotStore(redisclient redis.Client, pair string, logger *logger.Logger) *Store {
	return &Store{
		pair:        pair,
		redisclient: redisclient,
		logger:      logger,
	}
}

// Store serializes the snapshot and writes it to Redis.
func (s *Store) Store(ctx context.Context, snapshot *snapshotv1.Snapshot) error {
	buf, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "pair",
			Value: s.pair,
		})
		return errors.NewCode(errors.SnapshotStoreError).Wrap(err)
	}

	if err := s.redisclient.Set(ctx, s.pair, buf, 0); err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "pair",
			Value: s.pair,
		})
		return errors.NewCode(errors.SnapshotStoreError).Wrap(err)
	}

	s.logger.InfoContext(ctx, "Snapshot stored", logger.Field{
		Key:   "pair",
		Value: s.pair,
	}, logger.Field{
		Key:   "orderOffset",
		Value: snapshot.OrderOffset,
	})
	return nil
}

// Load reads the latest snapshot from Redis. It returns nil when no snapshot
// exists for the pair yet.
func (s *Store) Load(ctx context.Context) (*snapshotv1.Snapshot, error) {
	data, err := s.redisclient.Get(ctx, s.pair)
	if err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "pair",
			Value: s.pair,
		})
		return nil, errors.NewCode(errors.SnapshotLoadError).Wrap(err)
	}

	if data == "" {
		s.logger.WarnContext(ctx, "No snapshot found", logger.Field{
			Key:   "pair",
			Value: s.pair,
		})
		return nil, nil
	}

	var snapshot snapshotv1.Snapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "pair",
			Value: s.pair,
		})
		return nil, errors.NewCode(errors.SnapshotLoadError).Wrap(err)
	}

	return &snapshot, nil
}
