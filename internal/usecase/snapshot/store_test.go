package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	snapshotv1 "github.com/masonhargrave/MedExchange/internal/domain/snapshot/v1"
	"github.com/masonhargrave/MedExchange/pkg/logger"
	redis_mock "github.com/masonhargrave/MedExchange/pkg/redis/mock"
)

func setupTestStore(t *testing.T) (*Store, *redis_mock.MockClient) {
	ctrl := gomock.NewController(t)
	mockClient := redis_mock.NewMockClient(ctrl)

	log, err := logger.NewLogger()
	require.NoError(t, err)

	return NewSnapshotStore(mockClient, "MEDX-USD", log), mockClient
}

func testSnapshot() *snapshotv1.Snapshot {
	return &snapshotv1.Snapshot{
		OrderOffset: 42,
		Orders: []snapshotv1.BookOrder{
			{
				OrderID:   "b1",
				UserID:    "alice",
				Side:      "BUY",
				Price:     decimal.RequireFromString("100.5"),
				Quantity:  10,
				Timestamp: 1,
			},
		},
	}
}

func TestStore_Store(t *testing.T) {
	t.Run("writes the snapshot under the pair key", func(t *testing.T) {
		store, mockClient := setupTestStore(t)

		mockClient.EXPECT().
			Set(gomock.Any(), "MEDX-USD", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any, _ any) error {
				var decoded snapshotv1.Snapshot
				require.NoError(t, json.Unmarshal(value.([]byte), &decoded))
				assert.Equal(t, int64(42), decoded.OrderOffset)
				assert.Len(t, decoded.Orders, 1)
				return nil
			}).
			Times(1)

		assert.NoError(t, store.Store(context.Background(), testSnapshot()))
	})

	t.Run("surfaces redis failures", func(t *testing.T) {
		store, mockClient := setupTestStore(t)

		mockClient.EXPECT().
			Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused")).
			Times(1)

		assert.Error(t, store.Store(context.Background(), testSnapshot()))
	})
}

func TestStore_Load(t *testing.T) {
	t.Run("round-trips a stored snapshot", func(t *testing.T) {
		store, mockClient := setupTestStore(t)

		buf, err := json.Marshal(testSnapshot())
		require.NoError(t, err)

		mockClient.EXPECT().
			Get(gomock.Any(), "MEDX-USD").
			Return(string(buf), nil).
			Times(1)

		loaded, err := store.Load(context.Background())
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, int64(42), loaded.OrderOffset)
		require.Len(t, loaded.Orders, 1)
		assert.True(t, loaded.Orders[0].Price.Equal(decimal.RequireFromString("100.5")))
	})

	t.Run("returns nil when no snapshot exists", func(t *testing.T) {
		store, mockClient := setupTestStore(t)

		mockClient.EXPECT().
			Get(gomock.Any(), "MEDX-USD").
			Return("", nil).
			Times(1)

		loaded, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("surfaces corrupt payloads", func(t *testing.T) {
		store, mockClient := setupTestStore(t)

		mockClient.EXPECT().
			Get(gomock.Any(), "MEDX-USD").
			Return("{not json", nil).
			Times(1)

		loaded, err := store.Load(context.Background())
		assert.Error(t, err)
		assert.Nil(t, loaded)
	})
}
