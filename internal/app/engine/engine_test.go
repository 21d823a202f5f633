package engine

import (
	"context"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	bookv1_mock "github.com/masonhargrave/MedExchange/internal/domain/book/v1/mock"
	orderv1 "github.com/masonhargrave/MedExchange/internal/domain/order/v1"
	orderreadermock "github.com/masonhargrave/MedExchange/internal/domain/order-reader/v1/mock"
	snapshotv1 "github.com/masonhargrave/MedExchange/internal/domain/snapshot/v1"
	snapshotmock "github.com/masonhargrave/MedExchange/internal/domain/snapshot/v1/mock"
	storemock "github.com/masonhargrave/MedExchange/internal/domain/store/v1/mock"
	tradepublishermock "github.com/masonhargrave/MedExchange/internal/domain/trade-publisher/v1/mock"
	"github.com/masonhargrave/MedExchange/internal/usecase/book"
	"github.com/masonhargrave/MedExchange/pkg/config"
	pkgerrors "github.com/masonhargrave/MedExchange/pkg/errors"
	"github.com/masonhargrave/MedExchange/pkg/id"
	"github.com/masonhargrave/MedExchange/pkg/logger"
)

type testFixture struct {
	ctrl               *gomock.Controller
	mockOrderReader    *orderreadermock.MockOrderReader
	mockSnapshotStore  *snapshotmock.MockStore
	mockTradePublisher *tradepublishermock.MockTradePublisher
	mockStore          *storemock.MockStore
	book               *book.OrderBook
	logger             *logger.Logger
	config             *config.Config
}

func setupTestFixture(t *testing.T) *testFixture {
	ctrl := gomock.NewController(t)

	log, err := logger.NewLogger()
	require.NoError(t, err)

	mockStore := storemock.NewMockStore(ctrl)

	return &testFixture{
		ctrl:               ctrl,
		mockOrderReader:    orderreadermock.NewMockOrderReader(ctrl),
		mockSnapshotStore:  snapshotmock.NewMockStore(ctrl),
		mockTradePublisher: tradepublishermock.NewMockTradePublisher(ctrl),
		mockStore:          mockStore,
		book:               book.NewOrderBook(mockStore, id.NewULIDGenerator(), id.NewSystemClock(), log),
		logger:             log,
		config: &config.Config{
			Pair: "MEDX-USD",
			OrderKafka: config.KafkaConfig{
				Brokers: []string{"localhost:9092"},
				Topic:   "orders",
			},
			TradeKafka: config.KafkaConfig{
				Brokers: []string{"localhost:9092"},
				Topic:   "trades",
			},
		},
	}
}

func (f *testFixture) allowPersistence() {
	f.mockStore.EXPECT().UpsertOrder(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.mockStore.EXPECT().InsertTrade(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// createTestEngine builds an engine with an initialized context.
func createTestEngine(f *testFixture) *Engine {
	engine := NewEngine(
		f.book,
		f.mockOrderReader,
		f.mockSnapshotStore,
		f.mockTradePublisher,
		id.NewULIDGenerator(),
		id.NewSystemClock(),
		f.logger,
		f.config,
	)
	engine.ctx = context.Background()
	return engine
}

func createTestRequest(orderID, userID string, side orderv1.Side, price string, quantity int64) *orderv1.PlaceOrderRequest {
	return &orderv1.PlaceOrderRequest{
		OrderID:  orderID,
		UserID:   userID,
		Side:     side,
		Price:    decimal.RequireFromString(price),
		Quantity: quantity,
	}
}

func TestNewEngine(t *testing.T) {
	testCases := []struct {
		name                string
		setupMocks          func(*testFixture)
		expectedOrderOffset int64
		expectedBids        int
	}{
		{
			name: "no snapshot yet",
			setupMocks: func(f *testFixture) {
				f.mockSnapshotStore.EXPECT().
					Load(gomock.Any()).
					Return(nil, nil).
					Times(1)
			},
			expectedOrderOffset: -1,
			expectedBids:        0,
		},
		{
			name: "restores book and offset from snapshot",
			setupMocks: func(f *testFixture) {
				snapshot := &snapshotv1.Snapshot{
					OrderOffset: 100,
					Orders: []snapshotv1.BookOrder{
						{
							OrderID:   "b1",
							UserID:    "alice",
							Side:      string(orderv1.SideBuy),
							Price:     decimal.RequireFromString("100"),
							Quantity:  5,
							Timestamp: 1,
						},
					},
				}
				f.mockSnapshotStore.EXPECT().
					Load(gomock.Any()).
					Return(snapshot, nil).
					Times(1)
			},
			expectedOrderOffset: 100,
			expectedBids:        1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fixture := setupTestFixture(t)
			tc.setupMocks(fixture)

			engine := createTestEngine(fixture)

			assert.NotNil(t, engine)
			assert.Equal(t, tc.expectedOrderOffset, engine.GetOrderOffset())
			assert.Len(t, fixture.book.Bids(), tc.expectedBids)
		})
	}
}

func TestEngine_ProcessRequest(t *testing.T) {
	t.Run("resting order publishes nothing", func(t *testing.T) {
		fixture := setupTestFixture(t)
		fixture.mockSnapshotStore.EXPECT().Load(gomock.Any()).Return(nil, nil).Times(1)
		fixture.allowPersistence()

		engine := createTestEngine(fixture)

		err := engine.processRequest(createTestRequest("b1", "alice", orderv1.SideBuy, "100", 10))
		require.NoError(t, err)

		assert.Len(t, fixture.book.Bids(), 1)
		assert.Equal(t, int64(0), engine.GetTotalTrades())
	})

	t.Run("crossing order publishes one event per trade", func(t *testing.T) {
		fixture := setupTestFixture(t)
		fixture.mockSnapshotStore.EXPECT().Load(gomock.Any()).Return(nil, nil).Times(1)
		fixture.allowPersistence()

		engine := createTestEngine(fixture)

		require.NoError(t, engine.processRequest(createTestRequest("b1", "alice", orderv1.SideBuy, "100", 5)))
		require.NoError(t, engine.processRequest(createTestRequest("b2", "bob", orderv1.SideBuy, "100", 5)))

		fixture.mockTradePublisher.EXPECT().
			PublishTrade(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)

		require.NoError(t, engine.processRequest(createTestRequest("s1", "carol", orderv1.SideSell, "99", 7)))

		assert.Equal(t, int64(2), engine.GetTotalTrades())
	})

	t.Run("generates an order id when the request has none", func(t *testing.T) {
		fixture := setupTestFixture(t)
		fixture.mockSnapshotStore.EXPECT().Load(gomock.Any()).Return(nil, nil).Times(1)
		fixture.allowPersistence()

		engine := createTestEngine(fixture)

		require.NoError(t, engine.processRequest(createTestRequest("", "alice", orderv1.SideBuy, "100", 10)))

		bids := fixture.book.Bids()
		require.Len(t, bids, 1)
		assert.NotEmpty(t, bids[0].ID)
	})

	t.Run("publishes trades executed before a failed submission", func(t *testing.T) {
		fixture := setupTestFixture(t)
		fixture.mockSnapshotStore.EXPECT().Load(gomock.Any()).Return(nil, nil).Times(1)

		mockBook := bookv1_mock.NewMockOrderBook(fixture.ctrl)
		engine := NewEngine(
			mockBook,
			fixture.mockOrderReader,
			fixture.mockSnapshotStore,
			fixture.mockTradePublisher,
			id.NewULIDGenerator(),
			id.NewSystemClock(),
			fixture.logger,
			fixture.config,
		)
		engine.ctx = context.Background()

		executed := []*orderv1.Trade{
			{
				ID:          "t1",
				BuyOrderID:  "b1",
				SellOrderID: "s1",
				Price:       decimal.RequireFromString("100"),
				Quantity:    1,
				Timestamp:   1,
			},
		}
		submitErr := pkgerrors.NewCode(pkgerrors.BookInvariantError)
		mockBook.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			Return(executed, submitErr).
			Times(1)
		fixture.mockTradePublisher.EXPECT().
			PublishTrade(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(1)

		err := engine.processRequest(createTestRequest("x1", "alice", orderv1.SideSell, "100", 2))
		assert.ErrorIs(t, err, submitErr)
		assert.Equal(t, int64(1), engine.GetTotalTrades())
	})

	t.Run("rejected order surfaces the error and leaves the book alone", func(t *testing.T) {
		fixture := setupTestFixture(t)
		fixture.mockSnapshotStore.EXPECT().Load(gomock.Any()).Return(nil, nil).Times(1)

		engine := createTestEngine(fixture)

		err := engine.processRequest(createTestRequest("r1", "alice", orderv1.SideBuy, "100", 0))
		assert.ErrorIs(t, err, orderv1.ErrInvalidQuantity)
		assert.Empty(t, fixture.book.Bids())
	})
}

func TestEngine_Snapshotting(t *testing.T) {
	fixture := setupTestFixture(t)
	fixture.mockSnapshotStore.EXPECT().Load(gomock.Any()).Return(nil, nil).Times(1)

	engine := createTestEngine(fixture)

	t.Run("below delta does not snapshot", func(t *testing.T) {
		engine.setOrderOffset(500)
		assert.False(t, engine.shouldCreateSnapshot())
	})

	t.Run("past delta snapshots at the current offset", func(t *testing.T) {
		engine.setOrderOffset(1500)
		require.True(t, engine.shouldCreateSnapshot())

		fixture.mockSnapshotStore.EXPECT().
			Store(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, snapshot *snapshotv1.Snapshot) error {
				assert.Equal(t, int64(1500), snapshot.OrderOffset)
				return nil
			}).
			Times(1)

		engine.createAndStoreSnapshot()
		assert.Equal(t, int64(1500), engine.GetLastSnapshotOffset())
		assert.False(t, engine.shouldCreateSnapshot())
	})
}

func TestEngine_StartStop(t *testing.T) {
	fixture := setupTestFixture(t)
	fixture.mockSnapshotStore.EXPECT().Load(gomock.Any()).Return(nil, nil).Times(1)

	engine := createTestEngine(fixture)

	fixture.mockOrderReader.EXPECT().SetOffset(gomock.Any()).Return(nil).Times(1)
	fixture.mockOrderReader.EXPECT().
		ReadMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, *orderv1.PlaceOrderRequest, error) {
			<-ctx.Done()
			return kafka.Message{}, nil, ctx.Err()
		}).
		AnyTimes()
	fixture.mockOrderReader.EXPECT().Close().Return(nil).Times(1)

	require.NoError(t, engine.Start(context.Background()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, engine.Stop(shutdownCtx))
}
