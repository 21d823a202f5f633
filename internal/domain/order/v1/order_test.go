package orderv1

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_Validate(t *testing.T) {
	valid := func() *Order {
		return NewOrder("o1", "alice", SideBuy, decimal.RequireFromString("100.5"), 10, 1)
	}

	testCases := []struct {
		name        string
		mutate      func(*Order)
		expectedErr error
	}{
		{
			name:        "valid order",
			mutate:      func(o *Order) {},
			expectedErr: nil,
		},
		{
			name:        "empty order id",
			mutate:      func(o *Order) { o.ID = "" },
			expectedErr: ErrEmptyOrderID,
		},
		{
			name:        "empty user id",
			mutate:      func(o *Order) { o.UserID = "" },
			expectedErr: ErrEmptyUserID,
		},
		{
			name:        "unknown side",
			mutate:      func(o *Order) { o.Side = "HOLD" },
			expectedErr: ErrInvalidSide,
		},
		{
			name:        "zero price",
			mutate:      func(o *Order) { o.Price = decimal.Zero },
			expectedErr: ErrInvalidPrice,
		},
		{
			name:        "negative price",
			mutate:      func(o *Order) { o.Price = decimal.RequireFromString("-1") },
			expectedErr: ErrInvalidPrice,
		},
		{
			name:        "zero quantity",
			mutate:      func(o *Order) { o.Quantity = 0 },
			expectedErr: ErrInvalidQuantity,
		},
		{
			name:        "negative quantity",
			mutate:      func(o *Order) { o.Quantity = -5 },
			expectedErr: ErrInvalidQuantity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order := valid()
			tc.mutate(order)

			err := order.Validate()
			if tc.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expectedErr)
			}
		})
	}

	t.Run("nil order", func(t *testing.T) {
		var order *Order
		assert.ErrorIs(t, order.Validate(), ErrNilOrder)
	})
}

func TestOrder_Crosses(t *testing.T) {
	testCases := []struct {
		name          string
		incomingSide  Side
		incomingPrice string
		restingPrice  string
		crosses       bool
	}{
		{"buy above ask", SideBuy, "101", "100", true},
		{"buy at ask", SideBuy, "100", "100", true},
		{"buy below ask", SideBuy, "99", "100", false},
		{"sell below bid", SideSell, "99", "100", true},
		{"sell at bid", SideSell, "100", "100", true},
		{"sell above bid", SideSell, "101", "100", false},
		{"exact decimal comparison", SideBuy, "0.3", "0.30000000000000004", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			restingSide := SideSell
			if tc.incomingSide == SideSell {
				restingSide = SideBuy
			}

			incoming := NewOrder("in", "alice", tc.incomingSide, decimal.RequireFromString(tc.incomingPrice), 1, 1)
			resting := NewOrder("rest", "bob", restingSide, decimal.RequireFromString(tc.restingPrice), 1, 1)

			assert.Equal(t, tc.crosses, incoming.Crosses(resting))
		})
	}
}

func TestNewTrade(t *testing.T) {
	buy := NewOrder("b1", "alice", SideBuy, decimal.RequireFromString("101"), 5, 1)
	sell := NewOrder("s1", "bob", SideSell, decimal.RequireFromString("100"), 5, 2)

	t.Run("incoming buy takes the resting sell price", func(t *testing.T) {
		trade := NewTrade("t1", buy, sell, 5, 10)

		assert.Equal(t, "b1", trade.BuyOrderID)
		assert.Equal(t, "s1", trade.SellOrderID)
		assert.True(t, trade.Price.Equal(sell.Price))
		assert.Equal(t, int64(5), trade.Quantity)
		assert.Equal(t, int64(10), trade.Timestamp)
	})

	t.Run("incoming sell takes the resting bid price", func(t *testing.T) {
		trade := NewTrade("t2", sell, buy, 3, 11)

		assert.Equal(t, "b1", trade.BuyOrderID)
		assert.Equal(t, "s1", trade.SellOrderID)
		require.True(t, trade.Price.Equal(buy.Price))
	})
}

func TestOrder_IsFilled(t *testing.T) {
	order := NewOrder("o1", "alice", SideSell, decimal.RequireFromString("10"), 2, 1)
	assert.False(t, order.IsFilled())

	order.Quantity = 0
	assert.True(t, order.IsFilled())
}
