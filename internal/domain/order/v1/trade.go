package orderv1

import "github.com/shopspring/decimal"

// Trade represents one executed match between a buy and a sell order. Trades
// are immutable once created.
type Trade struct {
	ID          string          `json:"id"`
	BuyOrderID  string          `json:"buyOrderID"`
	SellOrderID string          `json:"sellOrderID"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	Timestamp   int64           `json:"timestamp"`
}

// NewTrade creates a trade between the incoming aggressor order and the
// resting order it matched. The execution price is always the resting order's
// limit price: the aggressor gets price improvement, never the reverse.
func NewTrade(id string, incoming, resting *Order, quantity int64, timestamp int64) *Trade {
	trade := &Trade{
		ID:        id,
		Price:     resting.Price,
		Quantity:  quantity,
		Timestamp: timestamp,
	}

	if incoming.IsBuy() {
		trade.BuyOrderID = incoming.ID
		trade.SellOrderID = resting.ID
	} else {
		trade.BuyOrderID = resting.ID
		trade.SellOrderID = incoming.ID
	}

	return trade
}
