package tradepublisherv1

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	orderv1 "github.com/masonhargrave/MedExchange/internal/domain/order/v1"
)

// TradeEvent is the payload published to the trade topic for every executed
// trade.
type TradeEvent struct {
	TradeID     string          `json:"tradeID"`
	Pair        string          `json:"pair"`
	BuyOrderID  string          `json:"buyOrderID"`
	SellOrderID string          `json:"sellOrderID"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	Timestamp   int64           `json:"timestamp"`
}

// CreateFromTrade creates a trade event from an executed trade.
func CreateFromTrade(trade *orderv1.Trade, pair string) *TradeEvent {
	return &TradeEvent{
		TradeID:     trade.ID,
		Pair:        pair,
		BuyOrderID:  trade.BuyOrderID,
		SellOrderID: trade.SellOrderID,
		Price:       trade.Price,
		Quantity:    trade.Quantity,
		Timestamp:   trade.Timestamp,
	}
}

// ToBytes converts the trade event to a byte array.
func (e *TradeEvent) ToBytes() []byte {
	data, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return data
}

// FromBytes converts a byte array to a trade event.
func FromBytes(data []byte) *TradeEvent {
	var event TradeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil
	}
	return &event
}
