package snapshotv1

import "github.com/shopspring/decimal"

// Snapshot represents the state of the order book at a specific point in time.
type Snapshot struct {
	OrderOffset int64       `json:"orderOffset"`
	Orders      []BookOrder `json:"orders"`
}

// BookOrder represents a resting order captured in a snapshot.
type BookOrder struct {
	OrderID   string          `json:"orderID"`
	UserID    string          `json:"userID"`
	Side      string          `json:"side"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	Timestamp int64           `json:"timestamp"`
}
