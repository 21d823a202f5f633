package orderv1

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrNilOrder is returned when a nil order is submitted.
	ErrNilOrder = errors.New("order cannot be nil")
	// ErrInvalidSide is returned when the order side is not BUY or SELL.
	ErrInvalidSide = errors.New("side must be BUY or SELL")
	// ErrInvalidPrice is returned when the limit price is not positive.
	ErrInvalidPrice = errors.New("price must be positive")
	// ErrInvalidQuantity is returned when the quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrEmptyOrderID is returned when the order id is empty.
	ErrEmptyOrderID = errors.New("order ID cannot be empty")
	// ErrEmptyUserID is returned when the user id is empty.
	ErrEmptyUserID = errors.New("user ID cannot be empty")
)

// Side represents the side of an order.
type Side string

const (
	// SideBuy represents a buy order.
	SideBuy Side = "BUY"
	// SideSell represents a sell order.
	SideSell Side = "SELL"
)

// Order represents a single limit order. Quantity is the remaining quantity
// and is decremented in place while the order is matched; everything else is
// immutable after creation.
type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userID"`
	Side      Side            `json:"side"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	Timestamp int64           `json:"timestamp"`
}

// NewOrder creates a new order with the given parameters.
func NewOrder(id, userID string, side Side, price decimal.Decimal, quantity int64, timestamp int64) *Order {
	return &Order{
		ID:        id,
		UserID:    userID,
		Side:      side,
		Price:     price,
		Quantity:  quantity,
		Timestamp: timestamp,
	}
}

// Validate rejects orders that must never reach the matching loop.
func (o *Order) Validate() error {
	if o == nil {
		return ErrNilOrder
	}
	if o.ID == "" {
		return ErrEmptyOrderID
	}
	if o.UserID == "" {
		return ErrEmptyUserID
	}
	if o.Side != SideBuy && o.Side != SideSell {
		return ErrInvalidSide
	}
	if !o.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if o.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// Clone returns a copy of the order detached from the live book state.
func (o *Order) Clone() *Order {
	clone := *o
	return &clone
}

// IsBuy checks if the order is a buy order.
func (o *Order) IsBuy() bool {
	return o.Side == SideBuy
}

// IsSell checks if the order is a sell order.
func (o *Order) IsSell() bool {
	return o.Side == SideSell
}

// IsFilled checks if the order has no remaining quantity.
func (o *Order) IsFilled() bool {
	return o.Quantity == 0
}

// Crosses reports whether this (incoming) order's limit price crosses the
// given resting order on the opposite side. Comparison is exact decimal
// comparison, no tolerance.
func (o *Order) Crosses(resting *Order) bool {
	if o.IsBuy() {
		return o.Price.GreaterThanOrEqual(resting.Price)
	}
	return o.Price.LessThanOrEqual(resting.Price)
}

// PlaceOrderRequest represents a request to place an order, as carried on the
// order topic.
type PlaceOrderRequest struct {
	OrderID  string          `json:"orderID"`
	UserID   string          `json:"userID"`
	Side     Side            `json:"side"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
	Offset   int64           `json:"-"` // Offset of the request in the stream
}
