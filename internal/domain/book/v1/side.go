package bookv1

import (
	"fmt"
	"sort"

	orderv1 "github.com/masonhargrave/MedExchange/internal/domain/order/v1"
)

// Side holds the resting orders for one side of the book in matching-priority
// order: best price first, FIFO among equal prices. Bids are ordered by
// descending price, asks by ascending price.
//
// Side is not safe for concurrent use; the owning book serializes access.
type Side struct {
	bid    bool
	orders []*orderv1.Order
}

// NewBidSide creates the buy side of a book.
func NewBidSide() *Side {
	return &Side{bid: true}
}

// NewAskSide creates the sell side of a book.
func NewAskSide() *Side {
	return &Side{bid: false}
}

// Len returns the number of resting orders on this side.
func (s *Side) Len() int {
	return len(s.orders)
}

// Peek returns the best-priority resting order, or nil if the side is empty.
func (s *Side) Peek() *orderv1.Order {
	if len(s.orders) == 0 {
		return nil
	}
	return s.orders[0]
}

// RemoveFront removes and returns the best-priority resting order, or nil if
// the side is empty.
func (s *Side) RemoveFront() *orderv1.Order {
	if len(s.orders) == 0 {
		return nil
	}
	front := s.orders[0]
	s.orders = s.orders[1:]
	return front
}

// Insert places the order at its matching-priority position. An order at a
// price already present on this side goes after every existing entry at that
// price, so time priority at equal price is preserved.
func (s *Side) Insert(order *orderv1.Order) {
	i := sort.Search(len(s.orders), func(i int) bool {
		return s.ranksAfter(s.orders[i], order)
	})

	s.orders = append(s.orders, nil)
	copy(s.orders[i+1:], s.orders[i:])
	s.orders[i] = order
}

// ranksAfter reports whether resting sorts strictly after incoming, i.e. has
// a strictly worse price. Equal prices never rank after, which is what pushes
// a new order behind its equal-priced predecessors.
func (s *Side) ranksAfter(resting, incoming *orderv1.Order) bool {
	if s.bid {
		return resting.Price.LessThan(incoming.Price)
	}
	return resting.Price.GreaterThan(incoming.Price)
}

// Orders returns the resting orders in matching-priority order. Each order
// is a detached copy: the matching loop mutates resting quantities in place,
// so handing out the live pointers would let readers race against it.
func (s *Side) Orders() []*orderv1.Order {
	orders := make([]*orderv1.Order, len(s.orders))
	for i, order := range s.orders {
		orders[i] = order.Clone()
	}
	return orders
}

// Validate checks the side's ordering invariant. A violation here is an
// internal error, never a normal outcome.
func (s *Side) Validate() error {
	for i, order := range s.orders {
		if order == nil {
			return fmt.Errorf("nil order at position %d", i)
		}
		if order.Quantity <= 0 {
			return fmt.Errorf("order %s resting with quantity %d", order.ID, order.Quantity)
		}
		if i == 0 {
			continue
		}
		prev := s.orders[i-1]
		if s.ranksAfter(prev, order) {
			return fmt.Errorf("side unsorted at position %d: %s before %s", i, prev.ID, order.ID)
		}
		if prev.Price.Equal(order.Price) && prev.Timestamp > order.Timestamp {
			return fmt.Errorf("time priority broken at position %d: %s before %s", i, prev.ID, order.ID)
		}
	}
	return nil
}
