// Package orderbook holds the price-level and side-of-book structures
// that sit between a resting order and the matching engine: aggregated
// per-price state (PriceLevel), and the ordered map of price to level
// for one side (SideBook), plus the order-identifier index.
package orderbook

import "limitbook/domain"

// PriceLevel aggregates all resting orders at one (side, price) pair.
// Orders are linked through their own Prev/Next fields — an intrusive
// FIFO, not a container/list — so Append and Detach never allocate.
type PriceLevel struct {
	Price         float64
	TotalQuantity uint64
	OrderCount    int

	head *domain.Order
	tail *domain.Order
}

// Reset clears a level back to its zero value before its slot is
// returned to the level pool.
func (l *PriceLevel) Reset() {
	*l = PriceLevel{}
}

// Head returns the first (oldest, next-to-match) order at this level, or
// nil if the level is empty.
func (l *PriceLevel) Head() *domain.Order {
	return l.head
}

// Append adds an order to the FIFO tail and updates the aggregates. The
// order must not already belong to a level.
func (l *PriceLevel) Append(order *domain.Order) {
	order.Prev = l.tail
	order.Next = nil
	if l.tail != nil {
		l.tail.Next = order
	} else {
		l.head = order
	}
	l.tail = order

	l.TotalQuantity += order.Quantity
	l.OrderCount++
}

// Detach removes an order from the FIFO at its current position in
// O(1) using its own neighbour references, and marks it inactive.
// Detach is idempotent: calling it again on an already-inactive order
// is a no-op.
func (l *PriceLevel) Detach(order *domain.Order) {
	if !order.Active {
		return
	}
	order.Active = false

	if order.Prev != nil {
		order.Prev.Next = order.Next
	} else {
		l.head = order.Next
	}
	if order.Next != nil {
		order.Next.Prev = order.Prev
	} else {
		l.tail = order.Prev
	}
	order.Prev = nil
	order.Next = nil

	l.TotalQuantity -= order.Quantity
	l.OrderCount--
}

// IsEmpty reports whether the level has no resident orders.
func (l *PriceLevel) IsEmpty() bool {
	return l.OrderCount == 0
}

// ReduceQuantity lowers TotalQuantity by qty without touching the FIFO.
// Called by the matching engine after a fill shrinks a resident order's
// residual, and by amend when a same-price quantity decrease shrinks it
// directly.
func (l *PriceLevel) ReduceQuantity(qty uint64) {
	l.TotalQuantity -= qty
}

// IncreaseQuantity raises TotalQuantity by qty without touching the
// FIFO. Called by amend when a same-price quantity increase grows a
// resident order's residual.
func (l *PriceLevel) IncreaseQuantity(qty uint64) {
	l.TotalQuantity += qty
}
