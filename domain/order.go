// Package domain holds the plain records the matching core operates on:
// orders resting in the book and the trades they produce.
package domain

// Side is which side of the book an order rests on.
type Side int

const (
	SideBuy Side = iota
	SideSell
)

// OrderState tracks an order through its lifecycle. Amend never changes
// State — it is an in-place mutation of Resting/PartiallyFilled.
type OrderState int

const (
	StateNew OrderState = iota
	StateResting
	StatePartiallyFilled
	StateFilled
	StateCancelled
)

// Order is a resting limit order. It is always reached through a pool
// slot (see package pool), so its address is stable for as long as it is
// active — that stability is what makes Prev/Next safe as plain pointers
// instead of a map- or slice-index indirection.
//
// Prev and Next form the intrusive FIFO within whatever PriceLevel
// currently holds the order; they are owned and mutated exclusively by
// PriceLevel.Append/Detach in package orderbook. Nothing else should
// touch them.
type Order struct {
	ID        uint64
	Side      Side
	Price     float64
	Quantity  uint64 // residual; fills decrease it, Amend may set it higher or lower
	Timestamp uint64 // submission time, nanoseconds
	Active    bool
	State     OrderState

	Prev *Order
	Next *Order
}

// Reset clears an order back to its zero value before the slot is
// returned to the pool, so a freed slot never leaks a stale FIFO link
// into a record that reuses it.
func (o *Order) Reset() {
	*o = Order{}
}

// RemainingQuantity returns the unfilled quantity.
func (o *Order) RemainingQuantity() uint64 {
	return o.Quantity
}

// IsFilled reports whether the order's residual has reached zero.
func (o *Order) IsFilled() bool {
	return o.Quantity == 0
}

// Fill subtracts qty from the residual and advances State accordingly.
// qty must not exceed the current residual.
func (o *Order) Fill(qty uint64) {
	o.Quantity -= qty
	if o.Quantity == 0 {
		o.State = StateFilled
	} else {
		o.State = StatePartiallyFilled
	}
}
