package matching

import "limitbook/domain"

// TradeSink is the caller-supplied destination for trade reports. The
// engine delivers fills to it synchronously, in emission order, from
// within the call that produced them. Implementations must not block the
// caller indefinitely — the engine has no retry or backpressure policy.
type TradeSink interface {
	OnTrade(trade domain.Trade)
}

// TradeSinkFunc adapts a plain function to TradeSink.
type TradeSinkFunc func(domain.Trade)

// OnTrade implements TradeSink.
func (f TradeSinkFunc) OnTrade(trade domain.Trade) { f(trade) }

// TradeRingBuffer is the default TradeSink: a fixed-capacity circular
// buffer of trade reports that a caller can drain after an Add call
// returns. There is no goroutine, no semaphore, and no producer/consumer
// boundary here — matching is single-threaded and synchronous, so
// Publish and TryConsume both run on the caller's own goroutine.
// Capacity is a power of two so the wrap-around index is a plain mask.
type TradeRingBuffer struct {
	buffer   []domain.Trade
	mask     int64
	writeSeq int64
	readSeq  int64
}

// NewTradeRingBuffer creates a ring buffer with the given power-of-two
// capacity.
func NewTradeRingBuffer(capacity int) *TradeRingBuffer {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		panic("TradeRingBuffer capacity must be a positive power of 2")
	}
	return &TradeRingBuffer{
		buffer: make([]domain.Trade, capacity),
		mask:   int64(capacity - 1),
	}
}

// OnTrade implements TradeSink by publishing into the ring. When the
// ring is full the oldest unread trade is overwritten — a caller that
// cares about every fill should drain after each mutating call, which
// the façade's call pattern (bounded fills per Add) makes practical.
func (rb *TradeRingBuffer) OnTrade(trade domain.Trade) {
	rb.Publish(trade)
}

// Publish appends a trade to the ring, overwriting the oldest entry if
// the buffer is full.
func (rb *TradeRingBuffer) Publish(trade domain.Trade) {
	if rb.writeSeq-rb.readSeq >= int64(len(rb.buffer)) {
		rb.readSeq++ // drop the oldest unread trade
	}
	index := rb.writeSeq & rb.mask
	rb.buffer[index] = trade
	rb.writeSeq++
}

// TryConsume returns the oldest unread trade, or false if the buffer is
// empty.
func (rb *TradeRingBuffer) TryConsume() (domain.Trade, bool) {
	if rb.readSeq >= rb.writeSeq {
		return domain.Trade{}, false
	}
	index := rb.readSeq & rb.mask
	trade := rb.buffer[index]
	rb.readSeq++
	return trade, true
}

// Drain returns every unread trade in emission order and empties the
// buffer.
func (rb *TradeRingBuffer) Drain() []domain.Trade {
	n := rb.writeSeq - rb.readSeq
	if n <= 0 {
		return nil
	}
	out := make([]domain.Trade, 0, n)
	for {
		trade, ok := rb.TryConsume()
		if !ok {
			break
		}
		out = append(out, trade)
	}
	return out
}

// Len returns the number of unread trades.
func (rb *TradeRingBuffer) Len() int {
	return int(rb.writeSeq - rb.readSeq)
}
