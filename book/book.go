// Package book provides OrderBook, the public façade for the
// single-instrument central limit order book: input validation, the
// version counter, snapshotting, and the wiring between the pools, the
// two side books, the order index, and the matching engine.
package book

import (
	"math"

	"limitbook/domain"
	"limitbook/matching"
	"limitbook/orderbook"
	"limitbook/pool"
)

// AddRequest is the input carrier for Add, per spec.md §6.
type AddRequest struct {
	ID          uint64
	IsBuy       bool
	Price       float64
	Quantity    uint64
	TimestampNS uint64
}

// SnapshotLevel is one aggregated level returned by Snapshot.
type SnapshotLevel struct {
	Price         float64
	TotalQuantity uint64
	OrderCount    int
}

// Option configures an OrderBook at construction time.
type Option func(*OrderBook)

// WithTradeSink overrides the default trade sink (a TradeRingBuffer)
// with a caller-supplied one — a callback, a channel-backed adapter, or
// another buffer implementation.
func WithTradeSink(sink matching.TradeSink) Option {
	return func(b *OrderBook) { b.sink = sink }
}

// WithLogger overrides the default stdout Logger used to report
// validation failures.
func WithLogger(logger Logger) Option {
	return func(b *OrderBook) { b.logger = logger }
}

// OrderBook is the façade described by spec.md §4.5. It owns every
// piece of book state: the pools, both side books, the order index, and
// the matching engine. It is not safe for concurrent use — see
// SPEC_FULL.md §5.
type OrderBook struct {
	bids *orderbook.SideBook
	asks *orderbook.SideBook
	idx  *orderbook.Index

	orderPool *pool.Pool[domain.Order]
	levelPool *pool.Pool[orderbook.PriceLevel]

	engine *matching.Engine
	sink   matching.TradeSink
	logger Logger

	version uint64
}

// New creates an empty order book.
func New(opts ...Option) *OrderBook {
	b := &OrderBook{
		bids:      orderbook.NewSideBook(true),
		asks:      orderbook.NewSideBook(false),
		idx:       orderbook.NewIndex(),
		orderPool: pool.New[domain.Order](),
		levelPool: pool.New[orderbook.PriceLevel](),
		logger:    stdLogger{},
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.sink == nil {
		b.sink = matching.NewTradeRingBuffer(1024)
	}
	b.engine = matching.NewEngine(b.sink)
	return b
}

// TradeSink returns the sink trades are delivered to. Useful when it is
// the default TradeRingBuffer and the caller wants to drain it.
func (b *OrderBook) TradeSink() matching.TradeSink {
	return b.sink
}

// Add validates and inserts a new resting order, then drives the
// matching engine. It returns true even if the new order is fully
// consumed by matching within this same call.
func (b *OrderBook) Add(req AddRequest) (bool, error) {
	if req.ID == 0 {
		return b.reject(ErrInvalidIdentifier)
	}
	if err := validatePrice(req.Price); err != nil {
		return b.reject(err)
	}
	if err := validateQuantity(req.Quantity); err != nil {
		return b.reject(err)
	}
	if _, exists := b.idx.Get(req.ID); exists {
		return b.reject(ErrDuplicateID)
	}

	order := b.orderPool.Allocate()
	order.ID = req.ID
	order.Quantity = req.Quantity
	order.Timestamp = req.TimestampNS
	order.Active = true
	order.State = domain.StateResting
	if req.IsBuy {
		order.Side = domain.SideBuy
	} else {
		order.Side = domain.SideSell
	}
	order.Price = req.Price

	side := b.sideFor(req.IsBuy)
	level := b.levelFor(side, req.Price)
	level.Append(order)
	b.idx.Put(order)

	b.version++

	b.engine.Run(b.bids, b.asks, b.idx, b.orderPool, b.levelPool)
	return true, nil
}

// Cancel removes a resting order. It returns false without side effects
// if id is zero, unknown, or already inactive.
func (b *OrderBook) Cancel(id uint64) (bool, error) {
	if id == 0 {
		return b.reject(ErrInvalidIdentifier)
	}
	order, exists := b.idx.Get(id)
	if !exists {
		return b.reject(ErrUnknownID)
	}
	if !order.Active {
		return b.reject(ErrUnknownID)
	}

	side := b.sideFor(order.Side == domain.SideBuy)
	level, ok := side.Get(order.Price)
	if ok {
		level.Detach(order)
		if level.IsEmpty() {
			side.Remove(level.Price)
			b.levelPool.Release(level)
		}
	}

	b.idx.Delete(id)
	order.State = domain.StateCancelled
	b.orderPool.Release(order)

	b.version++
	return true, nil
}

// Amend changes a resting order's price and/or quantity in place.
// Per spec.md §4.5/§9, amend never drives the matching engine — a
// caller that needs a crossing amend to execute must cancel and re-add.
func (b *OrderBook) Amend(id uint64, newPrice float64, newQty uint64) (bool, error) {
	if id == 0 {
		return b.reject(ErrInvalidIdentifier)
	}
	order, exists := b.idx.Get(id)
	if !exists {
		return b.reject(ErrUnknownID)
	}
	if !order.Active {
		return b.reject(ErrInactiveOrder)
	}
	if err := validatePrice(newPrice); err != nil {
		return b.reject(err)
	}
	if err := validateQuantity(newQty); err != nil {
		return b.reject(err)
	}

	side := b.sideFor(order.Side == domain.SideBuy)

	if newPrice == order.Price {
		level, ok := side.Get(order.Price)
		if ok {
			switch {
			case newQty > order.Quantity:
				level.IncreaseQuantity(newQty - order.Quantity)
			case newQty < order.Quantity:
				level.ReduceQuantity(order.Quantity - newQty)
			}
		}
		order.Quantity = newQty
		b.version++
		return true, nil
	}

	// Price changes lose time priority: detach from the old level
	// (erasing it if it drains), then re-attach at the tail of the new
	// one, possibly newly created.
	oldLevel, ok := side.Get(order.Price)
	if ok {
		oldLevel.Detach(order)
		if oldLevel.IsEmpty() {
			side.Remove(oldLevel.Price)
			b.levelPool.Release(oldLevel)
		}
	}

	order.Active = true
	order.Price = newPrice
	order.Quantity = newQty

	newLevel := b.levelFor(side, newPrice)
	newLevel.Append(order)

	b.version++
	return true, nil
}

// Snapshot returns up to depth aggregated levels from the top of each
// side. It does not expose internal handles or mutate state.
func (b *OrderBook) Snapshot(depth int) (bids, asks []SnapshotLevel) {
	return toSnapshot(b.bids.Levels(depth)), toSnapshot(b.asks.Levels(depth))
}

func toSnapshot(levels []*orderbook.PriceLevel) []SnapshotLevel {
	out := make([]SnapshotLevel, len(levels))
	for i, l := range levels {
		out[i] = SnapshotLevel{Price: l.Price, TotalQuantity: l.TotalQuantity, OrderCount: l.OrderCount}
	}
	return out
}

// BestBid returns the highest resting bid price, or 0.0 if there are no
// bids.
func (b *OrderBook) BestBid() float64 {
	if level := b.bids.Best(); level != nil {
		return level.Price
	}
	return 0.0
}

// BestAsk returns the lowest resting ask price, or +Inf if there are no
// asks.
func (b *OrderBook) BestAsk() float64 {
	if level := b.asks.Best(); level != nil {
		return level.Price
	}
	return math.Inf(1)
}

// Spread returns BestAsk - BestBid when both sides are non-empty,
// otherwise 0.0.
func (b *OrderBook) Spread() float64 {
	bidLevel, askLevel := b.bids.Best(), b.asks.Best()
	if bidLevel == nil || askLevel == nil {
		return 0.0
	}
	return askLevel.Price - bidLevel.Price
}

// Version returns the monotonically increasing mutation counter. It is
// bumped exactly once per successful Add/Cancel/Amend call.
func (b *OrderBook) Version() uint64 { return b.version }

// OrderCount returns the number of currently-resting orders.
func (b *OrderBook) OrderCount() int { return b.idx.Len() }

// BidLevels returns the number of distinct bid price levels.
func (b *OrderBook) BidLevels() int { return b.bids.Len() }

// AskLevels returns the number of distinct ask price levels.
func (b *OrderBook) AskLevels() int { return b.asks.Len() }

func (b *OrderBook) sideFor(isBuy bool) *orderbook.SideBook {
	if isBuy {
		return b.bids
	}
	return b.asks
}

func (b *OrderBook) levelFor(side *orderbook.SideBook, price float64) *orderbook.PriceLevel {
	level, ok := side.Get(price)
	if !ok {
		level = b.levelPool.Allocate()
		level.Price = price
		side.Put(price, level)
	}
	return level
}

func (b *OrderBook) reject(err error) (bool, error) {
	b.logger.Printf("limitbook: rejected: %v", err)
	return false, err
}

func validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return ErrInvalidPrice
	}
	if price < MinPrice || price > MaxPrice {
		return ErrInvalidPrice
	}
	return nil
}

func validateQuantity(qty uint64) error {
	if qty == 0 || qty > MaxOrderQuantity {
		return ErrInvalidQuantity
	}
	return nil
}
