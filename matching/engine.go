// Package matching implements the continuous price-time priority
// matching loop that runs after every successful add, plus the sink
// trades are delivered through.
//
// Grounded in _examples/original_source/order_book.cpp's match_orders():
// the loop shape, the min-of-residuals fill size, and in particular the
// maker-price rule (earlier timestamp's resting order sets the price,
// bid wins ties) are ported from that function rather than from the
// teacher's matching/engine.go, which always prices at the resting
// side's top price and never looks at timestamps — see DESIGN.md.
package matching

import (
	"limitbook/domain"
	"limitbook/orderbook"
	"limitbook/pool"
)

// Engine is the continuous-matching state machine. It holds no book
// state of its own beyond the re-entrancy guard — the book, its two
// sides, its order index, and its pools are passed in on every call, all
// owned by the façade in package book.
type Engine struct {
	matchingInProgress bool
	sink               TradeSink
}

// NewEngine creates an engine that delivers trades to sink.
func NewEngine(sink TradeSink) *Engine {
	return &Engine{sink: sink}
}

// Run drives the matching loop to a fixed point: while both sides are
// non-empty and the top of book crosses, it fills the resting heads of
// each top level, emits a trade per fill, and reclaims any order or
// level whose residual/count reaches zero. It is safe — and a no-op —
// to call Run on an already-uncrossed book, and safe (also a no-op) to
// call it re-entrantly, guarded by matchingInProgress.
func (e *Engine) Run(bids, asks *orderbook.SideBook, index *orderbook.Index, orderPool *pool.Pool[domain.Order], levelPool *pool.Pool[orderbook.PriceLevel]) {
	if e.matchingInProgress {
		return
	}
	e.matchingInProgress = true
	defer func() { e.matchingInProgress = false }()

	for {
		bidLevel := bids.Best()
		askLevel := asks.Best()
		if bidLevel == nil || askLevel == nil {
			return
		}
		if bidLevel.Price < askLevel.Price {
			return
		}

		bidOrder := bidLevel.Head()
		askOrder := askLevel.Head()
		if bidOrder == nil || askOrder == nil {
			return
		}

		fill := bidOrder.Quantity
		if askOrder.Quantity < fill {
			fill = askOrder.Quantity
		}

		fillPrice := askOrder.Price
		if bidOrder.Timestamp <= askOrder.Timestamp {
			fillPrice = bidOrder.Price
		}

		e.sink.OnTrade(domain.Trade{
			FillQty:   fill,
			FillPrice: fillPrice,
			BidID:     bidOrder.ID,
			AskID:     askOrder.ID,
		})

		bidOrder.Fill(fill)
		bidLevel.ReduceQuantity(fill)
		askOrder.Fill(fill)
		askLevel.ReduceQuantity(fill)

		if bidOrder.IsFilled() {
			reclaimOrder(bids, bidLevel, bidOrder, index, orderPool, levelPool)
		}
		if askOrder.IsFilled() {
			reclaimOrder(asks, askLevel, askOrder, index, orderPool, levelPool)
		}
	}
}

// reclaimOrder detaches a fully-filled order from its level, drops it
// from the index, and returns its slot to the pool; if the level is now
// empty it is erased from the side and its slot returned too.
func reclaimOrder(side *orderbook.SideBook, level *orderbook.PriceLevel, order *domain.Order, index *orderbook.Index, orderPool *pool.Pool[domain.Order], levelPool *pool.Pool[orderbook.PriceLevel]) {
	level.Detach(order)
	index.Delete(order.ID)
	orderPool.Release(order)

	if level.IsEmpty() {
		side.Remove(level.Price)
		levelPool.Release(level)
	}
}
