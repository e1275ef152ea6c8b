package matching

import (
	"testing"

	"limitbook/domain"
	"limitbook/orderbook"
	"limitbook/pool"
)

// fixture bundles the book state Engine.Run needs, built directly
// (bypassing the façade) so the matching algorithm can be tested in
// isolation.
type fixture struct {
	bids, asks *orderbook.SideBook
	index      *orderbook.Index
	orderPool  *pool.Pool[domain.Order]
	levelPool  *pool.Pool[orderbook.PriceLevel]
	trades     []domain.Trade
	engine     *Engine
}

func newFixture() *fixture {
	f := &fixture{
		bids:      orderbook.NewSideBook(true),
		asks:      orderbook.NewSideBook(false),
		index:     orderbook.NewIndex(),
		orderPool: pool.New[domain.Order](),
		levelPool: pool.New[orderbook.PriceLevel](),
	}
	f.engine = NewEngine(TradeSinkFunc(func(t domain.Trade) {
		f.trades = append(f.trades, t)
	}))
	return f
}

func (f *fixture) add(id uint64, isBuy bool, price float64, qty uint64, ts uint64) {
	order := f.orderPool.Allocate()
	order.ID = id
	order.Price = price
	order.Quantity = qty
	order.Timestamp = ts
	order.Active = true
	order.State = domain.StateResting
	if isBuy {
		order.Side = domain.SideBuy
	} else {
		order.Side = domain.SideSell
	}

	side := f.asks
	if isBuy {
		side = f.bids
	}
	level, ok := side.Get(price)
	if !ok {
		level = f.levelPool.Allocate()
		level.Price = price
		side.Put(price, level)
	}
	level.Append(order)
	f.index.Put(order)

	f.engine.Run(f.bids, f.asks, f.index, f.orderPool, f.levelPool)
}

func TestEngineNoCrossLeavesBookAlone(t *testing.T) {
	f := newFixture()
	f.add(1, true, 100.50, 1000, 1)
	f.add(2, true, 100.25, 500, 2)
	f.add(3, false, 100.75, 750, 3)
	f.add(4, false, 100.60, 300, 4)

	if len(f.trades) != 0 {
		t.Fatalf("expected no trades, got %+v", f.trades)
	}
	if f.bids.Best().Price != 100.50 {
		t.Errorf("best bid = %v, want 100.50", f.bids.Best().Price)
	}
	if f.asks.Best().Price != 100.60 {
		t.Errorf("best ask = %v, want 100.60", f.asks.Best().Price)
	}
}

func TestEngineAggressiveBuyPartiallyFillsBestAsk(t *testing.T) {
	f := newFixture()
	f.add(1, true, 100.50, 1000, 1)
	f.add(2, true, 100.25, 500, 2)
	f.add(3, false, 100.75, 750, 3)
	f.add(4, false, 100.60, 300, 4)

	f.add(5, true, 100.80, 200, 5)

	if len(f.trades) != 1 {
		t.Fatalf("expected 1 trade, got %+v", f.trades)
	}
	want := domain.Trade{FillQty: 200, FillPrice: 100.60, BidID: 5, AskID: 4}
	if f.trades[0] != want {
		t.Errorf("trade = %+v, want %+v", f.trades[0], want)
	}

	if f.asks.Best().Price != 100.60 {
		t.Errorf("best ask = %v, want 100.60 (order 4's 100-unit residual still resting)", f.asks.Best().Price)
	}
	if f.index.Len() != 4 {
		t.Errorf("index.Len() = %d, want 4", f.index.Len())
	}
}

func TestEngineMakerPriceUsesEarlierTimestamp(t *testing.T) {
	f := newFixture()
	// ask resting first (ts=1) at 99.0, bid arrives later (ts=2) at 101.0:
	// ask is maker, trade prices at the ask's price.
	f.add(1, false, 99.0, 100, 1)
	f.add(2, true, 101.0, 100, 2)

	if len(f.trades) != 1 {
		t.Fatalf("expected 1 trade, got %+v", f.trades)
	}
	if f.trades[0].FillPrice != 99.0 {
		t.Errorf("FillPrice = %v, want 99.0 (ask was maker)", f.trades[0].FillPrice)
	}
}

func TestEngineMakerPriceTiesFavorBid(t *testing.T) {
	f := newFixture()
	f.add(1, false, 99.0, 100, 5)
	f.add(2, true, 101.0, 100, 5) // equal timestamps -> bid wins tie

	if len(f.trades) != 1 {
		t.Fatalf("expected 1 trade, got %+v", f.trades)
	}
	if f.trades[0].FillPrice != 101.0 {
		t.Errorf("FillPrice = %v, want 101.0 (bid wins tie)", f.trades[0].FillPrice)
	}
}

func TestEngineReentrancyGuardNoop(t *testing.T) {
	f := newFixture()
	f.engine.matchingInProgress = true
	f.add(1, false, 99.0, 100, 1)
	f.add(2, true, 101.0, 100, 2)

	if len(f.trades) != 0 {
		t.Fatalf("expected Run to no-op while matchingInProgress, got trades %+v", f.trades)
	}
}
