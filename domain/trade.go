package domain

// Trade is a single fill between one resting (maker) order and one
// incoming (taker) order, at a single price. Trades are not
// pool-allocated — they are ephemeral output records handed to a
// TradeSink, not book state, so they carry none of the intrusive/pooled
// machinery Order does.
type Trade struct {
	FillQty   uint64
	FillPrice float64
	BidID     uint64
	AskID     uint64
}
