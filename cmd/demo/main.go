package main

import (
	"fmt"

	"limitbook/book"
	"limitbook/matching"
)

func main() {
	ob := book.New()

	fmt.Println("order book started")

	submit(ob, book.AddRequest{ID: 1, IsBuy: true, Price: 100.50, Quantity: 1000, TimestampNS: 1})
	submit(ob, book.AddRequest{ID: 2, IsBuy: true, Price: 100.25, Quantity: 500, TimestampNS: 2})
	submit(ob, book.AddRequest{ID: 3, IsBuy: false, Price: 100.75, Quantity: 750, TimestampNS: 3})
	submit(ob, book.AddRequest{ID: 4, IsBuy: false, Price: 100.60, Quantity: 300, TimestampNS: 4})

	fmt.Printf("best bid: %.2f, best ask: %.2f, spread: %.2f\n", ob.BestBid(), ob.BestAsk(), ob.Spread())

	// An aggressive buy that partially fills the best ask.
	submit(ob, book.AddRequest{ID: 5, IsBuy: true, Price: 100.80, Quantity: 200, TimestampNS: 5})

	drainTrades(ob)

	fmt.Printf("best bid: %.2f, best ask: %.2f\n", ob.BestBid(), ob.BestAsk())
	fmt.Printf("resting orders: %d, version: %d\n", ob.OrderCount(), ob.Version())

	bids, asks := ob.Snapshot(5)
	fmt.Println("bids:")
	for _, level := range bids {
		fmt.Printf("  %.2f x %d (%d orders)\n", level.Price, level.TotalQuantity, level.OrderCount)
	}
	fmt.Println("asks:")
	for _, level := range asks {
		fmt.Printf("  %.2f x %d (%d orders)\n", level.Price, level.TotalQuantity, level.OrderCount)
	}
}

func submit(ob *book.OrderBook, req book.AddRequest) {
	if _, err := ob.Add(req); err != nil {
		fmt.Printf("order %d rejected: %v\n", req.ID, err)
	}
}

func drainTrades(ob *book.OrderBook) {
	ring, ok := ob.TradeSink().(*matching.TradeRingBuffer)
	if !ok {
		return
	}
	for _, trade := range ring.Drain() {
		fmt.Printf("trade: %d @ %.2f (bid %d, ask %d)\n", trade.FillQty, trade.FillPrice, trade.BidID, trade.AskID)
	}
}
