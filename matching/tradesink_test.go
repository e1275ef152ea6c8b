package matching

import (
	"testing"

	"limitbook/domain"
)

func TestTradeRingBufferPublishAndDrainInOrder(t *testing.T) {
	rb := NewTradeRingBuffer(4)
	rb.Publish(domain.Trade{BidID: 1})
	rb.Publish(domain.Trade{BidID: 2})
	rb.Publish(domain.Trade{BidID: 3})

	got := rb.Drain()
	if len(got) != 3 {
		t.Fatalf("Drain() returned %d trades, want 3", len(got))
	}
	for i, want := range []uint64{1, 2, 3} {
		if got[i].BidID != want {
			t.Errorf("got[%d].BidID = %d, want %d", i, got[i].BidID, want)
		}
	}
	if rb.Len() != 0 {
		t.Errorf("Len() = %d after drain, want 0", rb.Len())
	}
}

func TestTradeRingBufferOverwritesOldestWhenFull(t *testing.T) {
	rb := NewTradeRingBuffer(2)
	rb.Publish(domain.Trade{BidID: 1})
	rb.Publish(domain.Trade{BidID: 2})
	rb.Publish(domain.Trade{BidID: 3}) // overwrites BidID 1

	got := rb.Drain()
	if len(got) != 2 {
		t.Fatalf("Drain() returned %d trades, want 2", len(got))
	}
	if got[0].BidID != 2 || got[1].BidID != 3 {
		t.Errorf("got = %+v, want [2, 3]", got)
	}
}

func TestTradeSinkFuncAdapts(t *testing.T) {
	var seen []domain.Trade
	var sink TradeSink = TradeSinkFunc(func(tr domain.Trade) { seen = append(seen, tr) })
	sink.OnTrade(domain.Trade{AskID: 9})

	if len(seen) != 1 || seen[0].AskID != 9 {
		t.Errorf("seen = %+v", seen)
	}
}
