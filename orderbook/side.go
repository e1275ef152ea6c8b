package orderbook

import (
	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"
)

// SideBook is an ordered map from price to PriceLevel for one side of
// the book: descending for bids, ascending for asks, so the first
// entry in iteration order is always the top of book. Grounded on the
// teacher's own use of gods/v2's red-black tree as its bucket index in
// orderbook/price_tree_sharded.go, used here directly as the per-side
// ordered map spec.md §4.3 calls for (one level of tree, not the
// teacher's two-level bucket sharding — see DESIGN.md).
type SideBook struct {
	tree *rbt.Tree[float64, *PriceLevel]
}

// NewSideBook creates a side book. descending selects bid ordering
// (highest price first); ascending (descending=false) selects ask
// ordering (lowest price first).
func NewSideBook(descending bool) *SideBook {
	comparator := func(a, b float64) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	if descending {
		natural := comparator
		comparator = func(a, b float64) int { return -natural(a, b) }
	}
	return &SideBook{tree: rbt.NewWith[float64, *PriceLevel](comparator)}
}

// Get returns the level at price, if any.
func (s *SideBook) Get(price float64) (*PriceLevel, bool) {
	return s.tree.Get(price)
}

// Put inserts or replaces the level at price.
func (s *SideBook) Put(price float64, level *PriceLevel) {
	s.tree.Put(price, level)
}

// Remove erases the level at price.
func (s *SideBook) Remove(price float64) {
	s.tree.Remove(price)
}

// Best returns the top-of-book level, or nil if the side is empty.
func (s *SideBook) Best() *PriceLevel {
	node := s.tree.Left()
	if node == nil {
		return nil
	}
	return node.Value
}

// Len returns the number of distinct price levels on this side.
func (s *SideBook) Len() int {
	return s.tree.Size()
}

// IsEmpty reports whether this side has no price levels.
func (s *SideBook) IsEmpty() bool {
	return s.tree.Empty()
}

// Levels returns up to depth levels from the top of book, in order. A
// depth <= 0 returns every level.
func (s *SideBook) Levels(depth int) []*PriceLevel {
	result := make([]*PriceLevel, 0)
	it := s.tree.Iterator()
	for it.Next() {
		if depth > 0 && len(result) >= depth {
			break
		}
		result = append(result, it.Value())
	}
	return result
}
