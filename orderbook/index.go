package orderbook

import "limitbook/domain"

// Index maps order identifier to order handle for O(1) lookup during
// cancel/amend. Its key set must equal the set of identifiers of
// currently-resting active orders at every stable (non-matching) point
// — spec.md §3 invariant 1 and the injectivity invariant 4 are checked
// against this directly in the façade's property tests.
type Index struct {
	byID map[uint64]*domain.Order
}

// NewIndex creates an empty order index.
func NewIndex() *Index {
	return &Index{byID: make(map[uint64]*domain.Order)}
}

// Get returns the order for id, if present.
func (idx *Index) Get(id uint64) (*domain.Order, bool) {
	o, ok := idx.byID[id]
	return o, ok
}

// Put indexes order under its own ID.
func (idx *Index) Put(order *domain.Order) {
	idx.byID[order.ID] = order
}

// Delete removes id from the index.
func (idx *Index) Delete(id uint64) {
	delete(idx.byID, id)
}

// Len returns the number of indexed orders.
func (idx *Index) Len() int {
	return len(idx.byID)
}
