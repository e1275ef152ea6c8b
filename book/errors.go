package book

import "errors"

// Validation errors returned by the mutating API. All of them leave the
// book unchanged — see ErrorTaxonomy in SPEC_FULL.md §7.
var (
	// ErrInvalidIdentifier: id is zero.
	ErrInvalidIdentifier = errors.New("limitbook: order id must be non-zero")

	// ErrInvalidPrice: price non-finite, or outside [MinPrice, MaxPrice].
	ErrInvalidPrice = errors.New("limitbook: price out of range")

	// ErrInvalidQuantity: quantity zero or above MaxOrderQuantity.
	ErrInvalidQuantity = errors.New("limitbook: quantity out of range")

	// ErrDuplicateID: add only — id already indexed.
	ErrDuplicateID = errors.New("limitbook: duplicate order id")

	// ErrUnknownID: cancel/amend only — id not indexed.
	ErrUnknownID = errors.New("limitbook: unknown order id")

	// ErrInactiveOrder: amend only — order present but inactive.
	ErrInactiveOrder = errors.New("limitbook: order is inactive")
)
