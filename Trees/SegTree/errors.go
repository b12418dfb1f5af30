package SegTree

import "errors"

var (
	// ErrEmptyTree is returned by every query and update on a tree with no elements.
	ErrEmptyTree = errors.New("segment tree is empty")
	// ErrOutOfBounds means the range isn't within [0, Len()).
	ErrOutOfBounds = errors.New("range out of bounds")
	// ErrInvertedRange means left > right.
	ErrInvertedRange = errors.New("range left bound exceeds right bound")
	// ErrEmptyRange means left == right; there is no identity to return.
	ErrEmptyRange = errors.New("empty range")
	// ErrCorrupt is returned by Validate.
	ErrCorrupt = errors.New("segment tree invariant violated")
)
