package SegTree

import (
	"fmt"
	"log/slog"

	Go_SegTree "github.com/g-m-twostay/go-segtree"
)

// SegTree is a static size segment tree over n elements of type T, stored as nodes of type N in one slice.
// Slot 0 is the root covering [0, n), the children of slot v are 2v+1 and 2v+2, and ranges are split at Mid.
// All ranges taken and reported are half-open. If *N implements Lazy, range updates are deferred and
// pushed down on demand, so queries write to the tree too. A SegTree is not safe for concurrent use.
type SegTree[T, N any, P Node[T, N]] struct {
	ns      []N
	pending Go_SegTree.BitArray //internal slots with a payload not yet pushed; lazy trees only.
	size    int
	lazy    bool
	cfg     config
}

// From builds a tree whose leaves are vs. vs isn't retained.
func From[T, N any, P Node[T, N]](vs []T, opts ...Option) *SegTree[T, N, P] {
	return FromFunc[T, N, P](len(vs), func(i int) T { return vs[i] }, opts...)
}

// FromFunc builds a tree over n elements, the i-th being at(i). at is called once per index, in order.
func FromFunc[T, N any, P Node[T, N]](n int, at func(int) T, opts ...Option) *SegTree[T, N, P] {
	if n < 0 {
		panic(fmt.Sprintf("SegTree: negative size %d", n))
	}
	u := &SegTree[T, N, P]{ns: make([]N, slots(n)), size: n, cfg: newConfig(opts)}
	if _, u.lazy = any(P(new(N))).(Lazy[N]); u.lazy {
		u.pending = Go_SegTree.New(len(u.ns))
	}
	if n > 0 {
		u.build(root, 0, n, at)
	}
	u.cfg.logger.Debug("segment tree built",
		slog.Int("size", n),
		slog.Int("slots", len(u.ns)),
		slog.Int("levels", levels(n)),
		slog.Bool("lazy", u.lazy))
	return u
}

// Len is the number of elements.
func (u *SegTree[T, N, P]) Len() int {
	return u.size
}

// Lazy reports whether range updates are deferred.
func (u *SegTree[T, N, P]) Lazy() bool {
	return u.lazy
}

func (u *SegTree[T, N, P]) check(l, r int) error {
	switch {
	case u.size == 0:
		return ErrEmptyTree
	case l < 0 || r > u.size:
		return fmt.Errorf("%w: [%d, %d) not within [0, %d)", ErrOutOfBounds, l, r, u.size)
	case l > r:
		return fmt.Errorf("%w: %d > %d", ErrInvertedRange, l, r)
	case l == r:
		return fmt.Errorf("%w: [%d, %d)", ErrEmptyRange, l, r)
	}
	return nil
}

// Combine the elements in [l, r) into one node, joining the canonical pieces left to right.
// Any pending payload carried by the result is meaningless.
func (u *SegTree[T, N, P]) Combine(l, r int) (res N, err error) {
	if err = u.check(l, r); err != nil {
		return
	}
	has, from := false, 0
	u.decompose(root, 0, u.size, l, r, func(n *N, left, right int) {
		if !has {
			res, has, from = *n, true, left
			return
		}
		var c N
		P(&c).Join(&res, n, from, right)
		res = c
	})
	return
}

// MustCombine is Combine that panics on a bad range.
func (u *SegTree[T, N, P]) MustCombine(l, r int) N {
	res, err := u.Combine(l, r)
	if err != nil {
		panic(err)
	}
	return res
}

// Visit the canonical pieces of [l, r) left to right. f must not modify the node, and the pointer
// is valid only during the call.
func (u *SegTree[T, N, P]) Visit(l, r int, f func(n *N, left, right int)) error {
	if err := u.check(l, r); err != nil {
		return err
	}
	u.decompose(root, 0, u.size, l, r, f)
	return nil
}

// Get the leaf at i with every pending payload above it applied.
func (u *SegTree[T, N, P]) Get(i int) (N, error) {
	return u.Combine(i, i+1)
}

// Set element i to v, rebuilding its leaf and every ancestor.
func (u *SegTree[T, N, P]) Set(i int, v T) error {
	if err := u.check(i, i+1); err != nil {
		return err
	}
	u.modify(root, 0, u.size, i, i+1, func(n *N, left, _ int) {
		P(n).Leaf(left, v)
	})
	return nil
}

// Modify applies f to [l, r). In a lazy tree f is called on the canonical pieces and must, for an internal
// node, both update its aggregate and record the change for Push. Otherwise f is called on every leaf of the
// range in order. Either way every ancestor is recomputed afterwards.
func (u *SegTree[T, N, P]) Modify(l, r int, f func(n *N, left, right int)) error {
	if err := u.check(l, r); err != nil {
		return err
	}
	u.modify(root, 0, u.size, l, r, f)
	return nil
}
