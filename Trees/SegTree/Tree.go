package SegTree

// Tree is a SegTree of Default nodes, answering queries with plain values.
type Tree[T any, F Op[T]] struct {
	*SegTree[T, Default[T, F], *Default[T, F]]
}

// New Tree over vs under F, e.g. New[int, Add[int]](vs).
func New[T any, F Op[T]](vs []T, opts ...Option) Tree[T, F] {
	return Tree[T, F]{From[T, Default[T, F]](vs, opts...)}
}

// Ask for the aggregate of [l, r).
func (u Tree[T, F]) Ask(l, r int) (T, error) {
	n, err := u.Combine(l, r)
	return n.V, err
}

// MustAsk is Ask that panics on a bad range.
func (u Tree[T, F]) MustAsk(l, r int) T {
	return u.MustCombine(l, r).V
}

// At returns element i.
func (u Tree[T, F]) At(i int) (T, error) {
	return u.Ask(i, i+1)
}
