package SegTree

// Apply payload x to every element in [l, r) through the nodes' Apply.
func Apply[U, T, N any, P Updater[U, T, N]](t *SegTree[T, N, P], l, r int, x U) error {
	return t.Modify(l, r, func(n *N, left, right int) {
		P(n).Apply(x, left, right)
	})
}

// ApplyAt applies x to element i alone.
func ApplyAt[U, T, N any, P Updater[U, T, N]](t *SegTree[T, N, P], i int, x U) error {
	return Apply(t, i, i+1, x)
}
