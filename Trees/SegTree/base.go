package SegTree

import "math/bits"

const root = 0

func lSon(v int) int { return 2*v + 1 }
func rSon(v int) int { return 2*v + 2 }

// levels is ceil(log2(n)), 0 when n<=1.
func levels(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// slots needed to hold a tree over n leaves. Splitting at Mid keeps every leaf within depth levels(n),
// and the deepest slot of that level is 2^(levels+1)-2.
func slots(n int) int {
	if n == 0 {
		return 0
	}
	return 1<<(levels(n)+1) - 1
}

func (u *SegTree[T, N, P]) build(v, left, right int, at func(int) T) {
	if left+1 == right {
		P(&u.ns[v]).Leaf(left, at(left))
		return
	}
	l, r, mid := lSon(v), rSon(v), Mid(left, right)
	u.build(l, left, mid, at)
	u.build(r, mid, right, at)
	P(&u.ns[v]).Join(&u.ns[l], &u.ns[r], left, right)
}

// push the pending payload of internal node v to its children, if it has one.
func (u *SegTree[T, N, P]) push(v, left, right int) {
	if !u.pending.Swap(v) {
		return
	}
	l, r, mid := lSon(v), rSon(v), Mid(left, right)
	any(P(&u.ns[v])).(Lazy[N]).Push(&u.ns[l], &u.ns[r], left, right)
	if mid-left > 1 {
		u.pending.Up(l)
	}
	if right-mid > 1 {
		u.pending.Up(r)
	}
}

// pull recomputes internal node v from its children.
func (u *SegTree[T, N, P]) pull(v, left, right int) {
	l, r := &u.ns[lSon(v)], &u.ns[rSon(v)]
	if u.lazy {
		any(P(&u.ns[v])).(Lazy[N]).Update(l, r, left, right)
	} else {
		P(&u.ns[v]).Join(l, r, left, right)
	}
}

// decompose calls f on the canonical pieces of [ql, qr) under v, left to right.
func (u *SegTree[T, N, P]) decompose(v, left, right, ql, qr int, f func(*N, int, int)) {
	if ql <= left && right <= qr {
		f(&u.ns[v], left, right)
		return
	}
	if u.lazy {
		u.push(v, left, right)
	}
	mid := Mid(left, right)
	if mid > ql {
		u.decompose(lSon(v), left, mid, ql, qr, f)
	}
	if mid < qr {
		u.decompose(rSon(v), mid, right, ql, qr, f)
	}
	if u.lazy {
		u.pull(v, left, right)
	}
}

// modify calls f on the canonical pieces of [ql, qr) under v, or on every leaf in it when the tree isn't lazy,
// and restores the ancestors on the way back.
func (u *SegTree[T, N, P]) modify(v, left, right, ql, qr int, f func(*N, int, int)) {
	if ql <= left && right <= qr && (u.lazy || left+1 == right) {
		f(&u.ns[v], left, right)
		if left+1 != right {
			u.pending.Up(v)
		}
		return
	}
	if u.lazy {
		u.push(v, left, right)
	}
	mid := Mid(left, right)
	if mid > ql {
		u.modify(lSon(v), left, mid, ql, qr, f)
	}
	if mid < qr {
		u.modify(rSon(v), mid, right, ql, qr, f)
	}
	u.pull(v, left, right)
}
