package SegTree

import "cmp"

// AddSum answers range sums and takes range additions.
type AddSum[T Real] struct {
	Sum T
	add T
}

func (u *AddSum[T]) Leaf(_ int, v T) {
	u.Sum, u.add = v, 0
}

func (u *AddSum[T]) Join(l, r *AddSum[T], _, _ int) {
	u.Sum, u.add = l.Sum+r.Sum, 0
}

func (u *AddSum[T]) Apply(d T, left, right int) {
	u.Sum += d * T(right-left)
	u.add += d
}

func (u *AddSum[T]) Push(l, r *AddSum[T], left, right int) {
	if u.add == 0 {
		return
	}
	mid := Mid(left, right)
	l.Apply(u.add, left, mid)
	r.Apply(u.add, mid, right)
	u.add = 0
}

func (u *AddSum[T]) Update(l, r *AddSum[T], _, _ int) {
	u.Sum = l.Sum + r.Sum
}

// SetSum answers range sums and takes range assignments.
type SetSum[T Real] struct {
	Sum T
	to  T
	set bool
}

func (u *SetSum[T]) Leaf(_ int, v T) {
	u.Sum, u.set = v, false
}

func (u *SetSum[T]) Join(l, r *SetSum[T], _, _ int) {
	u.Sum, u.set = l.Sum+r.Sum, false
}

func (u *SetSum[T]) Apply(v T, left, right int) {
	u.Sum, u.to, u.set = v*T(right-left), v, true
}

func (u *SetSum[T]) Push(l, r *SetSum[T], left, right int) {
	if !u.set {
		return
	}
	mid := Mid(left, right)
	l.Apply(u.to, left, mid)
	r.Apply(u.to, mid, right)
	u.set = false
}

func (u *SetSum[T]) Update(l, r *SetSum[T], _, _ int) {
	u.Sum = l.Sum + r.Sum
}

// AddMin answers range minimums and takes range additions.
type AddMin[T Real] struct {
	Min T
	add T
}

func (u *AddMin[T]) Leaf(_ int, v T) {
	u.Min, u.add = v, 0
}

func (u *AddMin[T]) Join(l, r *AddMin[T], _, _ int) {
	u.Min, u.add = min(l.Min, r.Min), 0
}

func (u *AddMin[T]) Apply(d T, _, _ int) {
	u.Min += d
	u.add += d
}

func (u *AddMin[T]) Push(l, r *AddMin[T], left, right int) {
	if u.add == 0 {
		return
	}
	l.Apply(u.add, left, Mid(left, right))
	r.Apply(u.add, Mid(left, right), right)
	u.add = 0
}

func (u *AddMin[T]) Update(l, r *AddMin[T], _, _ int) {
	u.Min = min(l.Min, r.Min)
}

// AddMax answers range maximums and takes range additions.
type AddMax[T Real] struct {
	Max T
	add T
}

func (u *AddMax[T]) Leaf(_ int, v T) {
	u.Max, u.add = v, 0
}

func (u *AddMax[T]) Join(l, r *AddMax[T], _, _ int) {
	u.Max, u.add = max(l.Max, r.Max), 0
}

func (u *AddMax[T]) Apply(d T, _, _ int) {
	u.Max += d
	u.add += d
}

func (u *AddMax[T]) Push(l, r *AddMax[T], left, right int) {
	if u.add == 0 {
		return
	}
	l.Apply(u.add, left, Mid(left, right))
	r.Apply(u.add, Mid(left, right), right)
	u.add = 0
}

func (u *AddMax[T]) Update(l, r *AddMax[T], _, _ int) {
	u.Max = max(l.Max, r.Max)
}

// ArgMin tracks the minimum of a range and the leftmost index holding it. It isn't lazy.
type ArgMin[T cmp.Ordered] struct {
	Min T
	At  int
}

func (u *ArgMin[T]) Leaf(i int, v T) {
	u.Min, u.At = v, i
}

func (u *ArgMin[T]) Join(l, r *ArgMin[T], _, _ int) {
	if r.Min < l.Min {
		*u = *r
	} else {
		*u = *l
	}
}
