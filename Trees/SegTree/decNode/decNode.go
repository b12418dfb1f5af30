// Package decNode holds segment tree nodes over exact decimals, for money and other amounts
// where float rounding isn't acceptable.
package decNode

import (
	"github.com/g-m-twostay/go-segtree/Trees/SegTree"
	"github.com/shopspring/decimal"
)

// Sum answers range totals and takes range additions. The zero value is a total of 0.
type Sum struct {
	Value decimal.Decimal
	add   decimal.Decimal
}

func (u *Sum) Leaf(_ int, v decimal.Decimal) {
	u.Value, u.add = v, decimal.Zero
}

func (u *Sum) Join(l, r *Sum, _, _ int) {
	u.Value, u.add = l.Value.Add(r.Value), decimal.Zero
}

func (u *Sum) Apply(d decimal.Decimal, left, right int) {
	u.Value = u.Value.Add(d.Mul(decimal.NewFromInt(int64(right - left))))
	u.add = u.add.Add(d)
}

func (u *Sum) Push(l, r *Sum, left, right int) {
	if u.add.IsZero() {
		return
	}
	mid := SegTree.Mid(left, right)
	l.Apply(u.add, left, mid)
	r.Apply(u.add, mid, right)
	u.add = decimal.Zero
}

func (u *Sum) Update(l, r *Sum, _, _ int) {
	u.Value = l.Value.Add(r.Value)
}

// Max of a range; ties keep the left value.
type Max struct {
	Value decimal.Decimal
}

func (u *Max) Leaf(_ int, v decimal.Decimal) {
	u.Value = v
}

func (u *Max) Join(l, r *Max, _, _ int) {
	if r.Value.GreaterThan(l.Value) {
		u.Value = r.Value
	} else {
		u.Value = l.Value
	}
}

// Sums builds a lazy tree of totals over vs.
func Sums(vs []decimal.Decimal, opts ...SegTree.Option) *SegTree.SegTree[decimal.Decimal, Sum, *Sum] {
	return SegTree.From[decimal.Decimal, Sum](vs, opts...)
}

// Maxes builds a tree of maximums over vs.
func Maxes(vs []decimal.Decimal, opts ...SegTree.Option) *SegTree.SegTree[decimal.Decimal, Max, *Max] {
	return SegTree.From[decimal.Decimal, Max](vs, opts...)
}
