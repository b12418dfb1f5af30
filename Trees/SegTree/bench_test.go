package SegTree

import "testing"

const bN = 1 << 16

func BenchmarkBuild(b *testing.B) {
	vs := randInts(bN, 1000)
	b.ResetTimer()
	for range b.N {
		New[int, Add[int]](vs, quiet)
	}
}

func BenchmarkAsk(b *testing.B) {
	tree := New[int, Add[int]](randInts(bN, 1000), quiet)
	b.ResetTimer()
	for i := range b.N {
		l := i % bN
		tree.MustAsk(l, l+(bN-l)/2+1)
	}
}

func BenchmarkApply(b *testing.B) {
	tree := From[int, AddSum[int]](randInts(bN, 1000), quiet)
	b.ResetTimer()
	for i := range b.N {
		l := i % bN
		if err := Apply(tree, l, l+(bN-l)/2+1, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkModifyNotLazy(b *testing.B) {
	tree := New[int, Add[int]](randInts(bN, 1000), quiet)
	b.ResetTimer()
	for i := range b.N {
		l := i % bN
		if err := tree.Modify(l, min(l+64, bN), func(n *Default[int, Add[int]], _, _ int) { n.V++ }); err != nil {
			b.Fatal(err)
		}
	}
}
