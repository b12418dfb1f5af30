package decNode

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/g-m-twostay/go-segtree/Trees/SegTree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _R rand.Rand = *rand.New(rand.NewSource(0))

var quiet = SegTree.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

func cents(vs ...int64) []decimal.Decimal {
	ds := make([]decimal.Decimal, len(vs))
	for i, v := range vs {
		ds[i] = decimal.New(v, -2)
	}
	return ds
}

func TestSum_Exact(t *testing.T) {
	tree := Sums(cents(10, 20, 30, 40), quiet)
	assert.True(t, tree.Lazy())
	assert.Equal(t, "1", tree.MustCombine(0, 4).Value.String())
	assert.Equal(t, "0.5", tree.MustCombine(1, 3).Value.String())

	require.NoError(t, SegTree.Apply(tree, 1, 4, decimal.RequireFromString("0.01")))
	assert.Equal(t, "1.03", tree.MustCombine(0, 4).Value.String())
	assert.Equal(t, "0.21", tree.MustCombine(1, 2).Value.String())

	require.NoError(t, tree.Set(0, decimal.RequireFromString("-0.1")))
	assert.Equal(t, "0.83", tree.MustCombine(0, 4).Value.String())
}

func TestSum_Mirror(t *testing.T) {
	eq := func(a, b *Sum) bool { return a.Value.Equal(b.Value) }
	for _, n := range []int{1, 2, 3, 7, 8, 9, 33} {
		vs := make([]decimal.Decimal, n)
		for i := range vs {
			vs[i] = decimal.New(_R.Int63n(100000), -2)
		}
		naive := append([]decimal.Decimal(nil), vs...)
		tree := Sums(vs, quiet)
		for range 200 {
			l := _R.Intn(n)
			r := l + 1 + _R.Intn(n-l)
			if _R.Intn(2) == 0 {
				d := decimal.New(_R.Int63n(2001)-1000, -3)
				require.NoError(t, SegTree.Apply(tree, l, r, d))
				for i := l; i < r; i++ {
					naive[i] = naive[i].Add(d)
				}
				continue
			}
			want := decimal.Sum(naive[l], naive[l+1:r]...)
			got, err := tree.Combine(l, r)
			require.NoError(t, err)
			assert.True(t, want.Equal(got.Value), "n=%d [%d,%d): want %s got %s", n, l, r, want, got.Value)
		}
		require.NoError(t, tree.Validate(context.Background(), eq))
	}
}

func TestMax(t *testing.T) {
	tree := Maxes(cents(5, 500, -3, 499), quiet)
	assert.False(t, tree.Lazy())
	assert.Equal(t, "5", tree.MustCombine(0, 4).Value.String())
	assert.Equal(t, "4.99", tree.MustCombine(2, 4).Value.String())
	require.NoError(t, tree.Set(2, decimal.NewFromInt(6)))
	assert.Equal(t, "6", tree.MustCombine(0, 4).Value.String())

	_, err := Maxes(nil, quiet).Combine(0, 1)
	assert.ErrorIs(t, err, SegTree.ErrEmptyTree)
}
