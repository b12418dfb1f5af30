package SegTree

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Op is an associative binary operation, used as a zero size type parameter of Default.
// Op need not be commutative; the tree always passes the left operand first.
type Op[T any] interface {
	Op(a, b T) T
}

type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Real numbers can be scaled by a range length.
type Real interface {
	constraints.Integer | constraints.Float
}

type Add[T Number] struct{}

func (Add[T]) Op(a, b T) T { return a + b }

type Mul[T Number] struct{}

func (Mul[T]) Op(a, b T) T { return a * b }

type Min[T cmp.Ordered] struct{}

func (Min[T]) Op(a, b T) T { return min(a, b) }

type Max[T cmp.Ordered] struct{}

func (Max[T]) Op(a, b T) T { return max(a, b) }

// GCD of the absolute values. GCD(0, x) is |x|.
type GCD[T constraints.Integer] struct{}

func (GCD[T]) Op(a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

type Xor[T constraints.Integer] struct{}

func (Xor[T]) Op(a, b T) T { return a ^ b }

type And[T constraints.Integer] struct{}

func (And[T]) Op(a, b T) T { return a & b }

type Or[T constraints.Integer] struct{}

func (Or[T]) Op(a, b T) T { return a | b }

// Concat is the canonical non commutative operation.
type Concat[T ~string] struct{}

func (Concat[T]) Op(a, b T) T { return a + b }
