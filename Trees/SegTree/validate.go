package SegTree

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/g-m-twostay/go-segtree/Queues"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Stats describes the shape of a tree.
type Stats struct {
	Size    int  //elements
	Slots   int  //length of the node slice
	Levels  int  //edges from the root to the deepest leaf
	Lazy    bool //range updates are deferred
	Pending int  //internal nodes holding a payload that hasn't been pushed
}

func (u *SegTree[T, N, P]) Stats() Stats {
	s := Stats{Size: u.size, Slots: len(u.ns), Levels: levels(u.size), Lazy: u.lazy}
	if u.lazy {
		s.Pending = u.pending.Count()
	}
	return s
}

// Validate checks that every internal node without a pending payload equals the Join of its children,
// comparing with eq. It's O(n) and only finds bugs in node implementations, or trees modified through Visit.
func (u *SegTree[T, N, P]) Validate(ctx context.Context, eq func(a, b *N) bool) error {
	_, span := u.cfg.tracer.Start(ctx, "SegTree.Validate",
		trace.WithAttributes(
			attribute.Int("size", u.size),
			attribute.Int("slots", len(u.ns)),
			attribute.Bool("lazy", u.lazy),
		),
	)
	defer span.End()

	if u.size > 0 {
		if err := u.validate(root, 0, u.size, eq); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "validation failed")
			u.cfg.logger.Error("segment tree validation failed",
				slog.Int("size", u.size),
				slog.String("error", err.Error()))
			return err
		}
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

func (u *SegTree[T, N, P]) validate(v, left, right int, eq func(a, b *N) bool) error {
	if left+1 == right {
		return nil
	}
	l, r, mid := lSon(v), rSon(v), Mid(left, right)
	if err := u.validate(l, left, mid, eq); err != nil {
		return err
	}
	if err := u.validate(r, mid, right, eq); err != nil {
		return err
	}
	if u.lazy && u.pending.Get(v) {
		return nil
	}
	var c N
	P(&c).Join(&u.ns[l], &u.ns[r], left, right)
	if !eq(&c, &u.ns[v]) {
		return fmt.Errorf("%w: slot %d covering [%d, %d) disagrees with its children", ErrCorrupt, v, left, right)
	}
	return nil
}

type step struct {
	v, left, right, depth int
}

// Walk the nodes in level order, left to right within a level, until f returns false.
// Nodes are reported as stored: payloads pending above a node aren't reflected in it.
func (u *SegTree[T, N, P]) Walk(f func(depth int, n *N, left, right int) bool) {
	u.walk(func(s step) bool {
		return f(s.depth, &u.ns[s.v], s.left, s.right)
	})
}

func (u *SegTree[T, N, P]) walk(f func(step) bool) {
	if u.size == 0 {
		return
	}
	q := Queues.MakeArrayQueue[step](uint(u.size))
	for q.Push(step{root, 0, u.size, 0}); !q.Empty(); {
		s, _ := q.Pop()
		if !f(s) {
			return
		}
		if s.left+1 < s.right {
			mid := Mid(s.left, s.right)
			q.Push(step{lSon(s.v), s.left, mid, s.depth + 1})
			q.Push(step{rSon(s.v), mid, s.right, s.depth + 1})
		}
	}
}

// Dump writes one line per node in level order, indented by depth. Nodes with a pending payload are starred.
func (u *SegTree[T, N, P]) Dump(w io.Writer) (err error) {
	u.walk(func(s step) bool {
		mark := ""
		if u.lazy && u.pending.Get(s.v) {
			mark = " *"
		}
		_, err = fmt.Fprintf(w, "%*s[%d, %d) %+v%s\n", 2*s.depth, "", s.left, s.right, u.ns[s.v], mark)
		return err == nil
	})
	return
}
