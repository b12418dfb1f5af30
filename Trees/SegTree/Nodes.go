package SegTree

// Node is the capability set the engine needs from a node type N, expressed on *N.
// A node represents a half-open range [left, right) of the underlying sequence.
type Node[T, N any] interface {
	*N
	//Leaf turns the receiver into the leaf for position index holding v.
	Leaf(index int, v T)
	//Join sets the receiver to the aggregate of l followed by r, which together cover [left, right).
	//The split point is not necessarily Mid(left, right). Join must only read the aggregates of l and r,
	//and it leaves the receiver without a pending payload.
	Join(l, r *N, left, right int)
}

// Lazy is implemented by nodes that can hold an update payload for their whole range without
// forwarding it to their children yet. The tree detects it once, when built.
type Lazy[N any] interface {
	//Push hands the pending payload of the receiver covering [left, right) to its children
	//l, covering [left, Mid(left, right)), and r, covering the rest, then clears it.
	//Push with nothing pending must not change anything.
	Push(l, r *N, left, right int)
	//Update recomputes the aggregate of the receiver from l and r after they changed.
	Update(l, r *N, left, right int)
}

// Applier applies an update payload of type U to a node covering [left, right).
// On an internal node of a Lazy tree the payload must also be remembered for Push.
type Applier[U any] interface {
	Apply(x U, left, right int)
}

// Updater is a Node that accepts payloads of type U.
type Updater[U, T, N any] interface {
	Node[T, N]
	Applier[U]
}

// Mid is where the tree splits [left, right) between the two children.
func Mid(left, right int) int {
	return int(uint(left+right) >> 1)
}

// Default node holding the aggregate of its range under F.
type Default[T any, F Op[T]] struct {
	V T
}

func (u *Default[T, F]) Leaf(_ int, v T) {
	u.V = v
}

func (u *Default[T, F]) Join(l, r *Default[T, F], _, _ int) {
	var f F
	u.V = f.Op(l.V, r.V)
}
