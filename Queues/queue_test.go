package Queues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayQueue_FIFO(t *testing.T) {
	for _, c := range []uint{0, 1, 2, 5} {
		q := MakeArrayQueue[int](c)
		require.True(t, q.Empty())
		for i := range 100 {
			q.Push(i)
		}
		assert.Equal(t, uint(100), q.Size())
		for i := range 100 {
			assert.Equal(t, i, q.Peek())
			v, err := q.Pop()
			require.NoError(t, err)
			assert.Equal(t, i, v, "initCap=%d", c)
		}
		_, err := q.Pop()
		var e *EmptyQueueError
		assert.ErrorAs(t, err, &e)
	}
}

func TestArrayQueue_Wrap(t *testing.T) {
	q := MakeArrayQueue[int](4)
	next, want := 0, 0
	for round := range 50 {
		for range round%3 + 1 {
			q.Push(next)
			next++
		}
		for range round % 2 {
			v, err := q.Pop()
			require.NoError(t, err)
			assert.Equal(t, want, v)
			want++
		}
		if round%7 == 0 {
			q.Shrink()
		}
	}
	for !q.Empty() {
		v, _ := q.Pop()
		assert.Equal(t, want, v)
		want++
	}
	assert.Equal(t, next, want)

	q.Push(1)
	q.Clear()
	assert.True(t, q.Empty())
	assert.Zero(t, q.Peek())
}
